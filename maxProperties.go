package jsonls

import "strconv"

// evaluateMaxProperties checks the object's property count against "maxProperties".
func evaluateMaxProperties(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.MaxProperties == nil {
		return
	}
	if len(node.Properties) > *schema.MaxProperties {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Object has too many properties, expected at most "+strconv.Itoa(*schema.MaxProperties)+"."))
	}
}
