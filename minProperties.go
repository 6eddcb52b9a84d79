package jsonls

import "strconv"

// evaluateMinProperties checks the object's property count against "minProperties".
func evaluateMinProperties(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.MinProperties == nil {
		return
	}
	if len(node.Properties) < *schema.MinProperties {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Object has too few properties, expected at least "+strconv.Itoa(*schema.MinProperties)+"."))
	}
}
