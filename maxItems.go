package jsonls

import "strconv"

// evaluateMaxItems checks the array's element count against "maxItems".
func evaluateMaxItems(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.MaxItems == nil {
		return
	}
	if len(node.Elements) > *schema.MaxItems {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Array has too many items, expected at most "+strconv.Itoa(*schema.MaxItems)+"."))
	}
}
