package jsonls

import "strconv"

// evaluateMinItems checks the array's element count against "minItems".
func evaluateMinItems(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.MinItems == nil {
		return
	}
	if len(node.Elements) < *schema.MinItems {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Array has too few items, expected at least "+strconv.Itoa(*schema.MinItems)+"."))
	}
}
