package jsonls

// evaluateUniqueItems checks that no two array elements are deep-equal when
// "uniqueItems" is true, delegating to value.go's
// ContainsDuplicate.
func evaluateUniqueItems(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.UniqueItems == nil || !*schema.UniqueItems {
		return
	}
	values := make([]any, len(node.Elements))
	for i, el := range node.Elements {
		values[i] = el.Value()
	}
	if ContainsDuplicate(values) {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Array has duplicate items, but must contain unique items."))
	}
}
