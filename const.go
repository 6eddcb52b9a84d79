package jsonls

// evaluateConst checks the node's value against the schema's "const"
// keyword, equivalent to a one-element enum.
func evaluateConst(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.Const == nil || !schema.Const.IsSet {
		return
	}
	result.EnumValues = append(result.EnumValues, schema.Const.Value)

	if DeepEqual(node.Value(), schema.Const.Value) {
		result.EnumValueMatch = true
		return
	}
	result.AddProblem(ctx.problem(node, SeverityError, ErrEnumValueMismatch, "Value must be "+formatEnumValues([]any{schema.Const.Value})+"."))
}
