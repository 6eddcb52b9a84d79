package jsonls

// evaluateConditional checks the node against "if"/"then"/"else": "then"/
// "else" are ignored unless "if" is present, and only the taken branch's
// diagnostics are merged in — the untaken branch never contributes problems
// to the outer result. The "if" trial's own diagnostics are always
// discarded (its outcome only selects a branch), but its (node, schema)
// pairs are merged into the outer collector unconditionally, since unlike
// anyOf/oneOf/contains, "if" never has a "discarded alternative" to hide.
func evaluateConditional(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.If == nil {
		return
	}

	ifCtx := ctx.trial("if")
	ifResult := validate(node, schema.If, ifCtx)
	ctx.collector.merge(ifCtx.collector)

	if !ifResult.HasProblems() {
		if schema.Then != nil {
			result.Merge(validate(node, schema.Then, ctx.descend("then")))
		}
	} else if schema.Else != nil {
		result.Merge(validate(node, schema.Else, ctx.descend("else")))
	}
}
