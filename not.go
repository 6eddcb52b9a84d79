package jsonls

// evaluateNot checks that the node fails "not". The trial evaluation runs
// with an inverted vctx so every (node, schema) pair it records is flagged
// Inverted in the MatchingSchemas collector: a schema "matching" inside a
// not is a failure of the outer schema, not a real match, and callers like
// hover/completion need to tell the two apart.
func evaluateNot(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.Not == nil {
		return
	}
	sub := validate(node, schema.Not, ctx.inverting().descend("not"))
	if !sub.HasProblems() {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Value matches the schema in \"not\", but it is required not to."))
	}
}
