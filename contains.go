package jsonls

// evaluateContains checks that at least one array element matches the
// "contains" subschema. Each element is trial-validated under a no-op
// collector: an element failing "contains" is not itself wrong, only
// irrelevant, so neither its diagnostics nor its (node, schema) pairs are
// kept regardless of outcome.
func evaluateContains(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.Contains == nil {
		return
	}
	for _, element := range node.Elements {
		trialCtx := &vctx{td: ctx.td, collector: nil, inverted: ctx.inverted, path: ctx.path + "/contains"}
		sub := validate(element, schema.Contains, trialCtx)
		if !sub.HasProblems() {
			return
		}
	}
	result.AddProblem(ctx.problem(node, SeverityError, "", "Array does not contain an element matching the required schema."))
}
