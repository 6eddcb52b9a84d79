package jsonls

// evaluateDeprecated flags use of a deprecated schema: a hint
// diagnostic tagged DiagnosticTagDeprecated so editors can render the value
// struck through, carrying schema.DeprecationMessage when the schema author
// supplied one.
func evaluateDeprecated(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.Deprecated == nil || !*schema.Deprecated {
		return
	}

	message := "Value is deprecated."
	if schema.DeprecationMessage != nil && *schema.DeprecationMessage != "" {
		message = *schema.DeprecationMessage
	}

	d := ctx.problem(node, SeverityHint, ErrDeprecated, message)
	d.Tags = []DiagnosticTag{DiagnosticTagDeprecated}
	result.AddProblem(d)
}
