package jsonls

// evaluateFormat checks the node string against the validator named by the
// schema's "format" keyword. An unknown format name is ignored rather than
// reported: "format" is an annotation keyword by default in Draft-07 and
// earlier, and the recognized format set is a fixed, small list rather than
// an open vocabulary.
func evaluateFormat(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.Format == nil {
		return
	}
	check, known := formatValidators[*schema.Format]
	if !known {
		return
	}
	if !check(node.StringValue) {
		result.AddProblem(ctx.problem(node, SeverityError, "", "String does not match the format \""+*schema.Format+"\"."))
	}
}
