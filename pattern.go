package jsonls

import "regexp"

// evaluatePattern checks the node string against the schema's "pattern"
// regular expression. No compiled-regexp cache is kept on the Schema: a
// Schema is read-only once parsed and may be validated against
// concurrently from multiple goroutines, so caching would need its own
// synchronization for a cost (one regexp.Compile per validation) that is
// small next to parsing the document itself.
func evaluatePattern(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.Pattern == nil {
		return
	}
	re, err := regexp.Compile(*schema.Pattern)
	if err != nil {
		result.AddProblem(ctx.problem(node, SeverityError, "", "String does not match the pattern, and the pattern itself is invalid: "+*schema.Pattern))
		return
	}
	if !re.MatchString(node.StringValue) {
		message := "String does not match the pattern of \"" + *schema.Pattern + "\"."
		if schema.ErrorMessage != nil {
			if custom, ok := schema.ErrorMessage["pattern"]; ok {
				message = custom
			}
		}
		result.AddProblem(ctx.problem(node, SeverityError, "", message))
	}
}
