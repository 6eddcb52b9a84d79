package jsonls

import "strconv"

// evaluateMaxLength checks the node string's UTF-16 length against
// "maxLength" (see minlength.go for the UTF-16 rationale).
func evaluateMaxLength(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.MaxLength == nil {
		return
	}
	if utf16Len(node.StringValue) > *schema.MaxLength {
		result.AddProblem(ctx.problem(node, SeverityError, "", "String is longer than the maximum length of "+strconv.Itoa(*schema.MaxLength)+"."))
	}
}
