package jsonls

import "strconv"

// evaluateMinLength checks the node string's length in UTF-16 code units
// against "minLength". Length is measured in UTF-16 code units rather than
// bytes or runes, so astral characters (outside the BMP) count as two units,
// matching JavaScript's String.prototype.length.
func evaluateMinLength(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.MinLength == nil {
		return
	}
	if utf16Len(node.StringValue) < *schema.MinLength {
		result.AddProblem(ctx.problem(node, SeverityError, "", "String is shorter than the minimum length of "+strconv.Itoa(*schema.MinLength)+"."))
	}
}
