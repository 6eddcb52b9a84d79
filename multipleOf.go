package jsonls

// evaluateMultipleOf checks that the node's numeric value is an exact
// multiple of "multipleOf". Delegates to decimal.go's
// mantissa/scale decomposition of the preserved source lexemes rather than
// a floating-point division, which would reject valid cases like
// 0.3 % 0.1 == 0 to float64 rounding error.
func evaluateMultipleOf(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.MultipleOf == nil {
		return
	}
	isMultiple, ok := isMultipleOfLexeme(node.NumberLexeme, schema.MultipleOf.Lexeme)
	if !ok {
		// Fall back to a direct float comparison if either lexeme can't be
		// decomposed (should not happen for scanner-produced lexemes).
		if schema.MultipleOf.Value == 0 {
			return
		}
		quotient := node.NumberValue / schema.MultipleOf.Value
		isMultiple = quotient == float64(int64(quotient))
	}
	if !isMultiple {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Value is not divisible by "+schema.MultipleOf.Lexeme))
	}
}
