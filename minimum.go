package jsonls

import "strconv"

// evaluateMinimum checks that the node's numeric value is >= "minimum".
// Comparing decoded float64 values is exact enough for an inequality
// (unlike multipleOf's exact-remainder requirement, see decimal.go). When
// "exclusiveMinimum" is the Draft-04 boolean-true modifier, the bound
// becomes exclusive and this is the only keyword that enforces it; the
// numeric exclusiveMinimum form is an independent bound handled in
// exclusiveMinimum.go.
func evaluateMinimum(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.Minimum == nil {
		return
	}
	if schema.ExclusiveMinimum != nil && schema.ExclusiveMinimum.IsBool && schema.ExclusiveMinimum.BoolValue {
		if node.NumberValue <= schema.Minimum.Value {
			result.AddProblem(ctx.problem(node, SeverityError, "", "Value is below the exclusive minimum of "+strconv.FormatFloat(schema.Minimum.Value, 'g', -1, 64)+"."))
		}
		return
	}
	if node.NumberValue < schema.Minimum.Value {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Value is below the minimum of "+strconv.FormatFloat(schema.Minimum.Value, 'g', -1, 64)+"."))
	}
}
