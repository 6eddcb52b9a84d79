package jsonls

import "strconv"

// evaluateExclusiveMinimum checks that the node's numeric value is strictly
// greater than "exclusiveMinimum" when it's the Draft-06/07 numeric form —
// an independent bound of its own. The Draft-04 boolean-modifier-of-
// "minimum" form is handled in minimum.go instead, since it has no bound of
// its own to check against.
func evaluateExclusiveMinimum(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.ExclusiveMinimum == nil || schema.ExclusiveMinimum.IsBool {
		return
	}
	if node.NumberValue <= schema.ExclusiveMinimum.Value {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Value is below the exclusive minimum of "+strconv.FormatFloat(schema.ExclusiveMinimum.Value, 'g', -1, 64)+"."))
	}
}
