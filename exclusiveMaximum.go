package jsonls

import "strconv"

// evaluateExclusiveMaximum checks that the node's numeric value is strictly
// less than "exclusiveMaximum" when it's the Draft-06/07 numeric form (the
// Draft-04 boolean-modifier form is handled in maximum.go).
func evaluateExclusiveMaximum(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.ExclusiveMaximum == nil || schema.ExclusiveMaximum.IsBool {
		return
	}
	if node.NumberValue >= schema.ExclusiveMaximum.Value {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Value is above the exclusive maximum of "+strconv.FormatFloat(schema.ExclusiveMaximum.Value, 'g', -1, 64)+"."))
	}
}
