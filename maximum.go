package jsonls

import "strconv"

// evaluateMaximum checks that the node's numeric value is <= "maximum". When
// "exclusiveMaximum" is the Draft-04 boolean-true modifier, the bound
// becomes exclusive and this is the only keyword that enforces it; the
// numeric exclusiveMaximum form is an independent bound handled in
// exclusiveMaximum.go.
func evaluateMaximum(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.Maximum == nil {
		return
	}
	if schema.ExclusiveMaximum != nil && schema.ExclusiveMaximum.IsBool && schema.ExclusiveMaximum.BoolValue {
		if node.NumberValue >= schema.Maximum.Value {
			result.AddProblem(ctx.problem(node, SeverityError, "", "Value is above the exclusive maximum of "+strconv.FormatFloat(schema.Maximum.Value, 'g', -1, 64)+"."))
		}
		return
	}
	if node.NumberValue > schema.Maximum.Value {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Value is above the maximum of "+strconv.FormatFloat(schema.Maximum.Value, 'g', -1, 64)+"."))
	}
}
