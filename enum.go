package jsonls

import (
	"fmt"
	"strings"
)

// evaluateEnum checks the node's value against the schema's "enum" list,
// using DeepEqual over projected AST values. A match sets EnumValueMatch so
// anyOf/oneOf branch selection can prefer a branch that nailed the enum over
// one that merely matched the type.
func evaluateEnum(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if len(schema.Enum) == 0 {
		return
	}
	result.EnumValues = append(result.EnumValues, schema.Enum...)

	value := node.Value()
	for _, candidate := range schema.Enum {
		if DeepEqual(value, candidate) {
			result.EnumValueMatch = true
			return
		}
	}
	result.AddProblem(ctx.problem(node, SeverityError, ErrEnumValueMismatch, "Value is not accepted. Valid values: "+formatEnumValues(schema.Enum)+"."))
}

func formatEnumValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, ", ")
}
