package jsonls

import "math"

// evaluateType checks the node's JSON type against the schema's "type"
// keyword, which may list more than one acceptable type.
func evaluateType(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if len(schema.Type) == 0 {
		return
	}
	actual := node.Type.String()
	for _, t := range schema.Type {
		if typeMatches(t, node) {
			result.PrimaryValueMatches++
			return
		}
	}
	result.AddProblem(ctx.problem(node, SeverityError, "", "Incorrect type. Expected \""+joinTypes(schema.Type)+"\".  Found type \""+actual+"\"."))
}

// typeMatches accounts for the JSON Schema convention that an integer-valued
// number also satisfies "integer", and that a whole-number literal such as
// 3.0 counts as an integer.
func typeMatches(t string, node *Node) bool {
	switch t {
	case "integer":
		return node.Type == NodeNumber && node.NumberValue == math.Trunc(node.NumberValue)
	default:
		return t == node.Type.String()
	}
}

func joinTypes(types []string) string {
	out := ""
	for i, t := range types {
		if i > 0 {
			out += "/"
		}
		out += t
	}
	return out
}
