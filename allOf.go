package jsonls

import "strconv"

// evaluateAllOf checks the node against every subschema in "allOf", merging
// every branch's diagnostics unconditionally: unlike anyOf/oneOf, allOf has
// nothing to choose between.
func evaluateAllOf(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	for i, sub := range schema.AllOf {
		if sub == nil {
			continue
		}
		result.Merge(validate(node, sub, ctx.descend("allOf/"+strconv.Itoa(i))))
	}
}
