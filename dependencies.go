package jsonls

import (
	"sort"
	"strings"
)

// evaluateDependencies implements the "dependencies" keyword: a key's
// presence either requires a list of sibling properties, or makes the whole
// object subject to an additional schema. Keys are sorted before iterating
// so diagnostic order doesn't depend on Go's randomized map iteration.
func evaluateDependencies(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if len(schema.Dependencies) == 0 {
		return
	}
	keys := make([]string, 0, len(schema.Dependencies))
	for key := range schema.Dependencies {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		dep := schema.Dependencies[key]
		if node.findProperty(key) == nil {
			continue
		}
		if dep.Schema != nil {
			sub := validate(node, dep.Schema, ctx.descend("dependencies/"+key))
			result.Merge(sub)
			continue
		}
		var missing []string
		for _, required := range dep.Required {
			if node.findProperty(required) == nil {
				missing = append(missing, required)
			}
		}
		if len(missing) > 0 {
			result.AddProblem(ctx.problem(node, SeverityError, "", "Property \""+key+"\" requires "+strings.Join(missing, ", ")+"."))
		}
	}
}
