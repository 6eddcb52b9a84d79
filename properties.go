package jsonls

import (
	"regexp"
	"sort"
)

// evaluateProperties checks each named subschema in "properties" against
// the matching object property, when present. Names are sorted before
// iterating so diagnostic order doesn't depend on Go's randomized map
// iteration. matchedPropertyNames computes, once per object validation, the
// set of property names already covered by "properties"/"patternProperties"
// so additionalProperties knows what's left.
func evaluateProperties(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if len(schema.Properties) == 0 {
		return
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prop := node.findProperty(name)
		if prop == nil || prop.Value == nil {
			continue
		}
		sub := validate(prop.Value, schema.Properties[name], ctx.descend("properties/"+name))
		result.MergePropertyMatch(sub)
	}
}

// matchedPropertyNames returns the set of object property names covered by
// "properties" or "patternProperties", used by additionalProperties to
// decide which properties are left over.
func matchedPropertyNames(node *Node, schema *Schema) map[string]bool {
	matched := make(map[string]bool)
	for _, prop := range node.Properties {
		if prop.Key == nil {
			continue
		}
		name := prop.Key.StringValue
		if _, ok := schema.Properties[name]; ok {
			matched[name] = true
			continue
		}
		for pattern := range schema.PatternProperties {
			if re, err := regexp.Compile(pattern); err == nil && re.MatchString(name) {
				matched[name] = true
				break
			}
		}
	}
	return matched
}
