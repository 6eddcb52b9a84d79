package jsonls

import (
	"regexp"
	"sort"
)

// evaluatePatternProperties applies each "patternProperties" subschema to
// every object property whose name matches that pattern. A property may be
// checked against more than one pattern if more than one matches its name.
// Patterns are sorted before iterating so diagnostic order doesn't depend
// on Go's randomized map iteration.
func evaluatePatternProperties(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if len(schema.PatternProperties) == 0 {
		return
	}
	patterns := make([]string, 0, len(schema.PatternProperties))
	for pattern := range schema.PatternProperties {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		for _, prop := range node.Properties {
			if prop.Key == nil || prop.Value == nil || !re.MatchString(prop.Key.StringValue) {
				continue
			}
			sub := validate(prop.Value, schema.PatternProperties[pattern], ctx.descend("patternProperties/"+pattern))
			result.MergePropertyMatch(sub)
		}
	}
}
