package jsonls

// evaluateAdditionalProperties constrains (or, if the schema is `false`,
// forbids) object properties not already covered by "properties" or
// "patternProperties".
func evaluateAdditionalProperties(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.AdditionalProperties == nil {
		return
	}
	matched := matchedPropertyNames(node, schema)

	if schema.AdditionalProperties.IsAlwaysFalse() {
		for _, prop := range node.Properties {
			if prop.Key == nil || matched[prop.Key.StringValue] {
				continue
			}
			result.AddProblem(ctx.problem(prop.Key, SeverityError, "", "Property "+prop.Key.StringValue+" is not allowed."))
		}
		return
	}

	for _, prop := range node.Properties {
		if prop.Key == nil || prop.Value == nil || matched[prop.Key.StringValue] {
			continue
		}
		sub := validate(prop.Value, schema.AdditionalProperties, ctx.descend("additionalProperties"))
		result.MergePropertyMatch(sub)
	}
}
