package jsonls

// evaluatePropertyNames checks every object property name (as a string
// value in its own right) against the "propertyNames" subschema. The key
// node already carries its own offset/length from the parser, so
// diagnostics point at the key's source span, not the whole object.
func evaluatePropertyNames(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.PropertyNames == nil {
		return
	}
	for _, prop := range node.Properties {
		if prop.Key == nil {
			continue
		}
		sub := validate(prop.Key, schema.PropertyNames, ctx.descend("propertyNames"))
		result.Merge(sub)
	}
}
