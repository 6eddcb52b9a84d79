package jsonls

// evaluateRequired checks that every name in "required" has a property in
// the object, emitting one diagnostic per missing name rather than a single
// aggregated message. Each is anchored to the enclosing property's key when
// the object itself is a property value, or to the object's own opening
// brace when it's the document root or an array element — there being no
// key to point at for a name that was never written.
func evaluateRequired(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if len(schema.Required) == 0 {
		return
	}
	for _, name := range schema.Required {
		if node.findProperty(name) != nil {
			continue
		}
		message := "Missing property \"" + name + "\"."
		if node.Parent != nil && node.Parent.Type == NodeProperty && node.Parent.Key != nil {
			result.AddProblem(ctx.problem(node.Parent.Key, SeverityError, "", message))
			continue
		}
		result.AddProblem(ctx.problemAt(node.Offset, SeverityError, "", message))
	}
}
