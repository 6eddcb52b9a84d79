package jsonls

import (
	"strconv"
	"strings"
)

// evaluateItems checks array elements against "items", supporting both the
// Draft-07 tuple form ("items": [schema, ...] with "additionalItems"
// covering the rest) and the single-schema form applied to every element.
// Failing indexes are aggregated into a single diagnostic naming every one.
func evaluateItems(node *Node, schema *Schema, ctx *vctx, result *ValidationResult) {
	if schema.ItemsList == nil && schema.Items == nil {
		return
	}

	var badIndexes []string

	checkElement := func(i int, itemSchema *Schema) {
		if itemSchema == nil {
			return
		}
		sub := validate(node.Elements[i], itemSchema, ctx.descend("items/"+strconv.Itoa(i)))
		result.MergePropertyMatch(sub)
		if sub.HasProblems() {
			badIndexes = append(badIndexes, strconv.Itoa(i))
		}
	}

	if schema.ItemsList != nil {
		for i := 0; i < len(node.Elements) && i < len(schema.ItemsList); i++ {
			checkElement(i, schema.ItemsList[i])
		}
		for i := len(schema.ItemsList); i < len(node.Elements); i++ {
			checkElement(i, schema.AdditionalItems)
		}
	} else {
		for i := range node.Elements {
			checkElement(i, schema.Items)
		}
	}

	if len(badIndexes) > 0 {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Array items at index "+strings.Join(badIndexes, ", ")+" do not match the schema."))
	}
}
