package jsonls

// validate.go is the top-level dispatch the validator drives:
// it walks the AST alongside the schema tree, applying type-agnostic
// keywords (type, enum, const) everywhere and kind-specific keywords once
// the node's JSON type is known, recording every (node, schema) pair it
// visits into the caller's MatchingSchemas collector (which may be nil —
// collector methods are nil-safe, so a caller that doesn't need matching
// schemas pays nothing for it).

// vctx threads per-call state through every keyword's evaluate function: the
// TextDocument needed to turn a node's byte offsets into a Diagnostic Range,
// and the MatchingSchemas collector trial evaluations (not/anyOf/oneOf/if)
// report into.
type vctx struct {
	td        *TextDocument
	collector *MatchingSchemas
	inverted  bool
	path      string
}

// inverting returns a copy of ctx with its inverted flag flipped, for
// descending into a "not" subschema.
func (ctx *vctx) inverting() *vctx {
	return &vctx{td: ctx.td, collector: ctx.collector, inverted: !ctx.inverted, path: ctx.path}
}

// descend returns a copy of ctx with seg appended to its schema path, for
// recursing into a named subschema (a keyword, array index, or property
// name). Purely a debugging aid surfaced on Diagnostic.SchemaPath; never
// affects matching or scoring.
func (ctx *vctx) descend(seg string) *vctx {
	return &vctx{td: ctx.td, collector: ctx.collector, inverted: ctx.inverted, path: ctx.path + "/" + seg}
}

// trial returns a copy of ctx descended into seg with a forked collector,
// for a branch evaluation (anyOf/oneOf alternative, if-trial) whose recorded
// matches must be kept separate from the outer
// collector until the caller decides whether to merge or discard them.
func (ctx *vctx) trial(seg string) *vctx {
	return &vctx{td: ctx.td, collector: ctx.collector.fork(), inverted: ctx.inverted, path: ctx.path + "/" + seg}
}

// problem builds a Diagnostic anchored to node's span.
func (ctx *vctx) problem(node *Node, severity Severity, code ErrorCode, message string) Diagnostic {
	return Diagnostic{
		Range: Range{
			Start: ctx.td.PositionAt(node.Offset),
			End:   ctx.td.PositionAt(node.End()),
		},
		Message:    message,
		Severity:   severity,
		Code:       code,
		SchemaPath: ctx.path,
	}
}

// problemAt builds a Diagnostic anchored to a single-byte span starting at
// offset, for a diagnostic with no node of its own to point at (a missing
// required property, an "oneOf" ambiguity flagged at the value rather than
// at whichever alternative matched it).
func (ctx *vctx) problemAt(offset int, severity Severity, code ErrorCode, message string) Diagnostic {
	return Diagnostic{
		Range: Range{
			Start: ctx.td.PositionAt(offset),
			End:   ctx.td.PositionAt(offset + 1),
		},
		Message:    message,
		Severity:   severity,
		Code:       code,
		SchemaPath: ctx.path,
	}
}

// Validate checks doc's root node against schema, without collecting
// matching-schema information.
func Validate(doc *JSONDocument, schema *Schema) *ValidationResult {
	if doc == nil || doc.Root == nil {
		return NewValidationResult()
	}
	return validate(doc.Root, schema, &vctx{td: doc.Text()})
}

// ValidateCollectingMatches checks doc's root node against schema, also
// recording every (node, schema) pair visited. When collector is nil, one
// is allocated automatically; pass NewFocusedMatchingSchemas to scope
// collection to a single offset (e.g. for hover/completion).
func ValidateCollectingMatches(doc *JSONDocument, schema *Schema, collector *MatchingSchemas) (*ValidationResult, *MatchingSchemas) {
	if collector == nil {
		collector = NewMatchingSchemas()
	}
	if doc == nil || doc.Root == nil {
		return NewValidationResult(), collector
	}
	ctx := &vctx{td: doc.Text(), collector: collector}
	return validate(doc.Root, schema, ctx), collector
}

// validate is the recursive core every keyword file's evaluate* function is
// called from, directly or (for allOf/anyOf/oneOf/not/if) via a fresh
// sub-result; anyOf/oneOf pick which sub-result to keep with
// ValidationResult.Compare.
func validate(node *Node, schema *Schema, ctx *vctx) *ValidationResult {
	result := NewValidationResult()
	if node == nil || schema == nil {
		return result
	}

	if schema.IsAlwaysFalse() {
		result.AddProblem(ctx.problem(node, SeverityError, "", "Matches a schema that is always false."))
		return result
	}

	ctx.collector.Add(node, schema, ctx.inverted)

	if schema.IsAlwaysTrue() {
		return result
	}

	evaluateType(node, schema, ctx, result)
	evaluateEnum(node, schema, ctx, result)
	evaluateConst(node, schema, ctx, result)

	switch node.Type {
	case NodeNumber:
		evaluateMinimum(node, schema, ctx, result)
		evaluateMaximum(node, schema, ctx, result)
		evaluateExclusiveMinimum(node, schema, ctx, result)
		evaluateExclusiveMaximum(node, schema, ctx, result)
		evaluateMultipleOf(node, schema, ctx, result)
	case NodeString:
		evaluateMinLength(node, schema, ctx, result)
		evaluateMaxLength(node, schema, ctx, result)
		evaluatePattern(node, schema, ctx, result)
		evaluateFormat(node, schema, ctx, result)
	case NodeArray:
		evaluateItems(node, schema, ctx, result)
		evaluateContains(node, schema, ctx, result)
		evaluateMinItems(node, schema, ctx, result)
		evaluateMaxItems(node, schema, ctx, result)
		evaluateUniqueItems(node, schema, ctx, result)
	case NodeObject:
		evaluateProperties(node, schema, ctx, result)
		evaluatePatternProperties(node, schema, ctx, result)
		evaluateAdditionalProperties(node, schema, ctx, result)
		evaluatePropertyNames(node, schema, ctx, result)
		evaluateRequired(node, schema, ctx, result)
		evaluateMinProperties(node, schema, ctx, result)
		evaluateMaxProperties(node, schema, ctx, result)
		evaluateDependencies(node, schema, ctx, result)
	}

	evaluateAllOf(node, schema, ctx, result)
	evaluateAnyOf(node, schema, ctx, result)
	evaluateOneOf(node, schema, ctx, result)
	evaluateNot(node, schema, ctx, result)
	evaluateConditional(node, schema, ctx, result)

	evaluateDeprecated(node, schema, ctx, result)

	return result
}
