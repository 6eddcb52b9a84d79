package jsonls

// matching.go implements the MatchingSchemas collector: a record of every
// (node, schema) pair the validator actually applied, used by editor
// features like hover and completion to answer "which schemas apply here".
// An anyOf/oneOf branch or an if trial runs against its own forked collector
// so its pairs can be discarded along with its diagnostics; only the best
// anyOf/oneOf alternative and the if trial get merged into the outer
// collector. A contains trial runs with no collector at all, and a not trial
// records straight into the outer collector.
// Inverted matches from `not` carry their own flag since a schema
// "matching" inside a `not` is actually a failure of the outer one.

// SchemaMatch is one recorded (node, schema) evaluation.
type SchemaMatch struct {
	Node     *Node
	Schema   *Schema
	Inverted bool // true when this match occurred inside a `not`
}

// MatchingSchemas collects SchemaMatch entries during a validation pass. A
// nil collector is a valid no-op collector: every method degrades to doing
// nothing, so validate() can take a collector unconditionally without a
// caller ever paying for bookkeeping it doesn't want.
type MatchingSchemas struct {
	focusOffset int
	hasFocus    bool
	exclude     *Schema
	matches     []SchemaMatch
}

// NewMatchingSchemas returns a collector that records every match.
func NewMatchingSchemas() *MatchingSchemas {
	return &MatchingSchemas{focusOffset: -1}
}

// NewFocusedMatchingSchemas returns a collector that only records matches
// for nodes containing offset, optionally skipping one schema (used to
// avoid re-reporting the schema a caller already knows applies).
func NewFocusedMatchingSchemas(offset int, exclude *Schema) *MatchingSchemas {
	return &MatchingSchemas{focusOffset: offset, hasFocus: true, exclude: exclude}
}

// fork returns a fresh collector with the same focus/exclude scoping as m
// but an empty buffer, for a trial evaluation whose matches may need to be
// discarded rather than merged. A nil receiver forks to nil, so a caller
// that passed no collector at all never allocates one for trials either.
func (m *MatchingSchemas) fork() *MatchingSchemas {
	if m == nil {
		return nil
	}
	return &MatchingSchemas{focusOffset: m.focusOffset, hasFocus: m.hasFocus, exclude: m.exclude}
}

// merge appends sub's recorded matches onto m, for folding a kept trial
// (the winning anyOf/oneOf branch, an if trial) back into its parent.
func (m *MatchingSchemas) merge(sub *MatchingSchemas) {
	if m == nil || sub == nil {
		return
	}
	m.matches = append(m.matches, sub.matches...)
}

// Add records a match, subject to the collector's focus/exclude scoping.
func (m *MatchingSchemas) Add(node *Node, schema *Schema, inverted bool) {
	if m == nil || node == nil || schema == nil {
		return
	}
	if m.exclude != nil && schema == m.exclude {
		return
	}
	if m.hasFocus && !node.Contains(m.focusOffset, true) {
		return
	}
	m.matches = append(m.matches, SchemaMatch{Node: node, Schema: schema, Inverted: inverted})
}

// Matches returns every recorded match, in the order evaluation visited them.
func (m *MatchingSchemas) Matches() []SchemaMatch {
	if m == nil {
		return nil
	}
	return m.matches
}

// SchemasAt returns the (non-inverted) schemas recorded against the node
// whose span most tightly contains offset, in recording order; schemas of
// outer nodes are not included.
func (m *MatchingSchemas) SchemasAt(offset int) []*Schema {
	if m == nil {
		return nil
	}
	var best *Node
	var schemas []*Schema
	for _, match := range m.matches {
		if match.Inverted || !match.Node.Contains(offset, true) {
			continue
		}
		if best == nil || match.Node.Length < best.Length {
			best = match.Node
			schemas = []*Schema{match.Schema}
		} else if match.Node.Length == best.Length {
			schemas = append(schemas, match.Schema)
		}
	}
	return schemas
}
