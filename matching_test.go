package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingSchemasNilIsNoop(t *testing.T) {
	var m *MatchingSchemas
	assert.NotPanics(t, func() {
		m.Add(&Node{}, &Schema{}, false)
	})
	assert.Nil(t, m.Matches())
	assert.Nil(t, m.SchemasAt(0))
}

func TestMatchingSchemasExclude(t *testing.T) {
	excluded := &Schema{}
	included := &Schema{}
	m := NewMatchingSchemas()
	m.exclude = excluded

	node := &Node{Offset: 0, Length: 5}
	m.Add(node, excluded, false)
	m.Add(node, included, false)

	require.Len(t, m.Matches(), 1)
	assert.Same(t, included, m.Matches()[0].Schema)
}

func TestMatchingSchemasFocusScoping(t *testing.T) {
	m := NewFocusedMatchingSchemas(10, nil)

	inRange := &Node{Offset: 5, Length: 10}
	outOfRange := &Node{Offset: 20, Length: 5}

	m.Add(inRange, &Schema{}, false)
	m.Add(outOfRange, &Schema{}, false)

	require.Len(t, m.Matches(), 1)
	assert.Same(t, inRange, m.Matches()[0].Node)
}

func TestMatchingSchemasAtPrefersInnermost(t *testing.T) {
	m := NewMatchingSchemas()
	outer := &Node{Offset: 0, Length: 20}
	inner := &Node{Offset: 5, Length: 5}
	outerSchema := &Schema{}
	innerSchema := &Schema{}

	m.Add(outer, outerSchema, false)
	m.Add(inner, innerSchema, false)

	schemas := m.SchemasAt(7)
	require.Len(t, schemas, 1)
	assert.Same(t, innerSchema, schemas[0])
}

func TestMatchingSchemasAtSkipsInverted(t *testing.T) {
	m := NewMatchingSchemas()
	node := &Node{Offset: 0, Length: 5}
	m.Add(node, &Schema{}, true)

	assert.Empty(t, m.SchemasAt(2))
}

func TestMatchingSchemasForkIsIndependentUntilMerged(t *testing.T) {
	m := NewMatchingSchemas()
	node := &Node{Offset: 0, Length: 5}
	m.Add(node, &Schema{}, false)

	sub := m.fork()
	sub.Add(node, &Schema{}, false)

	assert.Len(t, m.Matches(), 1, "fork must not mutate the parent until merged")
	assert.Len(t, sub.Matches(), 1)

	m.merge(sub)
	assert.Len(t, m.Matches(), 2)
}

func TestMatchingSchemasForkNilIsNoop(t *testing.T) {
	var m *MatchingSchemas
	sub := m.fork()
	assert.Nil(t, sub)

	full := NewMatchingSchemas()
	full.merge(nil)
	assert.Empty(t, full.Matches())
}

func TestValidateCollectingMatchesDiscardsLosingAnyOfBranch(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"anyOf": [{"type": "string"}, {"type": "number"}]}`))
	require.NoError(t, err)
	doc := Parse(`5`, ParseOptions{})
	collector := NewMatchingSchemas()
	_, collector = ValidateCollectingMatches(doc, schema, collector)

	for _, m := range collector.Matches() {
		if m.Schema.Type != nil && len(m.Schema.Type) == 1 && m.Schema.Type[0] == "string" {
			t.Fatalf("losing anyOf branch's schema must not be recorded in the outer collector")
		}
	}
}
