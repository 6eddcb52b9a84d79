package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchemaBoolean(t *testing.T) {
	trueSchema, err := ParseSchema([]byte(`true`))
	require.NoError(t, err)
	assert.True(t, trueSchema.IsAlwaysTrue())
	assert.False(t, trueSchema.IsAlwaysFalse())

	falseSchema, err := ParseSchema([]byte(`false`))
	require.NoError(t, err)
	assert.True(t, falseSchema.IsAlwaysFalse())
	assert.False(t, falseSchema.IsAlwaysTrue())
}

func TestParseSchemaItemsSingle(t *testing.T) {
	s, err := ParseSchema([]byte(`{"items": {"type": "number"}}`))
	require.NoError(t, err)
	require.NotNil(t, s.Items)
	require.Nil(t, s.ItemsList)
	assert.Equal(t, SchemaType{"number"}, s.Items.Type)
}

func TestParseSchemaItemsTuple(t *testing.T) {
	s, err := ParseSchema([]byte(`{"items": [{"type": "number"}, {"type": "string"}]}`))
	require.NoError(t, err)
	require.Nil(t, s.Items)
	require.Len(t, s.ItemsList, 2)
	assert.Equal(t, SchemaType{"number"}, s.ItemsList[0].Type)
	assert.Equal(t, SchemaType{"string"}, s.ItemsList[1].Type)
}

func TestParseSchemaTypeStringOrArray(t *testing.T) {
	s, err := ParseSchema([]byte(`{"type": "string"}`))
	require.NoError(t, err)
	assert.Equal(t, SchemaType{"string"}, s.Type)

	s, err = ParseSchema([]byte(`{"type": ["string", "null"]}`))
	require.NoError(t, err)
	assert.Equal(t, SchemaType{"string", "null"}, s.Type)
}

func TestParseSchemaConstDistinguishesNullFromAbsent(t *testing.T) {
	absent, err := ParseSchema([]byte(`{}`))
	require.NoError(t, err)
	assert.Nil(t, absent.Const)

	explicitNull, err := ParseSchema([]byte(`{"const": null}`))
	require.NoError(t, err)
	require.NotNil(t, explicitNull.Const)
	assert.True(t, explicitNull.Const.IsSet)
	assert.Nil(t, explicitNull.Const.Value)
}

func TestParseSchemaDependenciesPolymorphism(t *testing.T) {
	s, err := ParseSchema([]byte(`{"dependencies": {"a": ["b", "c"], "d": {"required": ["e"]}}}`))
	require.NoError(t, err)
	require.Contains(t, s.Dependencies, "a")
	require.Contains(t, s.Dependencies, "d")
	assert.Equal(t, []string{"b", "c"}, s.Dependencies["a"].Required)
	require.NotNil(t, s.Dependencies["d"].Schema)
	assert.Equal(t, []string{"e"}, s.Dependencies["d"].Schema.Required)
}

func TestParseSchemaNumberPreservesLexeme(t *testing.T) {
	s, err := ParseSchema([]byte(`{"multipleOf": 0.10}`))
	require.NoError(t, err)
	require.NotNil(t, s.MultipleOf)
	assert.Equal(t, "0.10", s.MultipleOf.Lexeme)
	assert.Equal(t, 0.1, s.MultipleOf.Value)
}

func TestParseSchemaExclusiveMinimumBooleanForm(t *testing.T) {
	s, err := ParseSchema([]byte(`{"type": "number", "minimum": 0, "exclusiveMinimum": true}`))
	require.NoError(t, err)
	require.NotNil(t, s.ExclusiveMinimum)
	assert.True(t, s.ExclusiveMinimum.IsBool)
	assert.True(t, s.ExclusiveMinimum.BoolValue)
}

func TestParseSchemaExclusiveMinimumNumericForm(t *testing.T) {
	s, err := ParseSchema([]byte(`{"exclusiveMinimum": 5}`))
	require.NoError(t, err)
	require.NotNil(t, s.ExclusiveMinimum)
	assert.False(t, s.ExclusiveMinimum.IsBool)
	assert.Equal(t, 5.0, s.ExclusiveMinimum.Value)
}

func TestParseSchemaRefIsAlwaysTrue(t *testing.T) {
	s, err := ParseSchema([]byte(`{"$ref": "#/definitions/thing"}`))
	require.NoError(t, err)
	assert.True(t, s.IsAlwaysTrue())
}

func TestParseSchemaCollectsExtraKeywords(t *testing.T) {
	s, err := ParseSchema([]byte(`{"type": "string", "examples": ["a", "b"]}`))
	require.NoError(t, err)
	require.Contains(t, s.Extra, "examples")
	assert.Equal(t, []any{"a", "b"}, s.Extra["examples"])
}
