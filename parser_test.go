package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidDocuments(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"object", `{"a": 1, "b": [1, 2, 3], "c": {"d": null}}`},
		{"array", `[1, "two", true, false, null]`},
		{"string", `"hello"`},
		{"number", `3.14`},
		{"negative exponent", `-1.5e-10`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.text, ParseOptions{})
			require.NotNil(t, doc.Root)
			assert.Empty(t, doc.SyntaxErrors)
		})
	}
}

func TestParseTrailingComma(t *testing.T) {
	doc := Parse(`[1, 2, ]`, ParseOptions{})
	require.NotNil(t, doc.Root)
	require.Len(t, doc.SyntaxErrors, 1)
	assert.Equal(t, ErrTrailingComma, doc.SyntaxErrors[0].Code)
	assert.Len(t, doc.Root.Elements, 2)
}

func TestParseUnquotedKeyAdopted(t *testing.T) {
	doc := Parse(`{foo: 1}`, ParseOptions{})
	require.NotNil(t, doc.Root)
	require.Len(t, doc.Root.Properties, 1)
	assert.Equal(t, "foo", doc.Root.Properties[0].Key.StringValue)

	var sawPropertyNameError bool
	for _, d := range doc.SyntaxErrors {
		if d.Code == ErrPropertyNameExpected {
			sawPropertyNameError = true
		}
	}
	assert.True(t, sawPropertyNameError)
}

func TestParseDuplicateKeyWarnsBothOccurrences(t *testing.T) {
	doc := Parse(`{"a": 1, "a": 2}`, ParseOptions{})
	require.NotNil(t, doc.Root)

	var dupCount int
	for _, d := range doc.SyntaxErrors {
		if d.Code == ErrDuplicateKey {
			dupCount++
		}
	}
	assert.Equal(t, 2, dupCount)
}

func TestParseMissingComma(t *testing.T) {
	doc := Parse(`[1 2]`, ParseOptions{})
	require.NotNil(t, doc.Root)
	require.NotEmpty(t, doc.SyntaxErrors)
	assert.Equal(t, ErrCommaExpected, doc.SyntaxErrors[0].Code)
	assert.Len(t, doc.Root.Elements, 2)
}

func TestParseMissingValueRecovers(t *testing.T) {
	doc := Parse(`{"a": }`, ParseOptions{})
	require.NotNil(t, doc.Root)
	require.Len(t, doc.Root.Properties, 1)
	assert.Nil(t, doc.Root.Properties[0].Value)
	require.NotEmpty(t, doc.SyntaxErrors)
}

func TestParseAtMostOneDiagnosticPerOffset(t *testing.T) {
	doc := Parse(`{{{`, ParseOptions{})
	seen := make(map[int]int)
	for _, d := range doc.SyntaxErrors {
		seen[d.Range.Start.Line*1_000_000+d.Range.Start.Character]++
	}
	for _, count := range seen {
		assert.LessOrEqual(t, count, 1)
	}
}

func TestParseComments(t *testing.T) {
	doc := Parse("{\n  // a comment\n  \"a\": 1 /* block */\n}", ParseOptions{CollectComments: true})
	require.NotNil(t, doc.Root)
	assert.NotEmpty(t, doc.Comments)
}

func TestParseEmptyInput(t *testing.T) {
	doc := Parse(``, ParseOptions{})
	assert.Nil(t, doc.Root)
}

func TestDocumentStats(t *testing.T) {
	doc := Parse(`{"a": [1, 2, ]}`, ParseOptions{})
	stats := doc.Stats()
	assert.Greater(t, stats.NodeCount, 0)
	assert.Equal(t, 1, stats.ErrorCount)
	assert.Equal(t, 0, stats.WarningCount)
}
