package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationResultMerge(t *testing.T) {
	r := NewValidationResult()
	sub := NewValidationResult()
	sub.AddProblem(Diagnostic{Message: "boom"})
	sub.PrimaryValueMatches = 2

	r.Merge(sub)

	assert.Len(t, r.Problems, 1)
	assert.Equal(t, 2, r.PrimaryValueMatches)
}

func TestValidationResultMergePropertyMatch(t *testing.T) {
	r := NewValidationResult()

	clean := NewValidationResult()
	r.MergePropertyMatch(clean)

	dirty := NewValidationResult()
	dirty.AddProblem(Diagnostic{Message: "boom"})
	r.MergePropertyMatch(dirty)

	assert.Equal(t, 2, r.PropertiesMatches)
	assert.Equal(t, 1, r.PropertiesValueMatches)
}

func TestValidationResultCompareOrdering(t *testing.T) {
	fewerProblems := NewValidationResult()
	moreProblems := NewValidationResult()
	moreProblems.AddProblem(Diagnostic{Message: "x"})
	assert.True(t, fewerProblems.Better(moreProblems))
	assert.False(t, moreProblems.Better(fewerProblems))

	a := NewValidationResult()
	a.AddProblem(Diagnostic{Message: "x"})
	a.EnumValueMatch = true
	b := NewValidationResult()
	b.AddProblem(Diagnostic{Message: "x"})
	assert.True(t, a.Better(b), "equal problem counts: enum match should win")

	c := NewValidationResult()
	c.AddProblem(Diagnostic{Message: "x"})
	c.PrimaryValueMatches = 3
	d := NewValidationResult()
	d.AddProblem(Diagnostic{Message: "x"})
	d.PrimaryValueMatches = 1
	assert.True(t, c.Better(d), "equal problems/enum: higher PrimaryValueMatches should win")
}

func TestValidationResultMergeEnumValues(t *testing.T) {
	r := NewValidationResult()
	sub := NewValidationResult()
	sub.EnumValues = []any{"a", "b"}
	r.MergeEnumValues(sub)
	assert.Equal(t, []any{"a", "b"}, r.EnumValues)
}
