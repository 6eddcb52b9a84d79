package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMultipleOfLexeme(t *testing.T) {
	tests := []struct {
		name          string
		value, divisor string
		want          bool
	}{
		{"0.3 is multiple of 0.1", "0.3", "0.1", true},
		{"1 is not multiple of 0.3", "1", "0.3", false},
		{"6 is multiple of 2", "6", "2", true},
		{"5 is not multiple of 2", "5", "2", false},
		{"negative multiple", "-6", "2", true},
		{"exponent form", "1e2", "50", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := isMultipleOfLexeme(tt.value, tt.divisor)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsMultipleOfLexemeDivisorZero(t *testing.T) {
	_, ok := isMultipleOfLexeme("5", "0")
	assert.False(t, ok)
}

func TestIsMultipleOfLexemeInvalidInput(t *testing.T) {
	_, ok := isMultipleOfLexeme("not-a-number", "1")
	assert.False(t, ok)
}
