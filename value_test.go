package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil equal", nil, nil, true},
		{"bool equal", true, true, true},
		{"bool mismatch type", true, 1.0, false},
		{"number equal", 1.0, 1.0, true},
		{"number mismatch", 1.0, 2.0, false},
		{"string equal", "a", "a", true},
		{"array order matters", []any{1.0, 2.0}, []any{2.0, 1.0}, false},
		{"array equal", []any{1.0, 2.0}, []any{1.0, 2.0}, true},
		{"array length mismatch", []any{1.0}, []any{1.0, 2.0}, false},
		{"object key order independent", map[string]any{"a": 1.0, "b": 2.0}, map[string]any{"b": 2.0, "a": 1.0}, true},
		{"object value mismatch", map[string]any{"a": 1.0}, map[string]any{"a": 2.0}, false},
		{"object size mismatch", map[string]any{"a": 1.0}, map[string]any{"a": 1.0, "b": 2.0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeepEqual(tt.a, tt.b))
		})
	}
}

func TestJSONTypeName(t *testing.T) {
	assert.Equal(t, "null", JSONTypeName(nil))
	assert.Equal(t, "boolean", JSONTypeName(true))
	assert.Equal(t, "number", JSONTypeName(1.0))
	assert.Equal(t, "string", JSONTypeName("x"))
	assert.Equal(t, "array", JSONTypeName([]any{}))
	assert.Equal(t, "object", JSONTypeName(map[string]any{}))
}

func TestContainsDuplicate(t *testing.T) {
	assert.False(t, ContainsDuplicate([]any{1.0, 2.0, 3.0}))
	assert.True(t, ContainsDuplicate([]any{1.0, 2.0, 1.0}))
	assert.False(t, ContainsDuplicate(nil))
}
