package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextDocumentPositionAt(t *testing.T) {
	td := NewTextDocument("ab\ncd\nef")
	assert.Equal(t, Position{Line: 0, Character: 0}, td.PositionAt(0))
	assert.Equal(t, Position{Line: 0, Character: 2}, td.PositionAt(2))
	assert.Equal(t, Position{Line: 1, Character: 0}, td.PositionAt(3))
	assert.Equal(t, Position{Line: 2, Character: 1}, td.PositionAt(7))
}

func TestTextDocumentPositionAtClampsOutOfRange(t *testing.T) {
	td := NewTextDocument("abc")
	assert.Equal(t, Position{Line: 0, Character: 0}, td.PositionAt(-5))
	assert.Equal(t, Position{Line: 0, Character: 3}, td.PositionAt(100))
}

func TestTextDocumentOffsetAtRoundTrip(t *testing.T) {
	td := NewTextDocument("line one\nline two\nline three")
	for _, offset := range []int{0, 5, 9, 14, 19, 28} {
		pos := td.PositionAt(offset)
		assert.Equal(t, offset, td.OffsetAt(pos))
	}
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 5, utf16Len("hello"))
	assert.Equal(t, 2, utf16Len("😀")) // surrogate pair: 2 UTF-16 code units
}

func TestTextDocumentPositionAtSurrogatePair(t *testing.T) {
	td := NewTextDocument("😀x")
	assert.Equal(t, Position{Line: 0, Character: 2}, td.PositionAt(len("😀")))
}
