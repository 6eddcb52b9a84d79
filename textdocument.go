package jsonls

import "unicode/utf8"

// TextDocument indexes a source text's line boundaries so that byte offsets
// produced by the scanner/parser can be mapped to line/character positions,
// the way the reference language service's TextDocument does.
type TextDocument struct {
	text        string
	lineOffsets []int // byte offset of the first character of each line
}

// NewTextDocument builds a line index for text. The index is computed once,
// eagerly, since every diagnostic-producing entry point needs it.
func NewTextDocument(text string) *TextDocument {
	return &TextDocument{
		text:        text,
		lineOffsets: computeLineOffsets(text),
	}
}

func computeLineOffsets(text string) []int {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			offsets = append(offsets, i+1)
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// Text returns the underlying source text.
func (d *TextDocument) Text() string {
	return d.text
}

// PositionAt converts a byte offset into a line/character Position.
// Character is counted in UTF-16 code units, matching the editor convention.
func (d *TextDocument) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}

	low, high := 0, len(d.lineOffsets)
	for low < high {
		mid := (low + high) / 2
		if d.lineOffsets[mid] > offset {
			high = mid
		} else {
			low = mid + 1
		}
	}
	line := low - 1
	if line < 0 {
		line = 0
	}

	lineStart := d.lineOffsets[line]
	character := utf16Len(d.text[lineStart:offset])
	return Position{Line: line, Character: character}
}

// OffsetAt converts a Position back into a byte offset.
func (d *TextDocument) OffsetAt(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.lineOffsets) {
		return len(d.text)
	}
	lineStart := d.lineOffsets[pos.Line]
	lineEnd := len(d.text)
	if pos.Line+1 < len(d.lineOffsets) {
		lineEnd = d.lineOffsets[pos.Line+1]
	}

	remaining := pos.Character
	i := lineStart
	for i < lineEnd && remaining > 0 {
		r, size := utf8.DecodeRuneInString(d.text[i:])
		units := 1
		if r > 0xFFFF {
			units = 2
		}
		if units > remaining {
			break
		}
		remaining -= units
		i += size
	}
	return i
}

func utf16Len(s string) int {
	count := 0
	for _, r := range s {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}
