// Package source owns raw program text and a precomputed line index so
// that positions and diagnostics can be resolved back to source text
// without rescanning it.
package source

import "strings"

// Buffer holds the text of a single input and the offsets at which each
// line begins, so that line lookups for diagnostic printing are O(1)
// instead of a rescan.
type Buffer struct {
	name  string
	text  []byte
	lines []int // 1-based offset of the first byte of each line; lines[0] is always 1
}

// New builds a Buffer over text, splitting it into lines eagerly. name is
// carried only for diagnostics (it is never interpreted as a path).
func New(name string, text []byte) *Buffer {
	b := &Buffer{
		name: name,
		text: text,
	}
	b.lines = append(b.lines, 1)
	for i, c := range text {
		if c == '\n' {
			b.lines = append(b.lines, i+2)
		}
	}
	return b
}

// Name returns the display name given to the buffer.
func (b *Buffer) Name() string {
	return b.name
}

// Bytes returns the raw text of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.text
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

// At returns the byte at the 1-based offset off, and whether off refers to
// an in-range byte. Out-of-range queries return the zero byte and false.
func (b *Buffer) At(off int) (byte, bool) {
	i := off - 1
	if i < 0 || i >= len(b.text) {
		return 0, false
	}
	return b.text[i], true
}

// Line returns the text of the 1-based line n, without its trailing
// newline, and whether n refers to a line that exists in the buffer.
func (b *Buffer) Line(n int) (string, bool) {
	if n < 1 || n > len(b.lines) {
		return "", false
	}
	start := b.lines[n-1] - 1 // 0-based
	end := len(b.text)
	if n < len(b.lines) {
		end = b.lines[n] - 1 - 1 // byte before the next line's first byte, minus the '\n'
		if end < start {
			end = start
		}
	}
	line := string(b.text[start:end])
	return strings.TrimSuffix(line, "\r"), true
}

// NumLines returns the number of lines the buffer was split into.
func (b *Buffer) NumLines() int {
	return len(b.lines)
}
