// Package token defines the lexical vocabulary of the reader: positions,
// ranges and the tagged tokens produced by a single forward scan of a
// source buffer.
package token

import (
	"fmt"

	"github.com/venturno/sexpr/source"
)

// Position is a point in a source buffer: a 1-based line, a 1-based
// column, and a 1-based absolute offset into the buffer's text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders a position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a half-open [Start, Finish) span of positions within a named
// source buffer. Finish points just past the last character the range
// covers. Buf is borrowed, not owned: callers must keep the buffer alive
// for as long as any Range referencing it is used for diagnostics.
type Range struct {
	Start  Position
	Finish Position
	Source string
	Buf    *source.Buffer
}

// String renders a range as "source:line:column".
func (r Range) String() string {
	return fmt.Sprintf("%s:%s", r.Source, r.Start)
}

// Text returns the substring of the backing buffer that the range
// covers. It returns "" if Buf is nil or the offsets fall outside it.
func (r Range) Text() string {
	if r.Buf == nil {
		return ""
	}
	buf := r.Buf.Bytes()
	start, finish := r.Start.Offset-1, r.Finish.Offset-1
	if start < 0 || finish > len(buf) || start > finish {
		return ""
	}
	return string(buf[start:finish])
}

// Tag identifies the lexical category of a Token.
type Tag uint

const (
	Invalid Tag = iota
	Open
	Close
	Quote
	Quasiquote
	Unquote
	UnquoteSplice
	Number
	String
	Symbol
	Key
	EOF

	numTags
)

var tagStrings = [numTags]string{
	Invalid:       "invalid",
	Open:          "open",
	Close:         "close",
	Quote:         "quote",
	Quasiquote:    "quasiquote",
	Unquote:       "unquote",
	UnquoteSplice: "unquote-splice",
	Number:        "number",
	String:        "string",
	Symbol:        "symbol",
	Key:           "key",
	EOF:           "eof",
}

// String renders the tag's name.
func (t Tag) String() string {
	if t >= numTags {
		return tagStrings[Invalid]
	}
	return tagStrings[t]
}

// Token is a single lexeme scanned from a source buffer.
type Token struct {
	Tag      Tag
	Contents string
	Range    Range

	// Close is only meaningful for Open tokens (the bracket species'
	// expected closer), and Open only for Close tokens (the bracket
	// species' matching opener).
	Open  byte
	Close byte
}

// openClose maps an opening bracket byte to its closing counterpart.
var openClose = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
}

// closeOpen maps a closing bracket byte to its opening counterpart.
var closeOpen = map[byte]byte{
	')': '(',
	']': '[',
	'}': '{',
}

// MatchingClose returns the close bracket for an open bracket byte, and
// whether open is a recognized opening bracket.
func MatchingClose(open byte) (byte, bool) {
	c, ok := openClose[open]
	return c, ok
}

// MatchingOpen returns the open bracket for a close bracket byte, and
// whether close is a recognized closing bracket.
func MatchingOpen(close byte) (byte, bool) {
	o, ok := closeOpen[close]
	return o, ok
}
