// Package lexer scans a source buffer into a flat token list in a single
// forward pass. It is grounded on the teacher's parser/lexer package: a
// small Lexer that drives a lower-level scanner and dispatches on the
// current character, but reworked around the reader's byte-offset
// position model and bracket-species tokens instead of elps's
// SExpr/QExpr distinction.
package lexer

import (
	"github.com/venturno/sexpr/diagnostic"
	"github.com/venturno/sexpr/internal/interntoken"
	"github.com/venturno/sexpr/source"
	"github.com/venturno/sexpr/token"
)

// numberRunes are the characters a number literal may contain after its
// first digit (or leading '-'). The lexer does not validate that the
// result is a well-formed number; it preserves the literal lexeme and
// leaves interpretation to a later pass.
const numberRunes = "0123456789.e+-"

// Lexer scans tokens from a buffer via a single forward pass, tracking
// line, column and offset as it goes.
type Lexer struct {
	buf  *source.Buffer
	name string
	sink diagnostic.Sink
	text []byte

	pos  int // 0-based index of the next unread byte
	line int // 1-based line of text[pos]
	col  int // 1-based column of text[pos]

	intern *interntoken.Table
}

// New returns a Lexer that scans buf, reporting through sink.
func New(buf *source.Buffer, sink diagnostic.Sink) *Lexer {
	return &Lexer{
		buf:    buf,
		name:   buf.Name(),
		sink:   sink,
		text:   buf.Bytes(),
		line:   1,
		col:    1,
		intern: interntoken.NewTable(),
	}
}

// Lex scans buf to completion, returning the full token list (always
// ending in exactly one EOF token) or the first fatal error encountered.
// On error no tokens are returned, matching the reader's no-partial-
// results contract.
func Lex(buf *source.Buffer, sink diagnostic.Sink) ([]*token.Token, error) {
	lx := New(buf, sink)
	var toks []*token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Tag == token.EOF {
			return toks, nil
		}
	}
}

func (lx *Lexer) position() token.Position {
	return token.Position{Line: lx.line, Column: lx.col, Offset: lx.pos + 1}
}

func (lx *Lexer) peek() (byte, bool) {
	if lx.pos >= len(lx.text) {
		return 0, false
	}
	return lx.text[lx.pos], true
}

// peekAt looks ahead n bytes past the current position without consuming
// anything.
func (lx *Lexer) peekAt(n int) (byte, bool) {
	i := lx.pos + n
	if i >= len(lx.text) {
		return 0, false
	}
	return lx.text[i], true
}

func (lx *Lexer) consume() byte {
	c := lx.text[lx.pos]
	lx.pos++
	if c == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return c
}

func (lx *Lexer) rangeFrom(start token.Position) token.Range {
	return token.Range{Start: start, Finish: lx.position(), Source: lx.name, Buf: lx.buf}
}

func (lx *Lexer) contents(rng token.Range) string {
	return lx.intern.GetBytes(lx.text[rng.Start.Offset-1 : rng.Finish.Offset-1])
}

// Next scans and returns the next token, or the terminal EOF token, or an
// error from a fatal diagnostic (e.g. an unterminated string).
func (lx *Lexer) Next() (*token.Token, error) {
	for {
		c, ok := lx.peek()
		if !ok {
			break
		}
		switch c {
		case ' ', '\t', '\n':
			lx.consume()
			continue
		case ';':
			lx.consume()
			for {
				c, ok := lx.peek()
				if !ok || c == '\n' {
					break
				}
				lx.consume()
			}
			continue
		}
		break
	}

	start := lx.position()
	c, ok := lx.peek()
	if !ok {
		return &token.Token{Tag: token.EOF, Range: lx.rangeFrom(start)}, nil
	}
	lx.consume()

	switch c {
	case '(', '[', '{':
		close, _ := token.MatchingClose(c)
		return &token.Token{Tag: token.Open, Contents: string(c), Range: lx.rangeFrom(start), Close: close}, nil
	case ')', ']', '}':
		open, _ := token.MatchingOpen(c)
		return &token.Token{Tag: token.Close, Contents: string(c), Range: lx.rangeFrom(start), Open: open}, nil
	case '\'':
		return &token.Token{Tag: token.Quote, Contents: string(c), Range: lx.rangeFrom(start)}, nil
	case '`':
		return &token.Token{Tag: token.Quasiquote, Contents: string(c), Range: lx.rangeFrom(start)}, nil
	case ',':
		if n, ok := lx.peek(); ok && n == '@' {
			lx.consume()
			return &token.Token{Tag: token.UnquoteSplice, Contents: ",@", Range: lx.rangeFrom(start)}, nil
		}
		return &token.Token{Tag: token.Unquote, Contents: string(c), Range: lx.rangeFrom(start)}, nil
	case '"':
		return lx.scanString(start)
	}

	if isDigit(c) || (c == '-' && lx.peekIsDigit()) {
		return lx.scanNumber(start), nil
	}

	return lx.scanIdentifier(start, c == ':'), nil
}

func (lx *Lexer) peekIsDigit() bool {
	c, ok := lx.peek()
	return ok && isDigit(c)
}

func (lx *Lexer) scanNumber(start token.Position) *token.Token {
	for {
		c, ok := lx.peek()
		if !ok || !isNumberRune(c) {
			break
		}
		lx.consume()
	}
	rng := lx.rangeFrom(start)
	return &token.Token{Tag: token.Number, Contents: lx.contents(rng), Range: rng}
}

func (lx *Lexer) scanIdentifier(start token.Position, isKey bool) *token.Token {
	for {
		c, ok := lx.peek()
		if !ok || isTerminator(c) {
			break
		}
		lx.consume()
	}
	rng := lx.rangeFrom(start)
	tag := token.Symbol
	if isKey {
		tag = token.Key
	}
	return &token.Token{Tag: tag, Contents: lx.contents(rng), Range: rng}
}

// scanString consumes a string literal beginning just after the opening
// quote (already consumed by the caller). A backslash consumes the
// following character unconditionally without interpreting it; reaching
// end-of-input before a closing quote is fatal.
func (lx *Lexer) scanString(start token.Position) (*token.Token, error) {
	openRng := lx.rangeFrom(start)
	for {
		c, ok := lx.peek()
		if !ok {
			return nil, lx.unterminatedString(openRng)
		}
		lx.consume()
		if c == '"' {
			rng := lx.rangeFrom(start)
			return &token.Token{Tag: token.String, Contents: lx.contents(rng), Range: rng}, nil
		}
		if c == '\\' {
			if _, ok := lx.peek(); !ok {
				return nil, lx.unterminatedString(openRng)
			}
			lx.consume()
		}
	}
}

func (lx *Lexer) unterminatedString(openRng token.Range) error {
	eof := lx.position()
	eofRng := token.Range{Start: eof, Finish: eof, Source: lx.name, Buf: lx.buf}
	lx.sink.PutError(eofRng, "unterminated string literal")
	lx.sink.PutLines(
		diagnostic.Span{Range: openRng, Label: "string started here"},
		diagnostic.Span{Range: eofRng, Label: "end of file here"},
	)
	return lx.sink.Fail("unterminated string literal")
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumberRune(c byte) bool {
	for i := 0; i < len(numberRunes); i++ {
		if numberRunes[i] == c {
			return true
		}
	}
	return false
}

func isTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '(', ')', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}
