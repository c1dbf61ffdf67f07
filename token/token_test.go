package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venturno/sexpr/source"
	"github.com/venturno/sexpr/token"
)

func TestPositionString(t *testing.T) {
	p := token.Position{Line: 3, Column: 7, Offset: 40}
	assert.Equal(t, "3:7", p.String())
}

func TestRangeText(t *testing.T) {
	buf := source.New("test", []byte("(foo bar)"))
	rng := token.Range{
		Start:  token.Position{Line: 1, Column: 2, Offset: 2},
		Finish: token.Position{Line: 1, Column: 5, Offset: 5},
		Source: "test",
		Buf:    buf,
	}
	assert.Equal(t, "foo", rng.Text())
}

func TestRangeTextOutOfRange(t *testing.T) {
	buf := source.New("test", []byte("abc"))
	rng := token.Range{
		Start:  token.Position{Offset: 1},
		Finish: token.Position{Offset: 100},
		Buf:    buf,
	}
	assert.Equal(t, "", rng.Text())
}

func TestRangeTextNilBuf(t *testing.T) {
	var rng token.Range
	assert.Equal(t, "", rng.Text())
}

func TestMatchingBrackets(t *testing.T) {
	close, ok := token.MatchingClose('(')
	assert.True(t, ok)
	assert.Equal(t, byte(')'), close)

	open, ok := token.MatchingOpen(']')
	assert.True(t, ok)
	assert.Equal(t, byte('['), open)

	_, ok = token.MatchingClose('x')
	assert.False(t, ok)
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "symbol", token.Symbol.String())
	assert.Equal(t, "eof", token.EOF.String())
	assert.Equal(t, "invalid", token.Tag(999).String())
}
