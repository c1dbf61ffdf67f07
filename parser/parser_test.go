package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturno/sexpr/diagnostic"
	"github.com/venturno/sexpr/lexer"
	"github.com/venturno/sexpr/node"
	"github.com/venturno/sexpr/parser"
	"github.com/venturno/sexpr/source"
)

func parse(t *testing.T, text string) (*node.Node, *diagnostic.RecordingSink, error) {
	t.Helper()
	buf := source.New("test", []byte(text))
	sink := diagnostic.NewRecordingSink()
	toks, err := lexer.Lex(buf, sink)
	require.NoError(t, err)
	tree, err := parser.Parse(toks, sink)
	return tree, sink, err
}

func TestParseFlatList(t *testing.T) {
	tree, _, err := parse(t, "(a b c)")
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)

	list := tree.Children[0]
	assert.True(t, list.IsList())
	assert.Equal(t, byte('('), list.Open)
	assert.Equal(t, byte(')'), list.Close)
	require.Len(t, list.Children, 3)
	assert.Equal(t, "a", list.Children[0].Contents)
	assert.Equal(t, "b", list.Children[1].Contents)
	assert.Equal(t, "c", list.Children[2].Contents)
	assert.Same(t, tree, list.Parent)
}

func TestParseNested(t *testing.T) {
	tree, _, err := parse(t, "(a (b c) d)")
	require.NoError(t, err)
	outer := tree.Children[0]
	require.Len(t, outer.Children, 3)
	inner := outer.Children[1]
	assert.True(t, inner.IsList())
	require.Len(t, inner.Children, 2)
	assert.Equal(t, "b", inner.Children[0].Contents)
}

func TestParseBracketSpecies(t *testing.T) {
	tree, _, err := parse(t, "[a]")
	require.NoError(t, err)
	list := tree.Children[0]
	assert.Equal(t, byte('['), list.Open)
	assert.Equal(t, byte(']'), list.Close)
}

func TestParseMismatchedBracket(t *testing.T) {
	_, sink, err := parse(t, "(a]")
	require.Error(t, err)
	require.Len(t, sink.Diagnostics, 1)
	assert.Contains(t, sink.Diagnostics[0].Message, "Expected ')'")
}

func TestParseUnclosedList(t *testing.T) {
	_, sink, err := parse(t, "(a (b)")
	require.Error(t, err)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, "Expected ')', got eof", sink.Diagnostics[0].Message)
}

func TestParseUnclosedBracketSpeciesMessage(t *testing.T) {
	_, sink, err := parse(t, "[a")
	require.Error(t, err)
	assert.Equal(t, "Expected ']', got eof", sink.Diagnostics[0].Message)
}

func TestParseUnclosedNestedLists(t *testing.T) {
	// Two levels of nesting left open: the outermost '(' is the one
	// still awaiting a close, not the innermost.
	_, sink, err := parse(t, "(a (b")
	require.Error(t, err)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, "Expected ')', got eof", sink.Diagnostics[0].Message)
	require.Len(t, sink.Diagnostics[0].Spans, 2)
	assert.Equal(t, "unclosed here", sink.Diagnostics[0].Spans[0].Label)
	assert.Equal(t, 1, sink.Diagnostics[0].Spans[0].Range.Start.Column)
}

func TestParseStrayClose(t *testing.T) {
	_, sink, err := parse(t, ")")
	require.Error(t, err)
	assert.Contains(t, sink.Diagnostics[0].Message, "without matching")
}

func TestParseQuote(t *testing.T) {
	tree, _, err := parse(t, "'x")
	require.NoError(t, err)
	q := tree.Children[0]
	require.True(t, q.IsReaderMacro())
	require.Len(t, q.Children, 2)
	assert.Equal(t, node.TagQuote, q.Children[0].Contents)
	assert.Equal(t, "x", q.Children[1].Contents)
}

func TestParseQuotedList(t *testing.T) {
	tree, _, err := parse(t, "'(a b)")
	require.NoError(t, err)
	q := tree.Children[0]
	require.True(t, q.IsReaderMacro())
	datum := q.Children[1]
	assert.True(t, datum.IsList())
	require.Len(t, datum.Children, 2)
}

func TestParseNestedQuote(t *testing.T) {
	tree, _, err := parse(t, "''x")
	require.NoError(t, err)
	outer := tree.Children[0]
	require.True(t, outer.IsReaderMacro())
	inner := outer.Children[1]
	require.True(t, inner.IsReaderMacro())
	assert.Equal(t, "x", inner.Children[1].Contents)
}

func TestParseQuasiquoteUnquoteSplice(t *testing.T) {
	tree, _, err := parse(t, "`(a ,b ,@c)")
	require.NoError(t, err)
	qq := tree.Children[0]
	require.True(t, qq.IsReaderMacro())
	assert.Equal(t, node.TagQuasiquote, qq.Children[0].Contents)
	list := qq.Children[1]
	require.Len(t, list.Children, 3)
	unq := list.Children[1]
	assert.Equal(t, node.TagUnquote, unq.Children[0].Contents)
	splice := list.Children[2]
	assert.Equal(t, node.TagUnquoteSplice, splice.Children[0].Contents)
}

func TestParseIndentWarning(t *testing.T) {
	_, sink, err := parse(t, "(a\n  (b)\n   (c))")
	require.NoError(t, err)
	require.NotEmpty(t, sink.Diagnostics)
	for _, d := range sink.Diagnostics {
		assert.Equal(t, diagnostic.SeverityWarning, d.Severity)
	}
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	tree, _, err := parse(t, "a b (c)")
	require.NoError(t, err)
	require.Len(t, tree.Children, 3)
}

func TestParseEmptyInput(t *testing.T) {
	tree, _, err := parse(t, "")
	require.NoError(t, err)
	assert.Empty(t, tree.Children)
}
