// Package reader combines the lexer and parser into the reader's
// two-operation external contract: turn named source text into a node
// tree, or fail with diagnostics already pushed to the caller's sink.
// It is grounded on the teacher's lisp.Reader construction in
// lisp/lisp.go, generalized away from returning evaluator Vals to
// returning the node package's tree.
package reader

import (
	"io"

	"github.com/venturno/sexpr/diagnostic"
	"github.com/venturno/sexpr/internal/logging"
	"github.com/venturno/sexpr/lexer"
	"github.com/venturno/sexpr/node"
	"github.com/venturno/sexpr/parser"
	"github.com/venturno/sexpr/source"
)

// Read lexes and parses the text in r, named name for diagnostics, and
// returns the root node tree. Diagnostics are pushed to sink regardless
// of whether reading ultimately succeeds; a non-nil error means no tree
// is returned.
func Read(name string, r io.Reader, sink diagnostic.Sink) (*node.Node, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ReadBytes(name, text, sink)
}

// ReadBytes is Read without the io.Reader indirection, for callers that
// already hold the full source text (e.g. the driver's cache).
func ReadBytes(name string, text []byte, sink diagnostic.Sink) (*node.Node, error) {
	buf := source.New(name, text)

	toks, err := lexer.Lex(buf, sink)
	if err != nil {
		return nil, err
	}
	logging.Default().Debug("lexed", logging.FieldPath, name, logging.FieldTokens, len(toks))

	return parser.Parse(toks, sink)
}

// ReadString is a convenience wrapper over ReadBytes for literal source
// text, used by callers such as the CLI's -e/--expr flag.
func ReadString(name, text string, sink diagnostic.Sink) (*node.Node, error) {
	return ReadBytes(name, []byte(text), sink)
}
