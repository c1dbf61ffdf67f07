// Package parser folds a token list into a single root node tree. It is
// grounded on the teacher's rdparser package: a parser holding a current
// and a lookahead token and dispatching on token type, generalized here
// to the reader's bracket-species matching, reader-macro auto-close
// discipline, and indentation heuristic instead of elps's fixed
// SExpr/QExpr grammar.
package parser

import (
	"fmt"

	"github.com/venturno/sexpr/diagnostic"
	"github.com/venturno/sexpr/node"
	"github.com/venturno/sexpr/token"
)

// Parser consumes a token list and builds a single root list node.
//
// head is the list currently accepting children; stack holds suspended
// heads. Because Go is garbage collected, a Node can safely double as its
// own in-progress parsing frame (unlike the teacher's systems-language
// recommendation to split frame and finalized list into two types to
// avoid an ownership cycle): AutoClose is simply cleared on pop.
type Parser struct {
	toks []*token.Token
	pos  int
	sink diagnostic.Sink

	head  *node.Node
	stack []*node.Node
}

// New returns a Parser over toks, reporting through sink. toks must end
// in exactly one EOF token.
func New(toks []*token.Token, sink diagnostic.Sink) *Parser {
	return &Parser{
		toks: toks,
		sink: sink,
		head: &node.Node{Tag: node.List},
	}
}

// Parse folds toks into a root node tree, or returns the first fatal
// error encountered. No partial tree is returned on error.
func Parse(toks []*token.Token, sink diagnostic.Sink) (*node.Node, error) {
	return New(toks, sink).Parse()
}

func (p *Parser) cur() *token.Token {
	return p.toks[p.pos]
}

func (p *Parser) advance() *token.Token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

// Parse runs the state machine described in the reader's design: dispatch
// on each token's tag, push/pop list frames for brackets and reader
// macros, and unwind any pending auto-close after every token that isn't
// itself a reader-macro introducer.
func (p *Parser) Parse() (*node.Node, error) {
	root := p.head
	for {
		tok := p.advance()
		switch tok.Tag {
		case token.Number, token.String, token.Symbol, token.Key:
			p.append(&node.Node{Tag: atomTag(tok.Tag), Contents: tok.Contents, Range: tok.Range})
			if err := p.unwindAutoClose(tok); err != nil {
				return nil, err
			}

		case token.Open:
			p.checkIndent(tok)
			p.push(tok)

		case token.Close:
			if err := p.closeBracket(tok); err != nil {
				return nil, err
			}
			if err := p.unwindAutoClose(tok); err != nil {
				return nil, err
			}

		case token.Quote, token.Quasiquote, token.Unquote, token.UnquoteSplice:
			p.pushReaderMacro(tok)
			// No auto-close unwind here: the macro itself now awaits its
			// one datum.

		case token.EOF:
			if len(p.stack) > 0 {
				// stack[0] is always the synthetic root pushed by the very
				// first push/pushReaderMacro call; the true outermost
				// unclosed list is stack[1], the first list pushed on top
				// of the root, or head itself if only one list is
				// currently open.
				var outer *node.Node
				if len(p.stack) == 1 {
					outer = p.head
				} else {
					outer = p.stack[1]
				}
				rng := token.Range{Start: outer.Range.Start, Finish: tok.Range.Finish, Source: tok.Range.Source, Buf: tok.Range.Buf}
				msg := fmt.Sprintf("Expected '%c', got eof", outer.Close)
				p.sink.PutError(rng, msg)
				p.sink.PutLines(
					diagnostic.Span{Range: outer.Range, Label: "unclosed here"},
					diagnostic.Span{Range: tok.Range, Label: "end of file here"},
				)
				return nil, p.sink.Fail(msg)
			}
			return root, nil

		default:
			// ERROR/INVALID tokens are not produced by this lexer; a
			// well-formed token stream never reaches this branch.
			p.sink.PutError(tok.Range, fmt.Sprintf("unexpected token %s", tok.Tag))
			return nil, p.sink.Fail("unexpected token")
		}
	}
}

func atomTag(t token.Tag) node.Tag {
	switch t {
	case token.Number:
		return node.Number
	case token.String:
		return node.String
	case token.Key:
		return node.Key
	default:
		return node.Symbol
	}
}

func (p *Parser) append(n *node.Node) {
	n.Parent = p.head
	p.head.Children = append(p.head.Children, n)
}

func (p *Parser) push(tok *token.Token) {
	n := &node.Node{
		Tag:   node.List,
		Open:  tok.Contents[0],
		Close: tok.Close,
		Range: token.Range{Start: tok.Range.Start, Source: tok.Range.Source, Buf: tok.Range.Buf},
	}
	p.append(n)
	p.stack = append(p.stack, p.head)
	p.head = n
}

func (p *Parser) pushReaderMacro(tok *token.Token) {
	n := &node.Node{
		Tag:       node.List,
		AutoClose: true,
		Range:     token.Range{Start: tok.Range.Start, Source: tok.Range.Source, Buf: tok.Range.Buf},
	}
	p.append(n)
	p.stack = append(p.stack, p.head)
	p.head = n

	sym := &node.Node{Tag: node.Symbol, Contents: macroName(tok.Tag), Range: tok.Range, Parent: n}
	n.Children = append(n.Children, sym)
}

func macroName(t token.Tag) string {
	switch t {
	case token.Quote:
		return node.TagQuote
	case token.Quasiquote:
		return node.TagQuasiquote
	case token.Unquote:
		return node.TagUnquote
	case token.UnquoteSplice:
		return node.TagUnquoteSplice
	default:
		return ""
	}
}

// pop clears the just-finished head's transient state and restores the
// previous head from the stack. Open/Close are not transient: they are
// the bracket lexemes actually used and are preserved for diagnostic
// faithfulness even after the node is finalized.
func (p *Parser) pop() {
	p.head.AutoClose = false
	p.head = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *Parser) closeBracket(tok *token.Token) error {
	if len(p.stack) == 0 {
		msg := fmt.Sprintf("'%s' without matching '%c'", tok.Contents, tok.Open)
		p.sink.PutError(tok.Range, msg)
		return p.sink.Fail(msg)
	}
	if p.head.AutoClose {
		msg := fmt.Sprintf("'%s' without matching '%c' inside quote", tok.Contents, tok.Open)
		p.sink.PutError(tok.Range, msg)
		p.sink.PutLines(
			diagnostic.Span{Range: p.head.Range, Label: "quote introduced here"},
			diagnostic.Span{Range: tok.Range, Label: "stray close"},
		)
		return p.sink.Fail(msg)
	}
	if p.head.Close != tok.Contents[0] {
		msg := fmt.Sprintf("Expected '%c', got '%s'", p.head.Close, tok.Contents)
		p.sink.PutError(tok.Range, msg)
		p.sink.PutLines(
			diagnostic.Span{Range: p.head.Range, Label: "opened here"},
			diagnostic.Span{Range: tok.Range, Label: "stray close"},
		)
		return p.sink.Fail(msg)
	}
	p.head.Range.Finish = tok.Range.Finish
	p.pop()
	return nil
}

// unwindAutoClose implements the invariant that a reader-macro list
// contains exactly one datum: the token just processed may have
// completed the datum one or more pending macros were waiting on, and
// each completed macro cascades to close the next if it is itself a
// pending macro (e.g. "''x").
func (p *Parser) unwindAutoClose(tok *token.Token) error {
	for p.head.AutoClose {
		if len(p.stack) == 0 {
			msg := "reader macro closed unexpectedly"
			p.sink.PutError(tok.Range, msg)
			return p.sink.Fail(msg)
		}
		p.head.Range.Finish = tok.Range.Finish
		p.pop()
	}
	return nil
}

// checkIndent emits the non-fatal "different indent" warning when an
// opening bracket's previous sibling started on a different line and at
// a different column, per the reader's indentation heuristic.
func (p *Parser) checkIndent(tok *token.Token) {
	if len(p.head.Children) == 0 {
		return
	}
	prev := p.head.Children[len(p.head.Children)-1]
	if prev.Range.Start.Line == tok.Range.Start.Line {
		return
	}
	if prev.Range.Start.Column == tok.Range.Start.Column {
		return
	}
	p.sink.PutWarning(tok.Range, "Different indent compared with previous expressions.")
	p.sink.PutExplain("maybe a missing ')'")
}
