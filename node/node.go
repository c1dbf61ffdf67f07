// Package node defines the reader's output data type: a small closed set
// of atom variants plus a list variant, each carrying range metadata.
package node

import "github.com/venturno/sexpr/token"

// Tag identifies which variant a Node is.
type Tag uint

const (
	Invalid Tag = iota
	Symbol
	Key
	String
	Number
	List

	numTags
)

var tagStrings = [numTags]string{
	Invalid: "invalid",
	Symbol:  "symbol",
	Key:     "key",
	String:  "string",
	Number:  "number",
	List:    "list",
}

// String renders the tag's name.
func (t Tag) String() string {
	if t >= numTags {
		return tagStrings[Invalid]
	}
	return tagStrings[t]
}

// Reader-macro tag names, used both as the Contents of the synthetic
// leading symbol in a reader-macro list and as exported constants other
// packages can compare against without depending on the parser.
const (
	TagQuote         = "quote"
	TagQuasiquote    = "quasiquote"
	TagUnquote       = "unquote"
	TagUnquoteSplice = "unquote-splice"
)

// Node is either an atom (Symbol, Key, String, Number) or a List. Lists
// carry their children in source order plus the bracket lexemes actually
// used, for diagnostic faithfulness. AutoClose is set only while the
// parser has a reader-macro list open awaiting its single datum; it is
// always false on any Node returned from a completed parse.
type Node struct {
	Tag      Tag
	Contents string // set for atoms; empty for lists
	Range    token.Range

	Children []*Node // set for lists; nil for atoms

	Open  byte // the open bracket lexeme used, 0 for the root and reader-macro lists
	Close byte // the close bracket lexeme used, 0 for the root and reader-macro lists

	AutoClose bool // transient parser state; never true on a finished tree

	// Parent is a convenience back-reference populated during parsing.
	// Go's garbage collector tolerates the resulting cycle; downstream
	// consumers in scope never need to navigate upward, so this field
	// exists only to aid debugging and is not part of any invariant.
	Parent *Node
}

// IsAtom reports whether n is a leaf node.
func (n *Node) IsAtom() bool {
	return n.Tag != List
}

// IsList reports whether n is a list (including the root and
// reader-macro lists).
func (n *Node) IsList() bool {
	return n.Tag == List
}

// IsReaderMacro reports whether n is a two-element reader-macro list:
// a synthetic leading symbol naming the macro, followed by one datum.
func (n *Node) IsReaderMacro() bool {
	if n.Tag != List || len(n.Children) != 2 {
		return false
	}
	head := n.Children[0]
	if head.Tag != Symbol {
		return false
	}
	switch head.Contents {
	case TagQuote, TagQuasiquote, TagUnquote, TagUnquoteSplice:
		return true
	default:
		return false
	}
}
