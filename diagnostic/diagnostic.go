// Package diagnostic is the abstract output channel lex and parse use to
// report structured errors and warnings with source ranges. It is kept
// independent of the lexer/parser packages so that tests can substitute a
// recording sink, and independent of any particular rendering so that a
// CLI can style it however it likes.
package diagnostic

import "github.com/venturno/sexpr/token"

// Severity is the level of a Diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

// String renders the severity's name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Span identifies a region of source to annotate alongside a Diagnostic's
// message.
type Span struct {
	Range token.Range
	Label string
}

// Diagnostic is a single error, warning, or accumulated explanation.
// Primary is the location named in the header line; Spans are the
// annotated source excerpts shown beneath it and may or may not repeat
// Primary depending on what the caller attached via PutLines.
type Diagnostic struct {
	Severity Severity
	Message  string
	Primary  token.Range
	Spans    []Span
	Notes    []string
}

// Sink is the capability lex and parse depend on to report diagnostics
// and to abort a parse on a fatal condition. Implementations must be
// either per-call or internally serialized, since a single sink may be
// shared by concurrent reader invocations only if it synchronizes itself.
type Sink interface {
	// PutError records a fatal diagnostic annotating rng with message and
	// makes it the current diagnostic for subsequent PutLines/PutExplain
	// calls.
	PutError(rng token.Range, message string)

	// PutWarning records a non-fatal diagnostic the same way PutError
	// does, without triggering an abort.
	PutWarning(rng token.Range, message string)

	// PutExplain appends trailing note lines to the current diagnostic.
	PutExplain(lines ...string)

	// PutLines attaches additional annotated spans to the current
	// diagnostic.
	PutLines(spans ...Span)

	// Fail terminates the parse, returning the error the caller should
	// propagate. No further tokens may be consumed once Fail has been
	// called for a fatal condition.
	Fail(reason string) error
}
