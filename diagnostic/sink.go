package diagnostic

import (
	"github.com/venturno/sexpr/token"
)

// FailError is returned by Sink.Fail. Callers abort the current lex or
// parse as soon as they see an error of this type; it carries no
// diagnostic content of its own, since that was already recorded on the
// sink by the PutError/PutWarning call that preceded it.
type FailError struct {
	Reason string
}

// Error implements error.
func (e *FailError) Error() string {
	return e.Reason
}

// RecordingSink is a Sink that only accumulates Diagnostics in memory; it
// never writes anything. Tests and the CLI's read command use it to
// capture diagnostics for later inspection or rendering.
type RecordingSink struct {
	Diagnostics []Diagnostic
	current     *Diagnostic
}

// NewRecordingSink returns an empty RecordingSink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// PutError implements Sink.
func (s *RecordingSink) PutError(rng token.Range, message string) {
	s.put(SeverityError, rng, message)
}

// PutWarning implements Sink.
func (s *RecordingSink) PutWarning(rng token.Range, message string) {
	s.put(SeverityWarning, rng, message)
}

func (s *RecordingSink) put(sev Severity, rng token.Range, message string) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{
		Severity: sev,
		Message:  message,
		Primary:  rng,
	})
	s.current = &s.Diagnostics[len(s.Diagnostics)-1]
}

// PutExplain implements Sink.
func (s *RecordingSink) PutExplain(lines ...string) {
	if s.current == nil {
		return
	}
	s.current.Notes = append(s.current.Notes, lines...)
}

// PutLines implements Sink.
func (s *RecordingSink) PutLines(spans ...Span) {
	if s.current == nil {
		return
	}
	s.current.Spans = append(s.current.Spans, spans...)
}

// Fail implements Sink.
func (s *RecordingSink) Fail(reason string) error {
	return &FailError{Reason: reason}
}
