package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venturno/sexpr/diagnostic"
	"github.com/venturno/sexpr/source"
	"github.com/venturno/sexpr/token"
)

func TestRenderBasic(t *testing.T) {
	buf := source.New("test.sexp", []byte("(foo bar"))
	rng := token.Range{
		Source: "test.sexp",
		Start:  token.Position{Line: 1, Column: 1, Offset: 1},
		Finish: token.Position{Line: 1, Column: 2, Offset: 2},
		Buf:    buf,
	}

	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Message:  "Expected ')', got eof",
		Primary:  rng,
		Spans:    []diagnostic.Span{{Range: rng, Label: "opened here"}},
		Notes:    []string{"maybe a missing ')'"},
	}

	out := diagnostic.Render(d, false)
	assert.Contains(t, out, "test.sexp:1:1")
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "Expected ')', got eof")
	assert.Contains(t, out, "(foo bar")
	assert.Contains(t, out, "^")
	assert.Contains(t, out, "opened here")
	assert.Contains(t, out, "maybe a missing ')'")
}

func TestRenderNoSpans(t *testing.T) {
	d := diagnostic.Diagnostic{Severity: diagnostic.SeverityWarning, Message: "standalone"}
	out := diagnostic.Render(d, false)
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "standalone")
}
