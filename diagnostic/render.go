package diagnostic

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are a small, fixed set of Rust-style annotation colors. They are
// built once; a caller that wants plain text can use Render(d, false).
var (
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	styleNote    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleLoc     = lipgloss.NewStyle().Bold(true)
	styleCaret   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleDim     = lipgloss.NewStyle().Faint(true)
)

// Render produces a multi-line, Rust-style annotated excerpt for d: a
// header naming the file, line and column of d.Primary, one source
// line per span (or for d.Primary when there are no spans) with a caret
// underline beneath the spanned columns, and any trailing notes. Render never panics on a malformed
// span; out-of-range columns are clamped to the available line text.
func Render(d Diagnostic, color bool) string {
	var b strings.Builder

	sevStyle := styleNote
	switch d.Severity {
	case SeverityError:
		sevStyle = styleError
	case SeverityWarning:
		sevStyle = styleWarning
	}
	sev := d.Severity.String()
	if color {
		sev = sevStyle.Render(sev)
	}

	if d.Primary.Source != "" {
		loc := fmt.Sprintf("%s:%s", d.Primary.Source, d.Primary.Start)
		if color {
			loc = styleLoc.Render(loc)
		}
		fmt.Fprintf(&b, "%s: %s: %s\n", loc, sev, d.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", sev, d.Message)
	}

	spans := d.Spans
	if len(spans) == 0 {
		spans = []Span{{Range: d.Primary}}
	}
	for _, span := range spans {
		if span.Range.Buf == nil {
			continue
		}
		line, ok := span.Range.Buf.Line(span.Range.Start.Line)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", line)
		b.WriteString("  ")
		b.WriteString(underline(line, span, color))
		b.WriteByte('\n')
	}

	for _, note := range d.Notes {
		n := "note: " + note
		if color {
			n = styleDim.Render(n)
		}
		fmt.Fprintf(&b, "  = %s\n", n)
	}

	return b.String()
}

// underline builds a caret line beneath line, spanning from
// span.Range.Start.Column to span.Range.Finish.Column when both are on
// the same source line, clamped to line's length. A span whose Finish is
// on another line gets a single caret at its start column.
func underline(line string, span Span, color bool) string {
	start := span.Range.Start.Column - 1
	if start < 0 {
		start = 0
	}
	if start > len(line) {
		start = len(line)
	}
	end := start + 1
	if span.Range.Finish.Line == span.Range.Start.Line {
		end = span.Range.Finish.Column - 1
	}
	if end <= start {
		end = start + 1
	}
	if end > len(line) {
		end = len(line)
	}

	count := end - start
	if count < 1 {
		count = 1
	}
	out := strings.Repeat(" ", start) + strings.Repeat("^", count)
	if span.Label != "" {
		out += " " + span.Label
	}
	if color {
		out = styleCaret.Render(out)
	}
	return out
}
