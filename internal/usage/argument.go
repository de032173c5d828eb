package usage

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/argp/internal/preview"
)

// ArgumentError is a problem with the user's command line. It points at the
// offending part of the reconstructed command line.
//
// Text, Formatted and Unformatted are rendered once, when the error is
// created. They are empty if the range lies outside the command line.
type ArgumentError struct {
	Kind        ErrorKind
	Message     string
	CommandLine string
	Range       preview.Range
	Suggestions []string

	// Text contains shorthand escape codes (see preview.Format).
	Text        string
	Formatted   string
	Unformatted string
}

// NewArgumentError builds an argument error and renders its message:
//
//	1:10-1:16: unrecognized option '--bogus'
//	1 | get key1 --bogus
//	  |          ^~~~~~>
func NewArgumentError(kind ErrorKind, message, cmdLine string, r preview.Range, suggestions ...string) *ArgumentError {
	e := &ArgumentError{
		Kind:        kind,
		Message:     message,
		CommandLine: cmdLine,
		Range:       r,
		Suggestions: suggestions,
	}

	text, ok := render(e, true)
	if ok {
		e.Text = text
		e.Formatted = preview.Format(text, false)
		e.Unformatted = preview.Format(text, true)
	}

	return e
}

// Preview renders the error again, with or without line numbers in front of
// the command line. The result contains shorthand escape codes.
func (e *ArgumentError) Preview(lineNumbers bool) string {
	text, ok := render(e, lineNumbers)
	if !ok {
		return e.Message + "\n"
	}
	return text
}

func render(e *ArgumentError, lineNumbers bool) (string, bool) {
	lines := preview.Lines(e.CommandLine)

	last := max(e.Range.End()-1, e.Range.Begin)
	beginRow, beginCol, ok := preview.RowCol(lines, e.Range.Begin)
	if !ok {
		return "", false
	}
	endRow, endCol, ok := preview.RowCol(lines, last)
	if !ok {
		return "", false
	}

	c := preview.DefaultCustomizer()
	c.MarkerStyle = "$g"
	c.MarkedTextStyle = "$r"
	c.LineNumbers = lineNumbers

	var b strings.Builder
	fmt.Fprintf(&b, "$*%d:%d-%d:%d:$0 %s\n",
		beginRow+1, beginCol+1, endRow+1, endCol+1, preview.Sanitize(e.Message))
	b.WriteString(preview.Render(e.CommandLine, e.Range, 0, c))

	if len(e.Suggestions) > 0 {
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = "'" + preview.Sanitize(s) + "'"
		}
		fmt.Fprintf(&b, "$cdid you mean %s?$0\n", strings.Join(quoted, ", "))
	}

	return b.String(), true
}

// Error returns the uncoloured rendering, or the bare message when the error
// could not be rendered.
func (e *ArgumentError) Error() string {
	if e.Unformatted != "" {
		return strings.TrimSuffix(e.Unformatted, "\n")
	}
	return e.Message
}

// GetExitCode returns the exit code for the error kind.
func (e *ArgumentError) GetExitCode() int {
	return ExitCode(e.Kind)
}
