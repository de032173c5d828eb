// Package preview points at parts of a text: ranges, line/column lookup and
// a caret/tilde rendering of a range for terminal diagnostics.
//
// Rendered previews contain shorthand escape codes (see Format) so callers
// decide whether to colour them or strip them.
package preview

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a span of a text.
type Range struct {
	Begin  int
	Length int
	// Pointer is an absolute offset inside the range marking its most
	// important character.
	Pointer int
}

// End returns the offset just past the range.
func (r Range) End() int {
	return r.Begin + r.Length
}

// Line is the offset and length of a line, excluding its newline.
type Line struct {
	Begin  int
	Length int
}

// Lines splits s on '\n'. The result always has at least one line.
func Lines(s string) []Line {
	var lines []Line

	pos := 0
	for pos <= len(s) {
		eol := strings.IndexByte(s[pos:], '\n')
		if eol < 0 {
			eol = len(s)
		} else {
			eol += pos
		}

		lines = append(lines, Line{Begin: pos, Length: eol - pos})
		pos = eol + 1
	}

	return lines
}

// RowCol returns the 0-based row and column of pos. A position at the end of
// a line belongs to that line.
func RowCol(lines []Line, pos int) (row, col int, ok bool) {
	for i, line := range lines {
		if pos >= line.Begin && pos <= line.Begin+line.Length {
			return i, pos - line.Begin, true
		}
	}
	return 0, 0, false
}

// Customizer controls the look of a rendered preview.
type Customizer struct {
	BeginMarker   string
	EndMarker     string
	PointerMarker string
	Underline     string
	LineSeparator string

	// Styles are shorthand escape codes such as "$r" or "$*$y".
	MarkerStyle     string
	NormalTextStyle string
	MarkedTextStyle string

	LineNumbers bool
}

// DefaultCustomizer returns the customizer used for argument errors.
func DefaultCustomizer() Customizer {
	return Customizer{
		BeginMarker:   "<",
		EndMarker:     ">",
		PointerMarker: "^",
		Underline:     "~",
		LineSeparator: " | ",
		LineNumbers:   true,
	}
}

func (c Customizer) withDefaults() Customizer {
	d := DefaultCustomizer()
	if c.BeginMarker == "" {
		c.BeginMarker = d.BeginMarker
	}
	if c.EndMarker == "" {
		c.EndMarker = d.EndMarker
	}
	if c.PointerMarker == "" {
		c.PointerMarker = d.PointerMarker
	}
	if c.Underline == "" {
		c.Underline = d.Underline
	}
	if c.LineSeparator == "" {
		c.LineSeparator = d.LineSeparator
	}
	return c
}

// Render previews text with r marked. Every line overlapping the range is
// printed followed by a marker line:
//
//	1 | program remote add origin
//	  |         <~~~~^>
//
// An empty range is drawn as a single pointer at its position. Text from the
// input is sanitized; the result contains shorthand escape codes.
func Render(text string, r Range, indent int, c Customizer) string {
	c = c.withDefaults()

	end := r.End()
	if r.Length <= 0 {
		end = r.Begin + 1
	}

	lines := Lines(text)
	lnWidth := len(strconv.Itoa(len(lines)))
	pad := strings.Repeat(" ", max(indent, 0))

	var out strings.Builder

	for i, line := range lines {
		lineEnd := line.Begin + line.Length

		// A zero-length range may sit just past the last character.
		visibleEnd := lineEnd
		if r.Length <= 0 {
			visibleEnd++
		}
		if visibleEnd <= r.Begin || line.Begin >= end {
			continue
		}

		content := text[line.Begin:lineEnd]
		markBegin := max(r.Begin-line.Begin, 0)
		markEnd := min(end-line.Begin, line.Length)

		// Content line
		out.WriteString(pad)
		if c.LineNumbers {
			fmt.Fprintf(&out, "%*d%s", lnWidth, i+1, c.LineSeparator)
		}
		if markBegin > 0 {
			out.WriteString(styled(c.NormalTextStyle, Sanitize(content[:min(markBegin, len(content))])))
		}
		if markEnd > markBegin {
			out.WriteString(styled(c.MarkedTextStyle, Sanitize(content[markBegin:markEnd])))
		}
		if markEnd < line.Length && markEnd >= markBegin {
			out.WriteString(styled(c.NormalTextStyle, Sanitize(content[markEnd:])))
		}
		out.WriteString("\n")

		// Marker line
		out.WriteString(pad)
		if c.LineNumbers {
			out.WriteString(strings.Repeat(" ", lnWidth))
			out.WriteString(c.LineSeparator)
		}
		out.WriteString(strings.Repeat(" ", markBegin))
		out.WriteString(styled(c.MarkerStyle, markers(r, line, markBegin, markEnd, c)))
		out.WriteString("\n")
	}

	return out.String()
}

func markers(r Range, line Line, markBegin, markEnd int, c Customizer) string {
	// Empty range: only the pointer.
	if markEnd <= markBegin {
		return c.PointerMarker
	}

	var b strings.Builder
	for j := markBegin; j < markEnd; j++ {
		pos := line.Begin + j
		switch {
		case pos == r.Pointer:
			b.WriteString(c.PointerMarker)
		case pos == r.Begin:
			b.WriteString(c.BeginMarker)
		case pos == r.End()-1:
			b.WriteString(c.EndMarker)
		default:
			b.WriteString(c.Underline)
		}
	}
	return b.String()
}

func styled(style, text string) string {
	if style == "" || text == "" {
		return text
	}
	return style + text + "$0"
}
