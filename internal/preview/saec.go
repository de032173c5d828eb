package preview

import (
	"strings"

	"github.com/muesli/termenv"
)

// saec maps the shorthand escape codes ($r, $0, ...) to ANSI SGR sequences.
var saec = map[byte]string{
	'0': sgr(termenv.ResetSeq),
	'*': sgr(termenv.BoldSeq),
	'_': sgr(termenv.UnderlineSeq),
	'k': sgr(termenv.ANSIBlack.Sequence(false)),
	'r': sgr(termenv.ANSIRed.Sequence(false)),
	'g': sgr(termenv.ANSIGreen.Sequence(false)),
	'y': sgr(termenv.ANSIYellow.Sequence(false)),
	'b': sgr(termenv.ANSIBlue.Sequence(false)),
	'm': sgr(termenv.ANSIMagenta.Sequence(false)),
	'c': sgr(termenv.ANSICyan.Sequence(false)),
	'w': sgr(termenv.ANSIWhite.Sequence(false)),
	'K': sgr(termenv.ANSIBrightBlack.Sequence(false)),
	'R': sgr(termenv.ANSIBrightRed.Sequence(false)),
	'G': sgr(termenv.ANSIBrightGreen.Sequence(false)),
	'Y': sgr(termenv.ANSIBrightYellow.Sequence(false)),
	'B': sgr(termenv.ANSIBrightBlue.Sequence(false)),
	'M': sgr(termenv.ANSIBrightMagenta.Sequence(false)),
	'C': sgr(termenv.ANSIBrightCyan.Sequence(false)),
	'W': sgr(termenv.ANSIBrightWhite.Sequence(false)),
}

func sgr(seq string) string {
	return termenv.CSI + seq + "m"
}

// Format expands the shorthand escape codes in s into ANSI sequences, or
// removes them when strip is true.
//
// Codes are a dollar sign followed by one character:
//
//	$0 reset    $* bold     $_ underline
//	$k black    $r red      $g green    $y yellow
//	$b blue     $m magenta  $c cyan     $w white
//
// and the uppercase letters for the bright variants. "$$" is a literal
// dollar sign. Unknown codes and a trailing dollar are kept as-is.
func Format(s string, strip bool) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '$' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}

		next := s[i+1]
		i++

		if next == '$' {
			b.WriteByte('$')
			continue
		}

		code, ok := saec[next]
		if !ok {
			b.WriteByte('$')
			b.WriteByte(next)
			continue
		}

		if !strip {
			b.WriteString(code)
		}
	}

	return b.String()
}

// Sanitize escapes every dollar sign in s so Format leaves it untouched.
func Sanitize(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
