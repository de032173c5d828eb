// Package token turns raw process arguments into classified tokens.
package token

import (
	"strings"

	"github.com/footprint-tools/argp/internal/preview"
)

// Type classifies a token by its prefix.
type Type int

const (
	Regular      Type = iota
	ShortOption       // -a
	LongOption        // --name
	SwitchOption      // /NAME
	Terminator        // --
	Raw               // anything after --
)

func (t Type) String() string {
	switch t {
	case Regular:
		return "regular"
	case ShortOption:
		return "short_option"
	case LongOption:
		return "long_option"
	case SwitchOption:
		return "switch_option"
	case Terminator:
		return "terminator"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}

// IsOption reports whether the token names an option.
func (t Type) IsOption() bool {
	return t == ShortOption || t == LongOption || t == SwitchOption
}

// Token is a single unit of the command line.
type Token struct {
	Value string
	Type  Type
	// Range is relative to CommandLine of the token list it came from.
	Range preview.Range
}

// Name returns the token value without its option prefix.
func (t Token) Name() string {
	switch t.Type {
	case LongOption:
		return strings.TrimPrefix(t.Value, "--")
	case ShortOption:
		return strings.TrimPrefix(t.Value, "-")
	case SwitchOption:
		return strings.TrimPrefix(t.Value, "/")
	default:
		return t.Value
	}
}

// CommandLine joins the token values with single spaces. Token ranges point
// into this string.
func CommandLine(tokens []Token) string {
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	return strings.Join(values, " ")
}

// Values returns the literal text of every token.
func Values(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	return values
}
