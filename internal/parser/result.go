package parser

import (
	"github.com/footprint-tools/argp/internal/template"
	"github.com/footprint-tools/argp/internal/token"
)

// Status tells whether an entry matched its template.
type Status int

const (
	StatusValid Status = iota
	StatusUnrecognizedSubcommand
	StatusUnrecognizedOption
	StatusNotEnoughValues
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusUnrecognizedSubcommand:
		return "unrecognized_subcommand"
	case StatusUnrecognizedOption:
		return "unrecognized_option"
	case StatusNotEnoughValues:
		return "not_enough_values"
	default:
		return "unknown"
	}
}

// Argument is one entry of a parse result.
//
// Option and Subcommand point into the templates passed to Parse; at most one
// of them is set. Both are nil for unrecognized tokens and for passthrough
// entries.
type Argument struct {
	Option     *template.Option
	Subcommand *template.Subcommand

	Values []string

	// Token is the token the entry was matched from.
	Token token.Token

	Status Status

	// Parsed is false for the "--" token and everything after it.
	Parsed bool

	// Suggestions holds similar known names for unrecognized entries.
	Suggestions []string
}

// Name returns the name of the matched template, or the token text when
// nothing was matched.
func (a Argument) Name() string {
	switch {
	case a.Option != nil:
		return a.Option.Name()
	case a.Subcommand != nil:
		return a.Subcommand.Name()
	default:
		return a.Token.Value
	}
}

// Valid reports whether every entry in args has StatusValid.
func Valid(args []Argument) bool {
	for _, a := range args {
		if a.Status != StatusValid {
			return false
		}
	}
	return true
}

// Passthrough returns the values of the unparsed entries, excluding the "--"
// token itself.
func Passthrough(args []Argument) []string {
	var out []string
	for _, a := range args {
		if !a.Parsed && a.Token.Type == token.Raw {
			out = append(out, a.Token.Value)
		}
	}
	return out
}
