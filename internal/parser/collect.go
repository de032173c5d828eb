package parser

import (
	"github.com/footprint-tools/argp/internal/template"
	"github.com/footprint-tools/argp/internal/token"
)

// collect gathers the values for a matched template starting at *cursor and
// advances the cursor past them. It reports false when fewer values than the
// template requires were found.
//
// For a variadic template the last parameter takes every following regular
// token. Otherwise at most len(params) tokens are taken and the missing
// trailing parameters are filled from the right-anchored defaults.
func collect(cursor *int, tokens []token.Token, params, defaults []string, variadic template.Variadicity) ([]string, bool) {
	var values []string

	if variadic.IsVariadic() {
		for *cursor < len(tokens) && tokens[*cursor].Type == token.Regular {
			values = append(values, tokens[*cursor].Value)
			*cursor++
		}
		return values, len(values) >= required(params, defaults, variadic)
	}

	for len(values) < len(params) && *cursor < len(tokens) && tokens[*cursor].Type == token.Regular {
		values = append(values, tokens[*cursor].Value)
		*cursor++
	}

	// Defaults only cover the last len(defaults) parameters. When fewer
	// values than the mandatory ones were provided none of them apply.
	start := len(values) - len(params) + len(defaults)
	if start >= 0 && start < len(defaults) {
		values = append(values, defaults[start:]...)
	}

	return values, len(values) == len(params)
}

// required returns the minimum number of values a template accepts.
func required(params, defaults []string, variadic template.Variadicity) int {
	switch variadic {
	case template.ZeroOrMore:
		return max(len(params)-1, 0)
	case template.OneOrMore:
		return max(len(params), 1)
	default:
		return len(params) - len(defaults)
	}
}
