package token

import "strings"

// Classify determines the type of a single raw argument.
func Classify(arg string) Type {
	switch {
	case arg == "--":
		return Terminator
	case strings.HasPrefix(arg, "/") && len(arg) > 1:
		return SwitchOption
	case strings.HasPrefix(arg, "--"):
		return LongOption
	case strings.HasPrefix(arg, "-") && len(arg) > 1:
		return ShortOption
	default:
		return Regular
	}
}

// Tokenize classifies args and splits compound forms:
//
//	--name=value  ->  --name value
//	-n=value      ->  -n value
//	/NAME:value   ->  /NAME value
//	-abc          ->  -a -b -c
//
// Everything after a "--" argument is kept verbatim as Raw tokens. Ranges
// are computed against CommandLine of the result.
func Tokenize(args []string) []Token {
	tokens := make([]Token, 0, len(args))

	raw := false
	for _, arg := range args {
		if raw {
			tokens = append(tokens, Token{Value: arg, Type: Raw})
			continue
		}

		typ := Classify(arg)
		if typ == Terminator {
			raw = true
		}
		tokens = append(tokens, Token{Value: arg, Type: typ})
	}

	tokens = splitValues(tokens)
	tokens = expandShorts(tokens)
	assignRanges(tokens)

	return tokens
}

// splitValues splits options at the first separator. The value part is
// always Regular, whatever it looks like.
func splitValues(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))

	for _, tok := range tokens {
		var prefix int
		var sep byte

		switch tok.Type {
		case LongOption:
			prefix, sep = 2, '='
		case ShortOption:
			prefix, sep = 1, '='
		case SwitchOption:
			prefix, sep = 1, ':'
		default:
			out = append(out, tok)
			continue
		}

		pos := strings.IndexByte(tok.Value, sep)
		// A separator right after the prefix leaves no name to split off.
		if pos <= prefix {
			out = append(out, tok)
			continue
		}

		out = append(out,
			Token{Value: tok.Value[:pos], Type: tok.Type},
			Token{Value: tok.Value[pos+1:], Type: Regular},
		)
	}

	return out
}

func expandShorts(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Type != ShortOption || len(tok.Value) <= 2 {
			out = append(out, tok)
			continue
		}

		for i := 1; i < len(tok.Value); i++ {
			out = append(out, Token{Value: "-" + tok.Value[i:i+1], Type: ShortOption})
		}
	}

	return out
}

func assignRanges(tokens []Token) {
	offset := 0
	for i := range tokens {
		tokens[i].Range.Begin = offset
		tokens[i].Range.Length = len(tokens[i].Value)
		tokens[i].Range.Pointer = offset
		offset += len(tokens[i].Value) + 1
	}
}
