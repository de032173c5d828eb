package actions

import (
	"fmt"

	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/parser"
	"github.com/footprint-tools/argp/internal/token"
	"github.com/footprint-tools/argp/internal/ui/style"
)

// Tokens prints the command line rebuilt from args and every token with its
// range in it.
func Tokens(args []string, flags *dispatchers.ParsedFlags) error {
	return tokens(args, flags, defaultDeps())
}

func tokens(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	toks := parser.Tokens(args)

	_, _ = deps.Printf("%s\n", style.Header(token.CommandLine(toks)))
	for _, tok := range toks {
		span := fmt.Sprintf("%d-%d", tok.Range.Begin, tok.Range.End())
		_, _ = deps.Printf("%-7s %s %s\n", span, style.Muted(fmt.Sprintf("%-13s", tok.Type)), tok.Value)
	}
	return nil
}
