package actions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/parser"
	"github.com/footprint-tools/argp/internal/ui/style"
)

// Parse parses args against the sample templates and prints one line per
// entry of the result.
func Parse(args []string, flags *dispatchers.ParsedFlags) error {
	return parse(args, flags, defaultDeps())
}

func parse(args []string, flags *dispatchers.ParsedFlags, deps actionDependencies) error {
	options, subcommands := deps.Templates()

	results, err := parser.Parse(args, options, subcommands, parseOptions(flags, deps)...)
	if err != nil {
		return err
	}

	for _, arg := range results {
		_, _ = deps.Printf("%s\n", formatArgument(arg))
	}
	return nil
}

// parseOptions picks the policies: --record and --strict override the
// unrecognized_subcommand config key.
func parseOptions(flags *dispatchers.ParsedFlags, deps actionDependencies) []parser.Option {
	opts := []parser.Option{parser.WithLogger(deps.Logger())}

	if value, ok := deps.ConfigGet("unrecognized_subcommand"); ok {
		if policy, err := parser.ParsePolicy(value); err == nil {
			opts = append(opts, parser.WithUnrecognizedSubcommand(policy))
		}
	}

	var all []parser.Option
	switch {
	case flags.Has("record"):
		all = policies(parser.PolicyRecord)
	case flags.Has("strict"):
		all = policies(parser.PolicyFail)
	}

	return append(opts, all...)
}

func policies(p parser.Policy) []parser.Option {
	return []parser.Option{
		parser.WithUnrecognizedSubcommand(p),
		parser.WithUnrecognizedOption(p),
		parser.WithNotEnoughValues(p),
	}
}

// formatArgument renders an entry as "kind name values (status)".
func formatArgument(arg parser.Argument) string {
	kind := "unknown"
	switch {
	case !arg.Parsed:
		kind = "passthrough"
	case arg.Option != nil:
		kind = "option"
	case arg.Subcommand != nil:
		kind = "subcommand"
	}

	var b strings.Builder
	b.WriteString(style.Muted(fmt.Sprintf("%-11s", kind)))
	b.WriteString(" ")
	b.WriteString(style.Info(fmt.Sprintf("%-15s", arg.Name())))

	for _, v := range arg.Values {
		b.WriteString(" " + strconv.Quote(v))
	}

	if arg.Status != parser.StatusValid {
		b.WriteString(" " + style.Warning("("+arg.Status.String()+")"))
	}
	if len(arg.Suggestions) > 0 {
		b.WriteString(" did you mean " + strings.Join(arg.Suggestions, ", ") + "?")
	}

	return strings.TrimRight(b.String(), " ")
}
