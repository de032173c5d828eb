package dispatchers

import (
	"fmt"

	"github.com/footprint-tools/argp/internal/parser"
	"github.com/footprint-tools/argp/internal/token"
	"github.com/footprint-tools/argp/internal/usage"
)

// Dispatch parses args against the tree and picks what to run.
//
// Unknown commands and options fail with a *usage.ArgumentError. Values of
// the innermost command and everything after "--" become the resolution's
// Args.
func Dispatch(root *DispatchNode, args []string, opts ...parser.Option) (Resolution, error) {
	opts = append([]parser.Option{parser.WithUnrecognizedSubcommand(parser.PolicyFail)}, opts...)

	results, err := parser.Parse(args, root.Options(), root.Template.Subcommands, opts...)
	if err != nil {
		return Resolution{}, err
	}

	flags := NewParsedFlags(results)

	current := root
	var values []string
	for _, arg := range results {
		if arg.Subcommand == nil {
			continue
		}

		node := root.index[arg.Subcommand]
		if node == nil || !node.within(current) {
			return Resolution{}, unexpectedCommand(args, arg, current)
		}
		current = node
		values = arg.Values
	}

	cmdArgs := append(append([]string(nil), values...), parser.Passthrough(results)...)

	if hasHelpFlag(flags) {
		return Resolution{
			Node:    current,
			Flags:   flags,
			Execute: HelpAction(current, root),
		}, nil
	}

	if current == root && flags.Has("version") {
		if version := root.Children["version"]; version != nil && version.Action != nil {
			return Resolution{Node: version, Flags: flags, Execute: version.Action}, nil
		}
	}

	if current.Action == nil {
		// No command specified: show help but exit with code 1 (like git)
		exitCode := 0
		if current == root && len(args) == 0 {
			exitCode = 1
		}
		return Resolution{
			Node:     current,
			Flags:    flags,
			Execute:  HelpAction(current, root),
			ExitCode: exitCode,
		}, nil
	}

	return Resolution{
		Node:    current,
		Args:    cmdArgs,
		Flags:   flags,
		Execute: current.Action,
	}, nil
}

func hasHelpFlag(flags *ParsedFlags) bool {
	return flags.Has("help")
}

// unexpectedCommand reports a command that does not belong below the one
// already given, as in "argp version config".
func unexpectedCommand(args []string, arg parser.Argument, current *DispatchNode) error {
	msg := fmt.Sprintf("unexpected command '%s'", arg.Token.Value)
	if !current.IsRoot() {
		msg += fmt.Sprintf(" after '%s'", current.Name)
	}

	return usage.NewArgumentError(
		usage.ErrUnrecognizedSubcommand,
		msg,
		token.CommandLine(parser.Tokens(args)),
		arg.Token.Range,
		FindSimilarCommands(arg.Token.Value, current)...,
	)
}
