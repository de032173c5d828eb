package cli

import (
	"github.com/footprint-tools/argp/internal/actions"
	configactions "github.com/footprint-tools/argp/internal/actions/config"
	helpactions "github.com/footprint-tools/argp/internal/actions/help"
	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/template"
)

func init() {
	helpactions.SetBuildTreeFunc(BuildTree)
}

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "argp",
		Summary: "Parse command lines against option and subcommand templates",
		Usage:   "argp [-h|--help] [-v|--version] [--no-color] [--no-pager] <command> [args]",
		Options: RootFlags,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "parse",
		Parent:   root,
		Summary:  "Parse arguments with the sample task manager",
		Usage:    "argp parse [--record|--strict] -- <args>...",
		Options:  ParseFlags,
		Action:   actions.Parse,
		Category: dispatchers.CategoryParse,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "tokens",
		Parent:   root,
		Summary:  "Show how arguments are tokenized",
		Usage:    "argp tokens -- <args>...",
		Action:   actions.Tokens,
		Category: dispatchers.CategoryParse,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "help",
		Parent:   root,
		Summary:  "Show help for a command or the sample",
		Usage:    "argp help [--microsoft] [<command>... | sample]",
		Options:  HelpFlags,
		Params:   HelpTopicArg,
		Variadic: template.ZeroOrMore,
		Action:   helpactions.Help,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show argp version",
		Usage:    "argp version",
		Action:   actions.Version,
		Category: dispatchers.CategoryInfo,
	})

	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "argp config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Get a config value",
		Usage:    "argp config get <key>",
		Params:   ConfigKeyArg,
		Action:   configactions.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "argp config set <key> <value>",
		Params:   ConfigKeyValueArgs,
		Action:   configactions.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Aliases:  []string{"rm"},
		Parent:   config,
		Summary:  "Remove a config value",
		Usage:    "argp config unset [--all] [<key>]",
		Options:  ConfigUnsetFlags,
		Params:   ConfigKeyArg,
		Variadic: template.ZeroOrMore,
		Action:   configactions.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List all config values",
		Usage:    "argp config list",
		Action:   configactions.List,
		Category: dispatchers.CategoryConfig,
	})

	return root
}
