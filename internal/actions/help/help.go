// Package help implements "argp help".
package help

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/help"
	"github.com/footprint-tools/argp/internal/parser"
	"github.com/footprint-tools/argp/internal/ui/style"
	"github.com/footprint-tools/argp/internal/usage"
)

// SampleTopic names the bundled task manager templates.
const SampleTopic = "sample"

// Help prints help for argp, one of its commands or the sample templates.
func Help(args []string, flags *dispatchers.ParsedFlags) error {
	return run(args, flags, DefaultDeps())
}

func run(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) == 1 && args[0] == SampleTopic {
		text, err := sampleHelp(flags, deps)
		if err != nil {
			return err
		}
		deps.Pager(text)
		return nil
	}

	root := deps.BuildTree()

	target := dispatchers.ResolveNode(root, args)
	if target == nil {
		joined := strings.Join(args, " ")
		topics := append(dispatchers.CollectAllCommands(root, ""), SampleTopic)
		return usage.UnknownCommand(joined, parser.Suggest(joined, topics)...)
	}

	deps.Pager(dispatchers.HelpText(target, root))
	return nil
}

// sampleHelp renders the sample templates with the help settings from the
// config. --microsoft, --indent and --width override the config.
func sampleHelp(flags *dispatchers.ParsedFlags, deps Deps) (string, error) {
	c := help.DefaultCustomizer()
	c.TemplateStyle = "$c"

	if v, ok := deps.ConfigGet("description_indent"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.DescriptionIndent = n
		}
	}
	if v, ok := deps.ConfigGet("description_width"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.DescriptionWidth = n
		}
	}
	if v, ok := deps.ConfigGet("microsoft_style"); ok {
		c.MicrosoftStyle, _ = strconv.ParseBool(v)
	}
	if flags != nil {
		c.MicrosoftStyle = c.MicrosoftStyle || flags.Has("microsoft")
		c.DescriptionIndent = flags.Int("indent", c.DescriptionIndent)
		c.DescriptionWidth = flags.Int("width", c.DescriptionWidth)
	}

	options, subcommands := deps.Templates()
	text, err := help.Message(options, subcommands, c)
	if err != nil {
		return "", err
	}

	prefix := "-"
	if c.MicrosoftStyle {
		prefix = "/"
	}
	header := style.Header("taskmgr") + " - a task manager\n\n" +
		"USAGE\n   taskmgr [" + prefix + "options] <command> [args]\n\n"

	return header + style.Escapes(text), nil
}
