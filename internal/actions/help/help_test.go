package help

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/sample"
	"github.com/footprint-tools/argp/internal/template"
	"github.com/footprint-tools/argp/internal/usage"
)

func testTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "argp",
		Summary: "Test CLI",
		Usage:   "argp <command>",
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "parse",
		Parent:   root,
		Summary:  "Parse arguments",
		Usage:    "argp parse -- <args>...",
		Category: dispatchers.CategoryParse,
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
		Summary:  "Get config value",
		Usage:    "argp config get <key>",
		Params:   []string{"key"},
		Category: dispatchers.CategoryConfig,
	})
	return root
}

func testDeps(cfg map[string]string) (Deps, *string) {
	var out string
	return Deps{
		BuildTree: testTree,
		Templates: sample.Templates,
		ConfigGet: func(key string) (string, bool) {
			v, ok := cfg[key]
			return v, ok
		},
		Pager: func(s string) { out += s },
	}, &out
}

func TestHelp_Commands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "root", args: nil, want: "argp - Test CLI"},
		{name: "command", args: []string{"parse"}, want: "argp parse - Parse arguments"},
		{name: "nested command", args: []string{"config", "get"}, want: "argp config get - Get config value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, out := testDeps(nil)
			require.NoError(t, run(tt.args, nil, deps))
			require.Contains(t, *out, tt.want)
		})
	}
}

func TestHelp_UnknownCommand(t *testing.T) {
	deps, out := testDeps(nil)

	err := run([]string{"prase"}, nil, deps)

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	require.Equal(t, usage.ErrUnknownCommand, usageErr.Kind)
	require.Contains(t, err.Error(), "parse")
	require.Empty(t, *out)
}

func TestHelp_UnknownCommandSuggestsSample(t *testing.T) {
	deps, _ := testDeps(nil)

	err := run([]string{"sampel"}, nil, deps)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sample")
}

func TestHelp_UnknownNestedCommand(t *testing.T) {
	deps, _ := testDeps(nil)

	err := run([]string{"config", "gte"}, nil, deps)
	require.ErrorContains(t, err, "'config gte'")
	require.ErrorContains(t, err, "\tconfig get")
}

func TestHelp_SampleLayoutFlags(t *testing.T) {
	deps, out := testDeps(map[string]string{"description_indent": "40", "description_width": "40"})

	flags := dispatchers.NewParsedFlags(nil)
	flags.Set("indent", "12")
	flags.Set("width", "10")

	require.NoError(t, run([]string{"sample"}, flags, deps))

	pad := strings.Repeat(" ", 12)
	require.Contains(t, *out, "--include-notes\n"+
		pad+"Sort tasks\n"+
		pad+"with notes\n"+
		pad+"included\n")
}

func TestHelp_Sample(t *testing.T) {
	deps, out := testDeps(nil)

	require.NoError(t, run([]string{"sample"}, nil, deps))
	require.Contains(t, *out, "taskmgr [-options] <command> [args]")
	require.Contains(t, *out, "--include-notes")
	require.Contains(t, *out, "notes:")
	require.NotContains(t, *out, "$c")
}

func TestHelp_SampleMicrosoftStyle(t *testing.T) {
	tests := []struct {
		name  string
		cfg   map[string]string
		flags *dispatchers.ParsedFlags
	}{
		{
			name: "from config",
			cfg:  map[string]string{"microsoft_style": "true"},
		},
		{
			name:  "from flag",
			flags: flagsWith("microsoft"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, out := testDeps(tt.cfg)
			require.NoError(t, run([]string{"sample"}, tt.flags, deps))
			require.Contains(t, *out, "/INCLUDE-NOTES")
			require.NotContains(t, *out, "--include-notes")
		})
	}
}

func TestHelp_SampleInvalidTemplates(t *testing.T) {
	deps, out := testDeps(nil)
	deps.Templates = func() ([]*template.Option, []*template.Subcommand) {
		return []*template.Option{{Description: "no names"}}, nil
	}

	err := run([]string{"sample"}, nil, deps)
	require.ErrorIs(t, err, template.ErrInvalidTemplate)
	require.Empty(t, *out)
}

func flagsWith(names ...string) *dispatchers.ParsedFlags {
	flags := dispatchers.NewParsedFlags(nil)
	for _, name := range names {
		flags.Set(name)
	}
	return flags
}
