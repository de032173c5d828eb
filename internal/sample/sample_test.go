package sample

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argp/internal/parser"
	"github.com/footprint-tools/argp/internal/template"
)

func TestTemplates_Valid(t *testing.T) {
	options, subcommands := Templates()
	require.NoError(t, template.Validate(options, subcommands))
}

func TestTemplates_Fresh(t *testing.T) {
	a, _ := Templates()
	b, _ := Templates()
	require.NotSame(t, a[0], b[0])
}

func TestTemplates_Parse(t *testing.T) {
	options, subcommands := Templates()

	args, err := parser.Parse(
		[]string{"-f", "notes", "add", "3", "call", "bob", "list", "--sort", "-n"},
		options, subcommands,
	)
	require.NoError(t, err)

	type entry struct {
		name   string
		values []string
	}
	var got []entry
	for _, a := range args {
		got = append(got, entry{a.Name(), a.Values})
	}

	// "notes" is taken as the value of -f. The following "add" is the
	// top-level command, and "list" after it is the top-level list.
	require.Equal(t, []entry{
		{"file", []string{"notes"}},
		{"add", []string{"3"}},
		{"call", nil},
		{"bob", nil},
		{"list", nil},
		{"sort", []string{"priority"}},
		{"include-notes", nil},
	}, got)
	require.Equal(t, parser.StatusUnrecognizedSubcommand, args[2].Status)
	require.False(t, parser.Valid(args))
}
