package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/usage"
)

type capture struct {
	out strings.Builder
}

func (c *capture) printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(&c.out, format, a...)
}

func (c *capture) println(a ...any) (int, error) {
	return fmt.Fprintln(&c.out, a...)
}

func noFlags() *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(nil)
}

// =========== GET TESTS ===========

func TestGet_Success(t *testing.T) {
	var c capture
	deps := Deps{
		Get: func(key string) (string, bool) {
			if key == "color" {
				return "never", true
			}
			return "", false
		},
		Println: c.println,
	}

	require.NoError(t, get([]string{"color"}, noFlags(), deps))
	require.Equal(t, "never\n", c.out.String())
}

func TestGet_MissingKey(t *testing.T) {
	err := get([]string{}, noFlags(), Deps{})

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrMissingArgument, ue.Kind)
}

func TestGet_KeyNotFound(t *testing.T) {
	deps := Deps{
		Get: func(string) (string, bool) { return "", false },
	}

	err := get([]string{"nonexistent"}, noFlags(), deps)
	require.ErrorContains(t, err, "nonexistent")
	require.NotContains(t, err.Error(), "most similar")

	err = get([]string{"colour"}, noFlags(), deps)
	require.ErrorContains(t, err, "The most similar keys are\n\tcolor")
}

// =========== SET TESTS ===========

func TestSet(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		previous string
		want     string
	}{
		{name: "new value", args: []string{"pager", "less -R"}, want: "pager=less -R\n"},
		{name: "replaced value", args: []string{"color", "never"}, previous: "auto", want: "color=never (was: auto)\n"},
		{name: "same value", args: []string{"color", "auto"}, previous: "auto", want: "color=auto\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c capture
			var gotKey, gotValue string
			deps := Deps{
				Get: func(string) (string, bool) { return tt.previous, tt.previous != "" },
				Set: func(key, value string) error {
					gotKey, gotValue = key, value
					return nil
				},
				Printf: c.printf,
			}

			require.NoError(t, set(tt.args, noFlags(), deps))
			require.Equal(t, tt.args[0], gotKey)
			require.Equal(t, tt.args[1], gotValue)
			require.Equal(t, tt.want, c.out.String())
		})
	}
}

func TestSet_WrongArgumentCount(t *testing.T) {
	var ue *usage.Error

	err := set([]string{"pager"}, noFlags(), Deps{})
	require.ErrorContains(t, err, "key value")
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrMissingArgument, ue.Kind)

	err = set([]string{"pager", "less", "more"}, noFlags(), Deps{})
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrUnexpectedArgument, ue.Kind)
}

func TestSet_ValidationError(t *testing.T) {
	var c capture
	deps := Deps{
		Set: func(key, value string) error {
			return usage.InvalidConfigValue(key, value, "true or false")
		},
		Printf: c.printf,
	}

	err := set([]string{"enable_log", "maybe"}, noFlags(), deps)
	require.ErrorContains(t, err, "maybe")
	require.Empty(t, c.out.String())
}

// =========== UNSET TESTS ===========

func TestUnset_Keys(t *testing.T) {
	var c capture
	var removed []string
	deps := Deps{
		Unset: func(key string) error {
			removed = append(removed, key)
			return nil
		},
		Printf: c.printf,
	}

	require.NoError(t, unset([]string{"pager", "color"}, noFlags(), deps))
	require.Equal(t, []string{"pager", "color"}, removed)
	require.Equal(t, "unset pager (now: less -FRSX)\nunset color (now: auto)\n", c.out.String())
}

func TestUnset_MissingKey(t *testing.T) {
	err := unset(nil, noFlags(), Deps{})
	require.ErrorContains(t, err, "key")
}

func TestUnset_StopsAtFirstError(t *testing.T) {
	var c capture
	var removed []string
	deps := Deps{
		Unset: func(key string) error {
			if key == "colour" {
				return usage.InvalidConfigKey(key)
			}
			removed = append(removed, key)
			return nil
		},
		Printf: c.printf,
	}

	err := unset([]string{"pager", "colour", "color"}, noFlags(), deps)
	require.ErrorContains(t, err, "unknown config key 'colour'")
	require.Equal(t, []string{"pager"}, removed)
}

func TestUnset_AllFlag(t *testing.T) {
	var c capture
	var written []string
	deps := Deps{
		WriteLines: func(lines []string) error {
			written = lines
			return nil
		},
		Println: c.println,
	}

	flags := noFlags()
	flags.Set("all")

	require.NoError(t, unset(nil, flags, deps))
	require.NotNil(t, written)
	require.Empty(t, written)
	require.Equal(t, "all config entries removed\n", c.out.String())
}

func TestUnset_AllFlagWithArgs(t *testing.T) {
	flags := noFlags()
	flags.Set("all")

	err := unset([]string{"color"}, flags, Deps{})

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrUnexpectedArgument, ue.Kind)
}

func TestUnset_AllFlagWriteError(t *testing.T) {
	deps := Deps{
		WriteLines: func([]string) error { return errors.New("disk full") },
	}

	flags := noFlags()
	flags.Set("all")

	require.ErrorContains(t, unset(nil, flags, deps), "disk full")
}

// =========== LIST TESTS ===========

func TestList_Success(t *testing.T) {
	var c capture
	deps := Deps{
		GetAll: func() (map[string]string, error) {
			return map[string]string{
				"color":      "never",
				"pager":      "less -FRSX",
				"enable_log": "false",
			}, nil
		},
		Printf:  c.printf,
		Println: c.println,
	}

	require.NoError(t, list(nil, noFlags(), deps))

	out := c.out.String()
	require.Contains(t, out, "[Display]\ncolor=never (default: auto)\n")
	require.Contains(t, out, "pager=less -FRSX\n")
	require.Contains(t, out, "\n[Logging]\nenable_log=false\n")
	require.Less(t, strings.Index(out, "[Display]"), strings.Index(out, "[Help]"))
}

func TestList_GetAllError(t *testing.T) {
	deps := Deps{
		GetAll: func() (map[string]string, error) { return nil, errors.New("unreadable") },
	}

	require.ErrorContains(t, list(nil, noFlags(), deps), "unreadable")
}
