package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func terminalWriter(buf *bytes.Buffer, opts ...WriterOption) *Writer {
	w := NewWriterTo(buf, opts...)
	w.isTerminal = func() bool { return true }
	w.pager.env = func(string) string { return "" }
	return w
}

func TestWriter_Print(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "a", 1)
	require.NoError(t, err)
	_, err = w.Println("done")
	require.NoError(t, err)

	require.Equal(t, "a=1\ndone\n", buf.String())
}

func TestWriter_PagerNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)
	w.run = func(string, []string, string) error {
		t.Fatal("pager must not run for non-terminal output")
		return nil
	}

	w.Pager("content\n")
	require.Equal(t, "content\n", buf.String())
}

func TestWriter_PagerCommand(t *testing.T) {
	config := func(v string) WriterOption {
		return WithConfigGetter(func(key string) (string, bool) {
			return v, key == "pager" && v != ""
		})
	}

	tests := []struct {
		name string
		opts []WriterOption
		env  string
		want []string
	}{
		{name: "default", want: []string{"less", "-FRSX"}},
		{name: "disabled", opts: []WriterOption{WithPagerDisabled(), WithPagerOverride("more")}},
		{name: "override wins", opts: []WriterOption{WithPagerOverride("more -d"), config("most")}, want: []string{"more", "-d"}},
		{name: "config", opts: []WriterOption{config("most")}, env: "more", want: []string{"most"}},
		{name: "env", env: "more", want: []string{"more"}},
		{name: "cat bypasses", opts: []WriterOption{config("cat")}},
		{name: "cat with arguments bypasses", env: "cat -v"},
		{name: "blank override prints directly", opts: []WriterOption{WithPagerOverride("   ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := terminalWriter(&buf, tt.opts...)
			w.pager.env = func(key string) string {
				if key == "PAGER" {
					return tt.env
				}
				return ""
			}
			require.Equal(t, tt.want, w.pager.command())
		})
	}
}

func TestWriter_PagerRunsCommand(t *testing.T) {
	var buf bytes.Buffer
	w := terminalWriter(&buf, WithPagerOverride("less -R"))

	var gotName string
	var gotArgs []string
	var gotContent string
	w.run = func(name string, args []string, content string) error {
		gotName, gotArgs, gotContent = name, args, content
		return nil
	}

	w.Pager("long text")
	require.Equal(t, "less", gotName)
	require.Equal(t, []string{"-R"}, gotArgs)
	require.Equal(t, "long text", gotContent)
	require.Empty(t, buf.String())
}

func TestWriter_PagerFailureFallsBack(t *testing.T) {
	var buf bytes.Buffer
	w := terminalWriter(&buf)
	w.run = func(string, []string, string) error { return errors.New("not found") }

	w.Pager("text")
	require.Equal(t, "text", buf.String())
}

func TestWriter_PagerDisabledOnTerminal(t *testing.T) {
	var buf bytes.Buffer
	w := terminalWriter(&buf, WithPagerDisabled())
	w.run = func(string, []string, string) error {
		t.Fatal("pager must not run with --no-pager")
		return nil
	}

	w.Pager("help\n")
	require.Equal(t, "help\n", buf.String())
}
