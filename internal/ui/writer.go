package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/footprint-tools/argp/internal/domain"
)

// Writer is the domain.OutputWriter used by every argp command.
type Writer struct {
	out   io.Writer
	pager pagerSettings

	isTerminal func() bool
	run        func(name string, args []string, content string) error
}

// WriterOption configures a Writer.
type WriterOption func(*pagerSettings)

// WithPagerDisabled makes Pager print directly (--no-pager).
func WithPagerDisabled() WriterOption {
	return func(p *pagerSettings) { p.disabled = true }
}

// WithPagerOverride sets the pager command from --pager. It wins over the
// config and $PAGER.
func WithPagerOverride(cmd string) WriterOption {
	return func(p *pagerSettings) { p.override = cmd }
}

// WithConfigGetter sets where the "pager" config key is read from.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(p *pagerSettings) { p.config = fn }
}

// WithEnvGetter replaces os.Getenv for the $PAGER lookup.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(p *pagerSettings) { p.env = fn }
}

// NewWriter writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo writes to out. Only an *os.File attached to a terminal ever
// gets a pager.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:   out,
		pager: pagerSettings{env: os.Getenv},
		run:   runPager,
	}
	w.isTerminal = func() bool {
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
	for _, opt := range opts {
		opt(&w.pager)
	}
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager pipes content into the pager. Without a pager, or when it fails to
// start, content is printed directly.
func (w *Writer) Pager(content string) {
	if w.isTerminal() {
		if cmd := w.pager.command(); cmd != nil && w.run(cmd[0], cmd[1:], content) == nil {
			return
		}
	}
	fmt.Fprint(w.out, content)
}

var _ domain.OutputWriter = (*Writer)(nil)
