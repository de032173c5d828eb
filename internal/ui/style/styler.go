package style

import (
	"github.com/footprint-tools/argp/internal/domain"
	"github.com/footprint-tools/argp/internal/preview"
)

// Styler forwards to the package-level style functions, so it follows Init.
type Styler struct{}

func NewStyler() *Styler {
	return &Styler{}
}

func (*Styler) Enabled() bool              { return Enabled() }
func (*Styler) Success(text string) string { return Success(text) }
func (*Styler) Warning(text string) string { return Warning(text) }
func (*Styler) Error(text string) string   { return Error(text) }
func (*Styler) Info(text string) string    { return Info(text) }
func (*Styler) Muted(text string) string   { return Muted(text) }
func (*Styler) Header(text string) string  { return Header(text) }
func (*Styler) Escapes(text string) string { return Escapes(text) }

// NopStyler never colours. Escape codes are stripped.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }
func (NopStyler) Escapes(text string) string { return preview.Format(text, true) }

var (
	_ domain.Styler = (*Styler)(nil)
	_ domain.Styler = NopStyler{}
)
