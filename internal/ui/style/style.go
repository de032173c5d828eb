// Package style colours argp's terminal output with lipgloss.
//
// Styles are named by role (Error, Header, ...), never by colour; the theme
// decides the colour. While styling is off every helper returns its input.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/argp/internal/preview"
)

type role int

const (
	roleSuccess role = iota
	roleWarning
	roleError
	roleInfo
	roleMuted
	roleHeader
	roleCount
)

var (
	enabled bool
	styles  [roleCount]lipgloss.Style
)

// Init turns styling on or off and loads the theme named in cfg (see
// LoadColorConfig). NO_COLOR and ARGP_NO_COLOR win over enable.
func Init(enable bool, cfg map[string]string) {
	enabled = enable && os.Getenv("NO_COLOR") == "" && os.Getenv("ARGP_NO_COLOR") == ""
	if !enabled {
		return
	}

	lipgloss.SetColorProfile(termenv.ANSI256)

	theme := LoadColorConfig(cfg)
	for r, value := range [roleCount]string{
		roleSuccess: theme.Success,
		roleWarning: theme.Warning,
		roleError:   theme.Error,
		roleInfo:    theme.Info,
		roleMuted:   theme.Muted,
		roleHeader:  theme.Header,
	} {
		styles[r] = styleFor(value)
	}
}

// Resolve maps the color setting to on or off. Anything but "always" and
// "never" behaves like "auto".
func Resolve(mode string, isTerminal bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}

// styleFor reads a theme value: "bold" or an ANSI colour number.
func styleFor(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(r role, text string) string {
	if !enabled {
		return text
	}
	return styles[r].Render(text)
}

func Enabled() bool { return enabled }

// Escapes expands shorthand escape codes such as "$r" or "$0". While
// styling is off the codes are dropped.
func Escapes(text string) string {
	return preview.Format(text, !enabled)
}

func Success(text string) string { return render(roleSuccess, text) }
func Warning(text string) string { return render(roleWarning, text) }
func Error(text string) string   { return render(roleError, text) }
func Info(text string) string    { return render(roleInfo, text) }

// Header is used for section titles in help output.
func Header(text string) string { return render(roleHeader, text) }

// Muted is used for secondary text such as defaults and hints.
func Muted(text string) string { return render(roleMuted, text) }
