package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the colors of the semantic styles.
// Values are ANSI color numbers (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// BaseThemeNames lists theme bases that pick dark or light automatically.
var BaseThemeNames = []string{"default", "mono", "contrast"}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "242",
		Header:  "bold",
	},
	"mono-dark": {
		Success: "252",
		Warning: "250",
		Error:   "255",
		Info:    "248",
		Muted:   "242",
		Header:  "bold",
	},
	"mono-light": {
		Success: "236",
		Warning: "238",
		Error:   "232",
		Info:    "240",
		Muted:   "245",
		Header:  "bold",
	},
	"contrast-dark": {
		Success: "46",
		Warning: "226",
		Error:   "196",
		Info:    "51",
		Muted:   "250",
		Header:  "bold",
	},
	"contrast-light": {
		Success: "22",
		Warning: "94",
		Error:   "88",
		Info:    "18",
		Muted:   "238",
		Header:  "bold",
	},
}

// IsDarkBackground returns true if the terminal has a dark background.
// Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name, based on
// the terminal background. Names that already carry a suffix are returned
// as-is.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig picks the theme from ARGP_COLOR_THEME, then the
// color_theme config value, then "default". Unknown themes fall back to
// default-dark.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := "default"
	if env := os.Getenv("ARGP_COLOR_THEME"); env != "" {
		name = env
	} else if v := cfg["color_theme"]; v != "" {
		name = v
	}

	theme, ok := Themes[ResolveThemeName(name)]
	if !ok {
		return Themes["default-dark"]
	}
	return theme
}
