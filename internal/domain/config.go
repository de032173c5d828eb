package domain

import (
	"slices"
	"strconv"
	"strings"
)

// ValueKind describes which values a configuration key accepts.
type ValueKind int

const (
	KindString ValueKind = iota
	KindBool
	KindInt
	KindLevel
	KindPolicy
)

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `argp config list`
	Kind        ValueKind
	Choices     []string // Accepted values of a KindString key, if limited
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in `argp config list`.
var ConfigKeys = []ConfigKey{
	// Display
	{
		Name:        "color",
		Default:     "auto",
		Description: "Colored output: auto, always, never",
		Section:     "Display",
		Choices:     []string{"auto", "always", "never"},
	},
	{
		Name:        "color_theme",
		Default:     "default",
		Description: "Color theme: default, mono, contrast (-dark/-light to force)",
		Section:     "Display",
		Choices: []string{
			"default", "default-dark", "default-light",
			"mono", "mono-dark", "mono-light",
			"contrast", "contrast-dark", "contrast-light",
		},
	},
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager command for long output",
		Section:     "Display",
	},
	{
		Name:        "line_numbers",
		Default:     "true",
		Description: "Show line numbers in error previews",
		Section:     "Display",
		Kind:        KindBool,
	},
	// Help
	{
		Name:        "microsoft_style",
		Default:     "false",
		Description: "Print help with /SWITCH names instead of -s/--long",
		Section:     "Help",
		Kind:        KindBool,
	},
	{
		Name:        "description_indent",
		Default:     "40",
		Description: "Column where option descriptions start",
		Section:     "Help",
		Kind:        KindInt,
	},
	{
		Name:        "description_width",
		Default:     "40",
		Description: "Width descriptions are wrapped at",
		Section:     "Help",
		Kind:        KindInt,
	},
	// Parsing
	{
		Name:        "unrecognized_subcommand",
		Default:     "record",
		Description: "What to do with unknown subcommands: record, fail",
		Section:     "Parsing",
		Kind:        KindPolicy,
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "false",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
		Kind:        KindBool,
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
		Kind:        KindLevel,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// Accepts reports whether value is valid for the key.
func (k ConfigKey) Accepts(value string) bool {
	switch k.Kind {
	case KindBool:
		_, err := strconv.ParseBool(value)
		return err == nil
	case KindInt:
		n, err := strconv.Atoi(value)
		return err == nil && n >= 0
	case KindLevel:
		return slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(value))
	case KindPolicy:
		return value == "record" || value == "fail"
	default:
		return len(k.Choices) == 0 || slices.Contains(k.Choices, value)
	}
}

// Expected describes the accepted values for error messages.
func (k ConfigKey) Expected() string {
	switch k.Kind {
	case KindBool:
		return "true or false"
	case KindInt:
		return "a non-negative integer"
	case KindLevel:
		return "debug, info, warn or error"
	case KindPolicy:
		return "record or fail"
	default:
		if len(k.Choices) > 0 {
			return strings.Join(k.Choices, ", ")
		}
		return "any text"
	}
}

// ConfigKeyNames returns the names of all keys in display order.
func ConfigKeyNames() []string {
	names := make([]string, len(ConfigKeys))
	for i, key := range ConfigKeys {
		names[i] = key.Name
	}
	return names
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Display", "Help", "Parsing", "Logging"}
}

// ConfigKeysBySection returns config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		result[key.Section] = append(result[key.Section], key)
	}
	return result
}
