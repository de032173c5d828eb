package template

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTemplate is the sentinel every ConfigError unwraps to.
var ErrInvalidTemplate = errors.New("invalid template")

// ConfigError reports a template that breaks one of the declaration rules.
// It is a programming error on the caller's side, not bad user input.
type ConfigError struct {
	// Path lists the subcommand names leading to the offending template.
	Path    []string
	Message string
}

func (e *ConfigError) Error() string {
	if len(e.Path) == 0 {
		return "invalid template: " + e.Message
	}
	return fmt.Sprintf("invalid template (in %s): %s", strings.Join(e.Path, " "), e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidTemplate
}

// Validate checks every option and subcommand, recursing into nested
// templates, and returns the first violation found.
func Validate(options []*Option, subcommands []*Subcommand) error {
	for i, option := range options {
		if err := validateOption(option, i, nil); err != nil {
			return err
		}
	}

	for i, subcommand := range subcommands {
		if err := validateSubcommand(subcommand, i, nil); err != nil {
			return err
		}
	}

	return nil
}

func configError(path []string, format string, args ...any) *ConfigError {
	return &ConfigError{
		Path:    append([]string(nil), path...),
		Message: fmt.Sprintf(format, args...),
	}
}

func validateOption(option *Option, index int, path []string) error {
	if option == nil {
		return configError(path, "option at index %d is nil", index)
	}

	if len(option.ShortNames) == 0 && len(option.LongNames) == 0 {
		return configError(path, "option at index %d has no short names or long names", index)
	}

	for _, name := range option.LongNames {
		if len(name) < 2 {
			return configError(path, "long name %q cannot be less than 2 characters", name)
		}
		if err := validateName(name, "long name", path); err != nil {
			return err
		}
	}

	for _, name := range option.ShortNames {
		if name <= ' ' || name > '~' {
			return configError(path, "short name %q must be a printable character", name)
		}
		if name >= 'A' && name <= 'Z' {
			return configError(path, "short name %q must be lowercase", name)
		}
		switch name {
		case '-', '/', '=', ':':
			return configError(path, "short name cannot be '-', '/', '=' or ':'")
		}
	}

	return validateValues(option.Params, option.Defaults, option.Variadic, "option "+option.Name(), path)
}

func validateSubcommand(subcommand *Subcommand, index int, path []string) error {
	if subcommand == nil {
		return configError(path, "subcommand at index %d is nil", index)
	}

	if len(subcommand.Names) == 0 {
		return configError(path, "subcommand at index %d has no names", index)
	}

	for _, name := range subcommand.Names {
		if name == "" {
			return configError(path, "subcommand name cannot be empty")
		}
		if err := validateName(name, "subcommand name", path); err != nil {
			return err
		}
	}

	what := "subcommand " + subcommand.Name()
	if err := validateValues(subcommand.Params, subcommand.Defaults, subcommand.Variadic, what, path); err != nil {
		return err
	}

	if len(subcommand.Subcommands) > 0 && subcommand.Variadic.IsVariadic() {
		return configError(path, "%s cannot have nested subcommands and variadic parameters", what)
	}

	if len(subcommand.Subcommands) > 0 && len(subcommand.Defaults) > 0 {
		return configError(path, "%s cannot have default values and nested subcommands", what)
	}

	nested := append(append([]string(nil), path...), subcommand.Name())

	for i, option := range subcommand.Options {
		if err := validateOption(option, i, nested); err != nil {
			return err
		}
	}

	for i, child := range subcommand.Subcommands {
		if err := validateSubcommand(child, i, nested); err != nil {
			return err
		}
	}

	return nil
}

func validateName(name, what string, path []string) error {
	if name != strings.ToLower(name) {
		return configError(path, "%s %q must be lowercase", what, name)
	}
	if strings.ContainsAny(name, "=:") {
		return configError(path, "%s %q cannot contain '=' or ':'", what, name)
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "/") {
		return configError(path, "%s %q cannot start with '-' or '/'", what, name)
	}
	if strings.ContainsAny(name, " \t\r\n") {
		return configError(path, "%s %q cannot contain whitespace", what, name)
	}
	return nil
}

func validateValues(params, defaults []string, variadic Variadicity, what string, path []string) error {
	if len(defaults) > len(params) {
		return configError(path, "%s cannot have more default values (%d) than declared parameters (%d)",
			what, len(defaults), len(params))
	}

	if len(defaults) > 0 && variadic.IsVariadic() {
		return configError(path, "%s cannot have default values and variadic parameters", what)
	}

	return nil
}
