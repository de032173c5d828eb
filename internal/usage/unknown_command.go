package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when argp itself is invoked with a command it
// does not have.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("argp: '%s' is not an argp command. See 'argp --help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// InvalidConfigKey is returned for keys argp does not know about.
func InvalidConfigKey(key string, suggestions ...string) *Error {
	msg := fmt.Sprintf("argp: unknown config key '%s'", key)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar keys are\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: msg,
	}
}

// InvalidConfigValue is returned when a value does not fit its key.
func InvalidConfigValue(key, value, expected string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigValue,
		Message: fmt.Sprintf("argp: invalid value '%s' for '%s' (expected %s)", value, key, expected),
	}
}

// FailedConfigPath is returned when the config file location cannot be
// determined.
func FailedConfigPath(err error) *Error {
	return &Error{
		Kind:    ErrFailedConfigPath,
		Message: fmt.Sprintf("argp: cannot locate the config file (set $ARGP_CONFIG): %v", err),
	}
}
