package usage

import "fmt"

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("argp: missing required argument '%s'", arg),
	}
}

// UnexpectedArgument is returned when a command gets an argument it does not
// take.
func UnexpectedArgument(arg string) *Error {
	return &Error{
		Kind:    ErrUnexpectedArgument,
		Message: fmt.Sprintf("argp: unexpected argument '%s'", arg),
	}
}
