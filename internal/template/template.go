// Package template defines the declarative description of the options and
// subcommands a program accepts.
//
// Templates are built by the caller before parsing and are only ever read by
// the parser and the help generator.
package template

// Variadicity describes whether a template accepts values beyond its
// declared parameters.
type Variadicity int

const (
	NotVariadic Variadicity = iota
	ZeroOrMore
	OneOrMore
)

func (v Variadicity) String() string {
	switch v {
	case NotVariadic:
		return "not_variadic"
	case ZeroOrMore:
		return "zero_or_more"
	case OneOrMore:
		return "one_or_more"
	default:
		return "unknown"
	}
}

// IsVariadic reports whether v accepts a variable tail of values.
func (v Variadicity) IsVariadic() bool {
	return v == ZeroOrMore || v == OneOrMore
}

// Option is a flag such as -v, --verbose or /V.
//
// Defaults and Variadic are mutually exclusive.
type Option struct {
	// Description is shown in help output.
	Description string

	// ShortNames are single lowercase characters, 'v' for -v or /V.
	ShortNames []byte

	// LongNames are lowercase names of at least 2 characters, "verbose" for
	// --verbose or /VERBOSE.
	LongNames []string

	// Params names the values the option takes, "level" for --verbose=<level>.
	Params []string

	// Defaults are right-anchored: they belong to the last len(Defaults)
	// parameters, in order.
	Defaults []string

	Variadic Variadicity
}

// Subcommand is a positional command such as "get" in "program get key".
//
// Defaults, Subcommands and Variadic are mutually exclusive with each other.
type Subcommand struct {
	Description string

	// Names are lowercase and at least one is required.
	Names []string

	Params   []string
	Defaults []string
	Variadic Variadicity

	// Options are only matched while this subcommand (or one of its
	// descendants) is active. They take precedence over global options.
	Options []*Option

	// Subcommands nest below this one, "remote add" style.
	Subcommands []*Subcommand
}

// Name returns the first name of the subcommand, or "" if it has none.
func (s *Subcommand) Name() string {
	if s == nil || len(s.Names) == 0 {
		return ""
	}
	return s.Names[0]
}

// Name returns the most descriptive name of the option: the first long name
// if any, else the first short name.
func (o *Option) Name() string {
	if o == nil {
		return ""
	}
	if len(o.LongNames) > 0 {
		return o.LongNames[0]
	}
	if len(o.ShortNames) > 0 {
		return string(o.ShortNames[0])
	}
	return ""
}

// IsOptional reports whether the parameter at index i has a default value.
func IsOptional(params, defaults []string, i int) bool {
	return DefaultIndex(params, defaults, i) >= 0
}

// DefaultIndex maps the parameter index i to its index in defaults, or -1
// when the parameter has no default.
func DefaultIndex(params, defaults []string, i int) int {
	idx := i - (len(params) - len(defaults))
	if idx < 0 || idx >= len(defaults) {
		return -1
	}
	return idx
}
