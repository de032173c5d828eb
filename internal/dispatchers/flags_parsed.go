package dispatchers

import (
	"strconv"

	"github.com/footprint-tools/argp/internal/parser"
)

// ParsedFlags provides typed access to the options of a parse result. Options
// are looked up by their template name: the first long name, else the short
// name.
type ParsedFlags struct {
	values map[string][]string
	order  []string
}

// NewParsedFlags collects the matched options of args. Later occurrences
// replace the values of earlier ones.
func NewParsedFlags(args []parser.Argument) *ParsedFlags {
	f := &ParsedFlags{values: make(map[string][]string)}
	for _, arg := range args {
		if arg.Option != nil && arg.Status == parser.StatusValid {
			f.Set(arg.Option.Name(), arg.Values...)
		}
	}
	return f
}

// Set records the option name with values.
func (f *ParsedFlags) Set(name string, values ...string) {
	if _, ok := f.values[name]; !ok {
		f.order = append(f.order, name)
	}
	f.values[name] = values
}

// Names returns the options present, in order of first appearance. Used for
// debug logging.
func (f *ParsedFlags) Names() []string {
	return f.order
}

// Has returns true if the option is present.
func (f *ParsedFlags) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// String returns the first value of an option, or defaultVal if the option
// is absent or took no value.
func (f *ParsedFlags) String(name, defaultVal string) string {
	if values := f.values[name]; len(values) > 0 {
		return values[0]
	}
	return defaultVal
}

// Int returns the integer value of an option, or defaultVal if not present
// or invalid.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	str := f.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}
