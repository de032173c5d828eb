package config

import (
	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/ui/style"
	"github.com/footprint-tools/argp/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return set(args, flags, DefaultDeps())
}

// set stores one value and echoes it as key=value, followed by the value it
// replaced when that was different.
func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) != 2 {
		if len(args) > 2 {
			return usage.UnexpectedArgument(args[2])
		}
		return usage.MissingArgument("key value")
	}
	key, value := args[0], args[1]

	var previous string
	if deps.Get != nil {
		previous, _ = deps.Get(key)
	}

	if err := deps.Set(key, value); err != nil {
		return err
	}

	if previous != "" && previous != value {
		_, _ = deps.Printf("%s=%s %s\n", key, value, style.Muted("(was: "+previous+")"))
		return nil
	}
	_, _ = deps.Printf("%s=%s\n", key, value)
	return nil
}
