package config

import (
	"github.com/footprint-tools/argp/internal/config"
	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/usage"
)

func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

// get prints the value of a key, which is its default unless the config file
// sets it.
func get(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	value, found := deps.Get(args[0])
	if !found {
		return config.UnknownKey(args[0])
	}

	_, _ = deps.Println(value)
	return nil
}
