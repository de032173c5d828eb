package config

import (
	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/domain"
	"github.com/footprint-tools/argp/internal/ui/style"
	"github.com/footprint-tools/argp/internal/usage"
)

func Unset(args []string, flags *dispatchers.ParsedFlags) error {
	return unset(args, flags, DefaultDeps())
}

// unset removes keys from the config file so they fall back to their
// defaults. With --all the file is emptied instead. Keys are removed in
// order; the first failure stops the rest.
func unset(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if flags != nil && flags.Has("all") {
		if len(args) > 0 {
			return usage.UnexpectedArgument(args[0])
		}
		if err := deps.WriteLines([]string{}); err != nil {
			return err
		}
		_, _ = deps.Println("all config entries removed")
		return nil
	}

	if len(args) == 0 {
		return usage.MissingArgument("key")
	}

	for _, key := range args {
		if err := deps.Unset(key); err != nil {
			return err
		}

		if def, ok := domain.GetDefaultValue(key); ok {
			_, _ = deps.Printf("unset %s %s\n", key, style.Muted("(now: "+def+")"))
			continue
		}
		_, _ = deps.Printf("unset %s\n", key)
	}
	return nil
}
