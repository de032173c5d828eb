package config

import (
	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/domain"
	"github.com/footprint-tools/argp/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

// list prints every key grouped by section. Values that differ from the
// default are marked.
func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	for i, section := range domain.ConfigSections() {
		if i > 0 {
			_, _ = deps.Println()
		}
		_, _ = deps.Println(style.Header("[" + section + "]"))

		for _, key := range bySection[section] {
			value := configMap[key.Name]
			if value != key.Default {
				_, _ = deps.Printf("%s=%s %s\n", key.Name, value, style.Muted("(default: "+key.Default+")"))
				continue
			}
			_, _ = deps.Printf("%s=%s\n", key.Name, value)
		}
	}

	return nil
}
