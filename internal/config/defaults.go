package config

import (
	"github.com/footprint-tools/argp/internal/domain"
	"github.com/footprint-tools/argp/internal/log"
)

// Defaults returns the default value of every known key.
func Defaults() map[string]string {
	defaults := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		defaults[key.Name] = key.Default
	}
	return defaults
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	cfg, err := load()
	if err != nil {
		log.Warn("config: %v", err)
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}

	return domain.GetDefaultValue(key)
}

// GetAll returns all config values (user overrides merged with defaults).
// An unreadable config file yields the defaults along with the error.
func GetAll() (map[string]string, error) {
	result := Defaults()

	cfg, err := load()
	for key, value := range cfg {
		result[key] = value
	}

	return result, err
}

func load() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
