package config

import (
	"github.com/footprint-tools/argp/internal/domain"
	"github.com/footprint-tools/argp/internal/parser"
	"github.com/footprint-tools/argp/internal/usage"
)

// UnknownKey returns the error for a key missing from domain.ConfigKeys,
// with the closest known keys as suggestions.
func UnknownKey(key string) error {
	return usage.InvalidConfigKey(key, parser.Suggest(key, domain.ConfigKeyNames())...)
}

// Provider wraps configuration operations and implements domain.ConfigProvider.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set validates value against the key and stores it.
func (p *Provider) Set(key, value string) error {
	k, ok := domain.GetConfigKey(key)
	if !ok {
		return UnknownKey(key)
	}
	if !k.Accepts(value) {
		return usage.InvalidConfigValue(key, value, k.Expected())
	}

	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			lines = header()
		}

		lines, _ = Set(lines, key, value)
		return WriteLines(lines)
	})
}

// Unset removes a configuration value so its default applies again.
func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return UnknownKey(key)
	}

	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, removed := Unset(lines, key)
		if !removed {
			return nil
		}
		return WriteLines(lines)
	})
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
