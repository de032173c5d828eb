package paths

import (
	"os"
	"path/filepath"

	"github.com/footprint-tools/argp/internal/usage"
)

const (
	appDirName     = "argp"
	configFileName = ".argprc"
	logFileName    = "argp.log"

	// ConfigEnv overrides the location of the config file.
	ConfigEnv = "ARGP_CONFIG"
)

// AppDataDir returns the application data directory for logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns $ARGP_CONFIG if set, else ~/.argprc.
func ConfigFilePath() (string, error) {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", usage.FailedConfigPath(err)
	}

	return filepath.Join(home, configFileName), nil
}

// LockFilePath returns the lock file guarding writes to the config file.
func LockFilePath() (string, error) {
	configPath, err := ConfigFilePath()
	if err != nil {
		return "", err
	}
	return configPath + ".lock", nil
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/argp/argp.log
//   - Linux: $XDG_CONFIG_HOME/argp/argp.log or ~/.config/argp/argp.log
//   - Windows: %AppData%\argp\argp.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}
