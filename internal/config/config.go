// Package config loads the fieldtask CLI configuration. The server base URL
// comes from, in order of precedence: the --server flag, the
// FIELDTASK_SERVER environment variable, and the global config file at
// ~/.fieldtask/config.toml. A missing base URL is a fatal startup condition.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// GlobalConfigDir is the name of the config directory in home.
	GlobalConfigDir = ".fieldtask"

	// GlobalConfigFileName is the name of the global config file.
	GlobalConfigFileName = "config.toml"

	// EnvServerURL is the environment variable overriding the server URL.
	EnvServerURL = "FIELDTASK_SERVER"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// ErrNoServerURL indicates no server base URL could be resolved from any
// source.
var ErrNoServerURL = errors.New("no server URL configured: set server.url in ~/" +
	GlobalConfigDir + "/" + GlobalConfigFileName + ", or use " + EnvServerURL + " or --server")

// GlobalConfig represents the user-level configuration from
// ~/.fieldtask/config.toml.
type GlobalConfig struct {
	ServerURL string
	Timeout   time.Duration
}

// globalConfigFile represents the raw TOML structure for global config.
type globalConfigFile struct {
	Server serverConfig `toml:"server"`
}

// serverConfig represents the [server] section in TOML.
type serverConfig struct {
	URL            string `toml:"url"`
	TimeoutSeconds *int   `toml:"timeout_seconds"`
}

// LoadGlobalConfig loads the global configuration from the user's home
// directory. Returns an empty config (not an error) if the file doesn't
// exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadGlobalConfigFromDir(homeDir)
}

// LoadGlobalConfigFromDir loads global config using the specified directory
// as home. This is useful for testing.
func LoadGlobalConfigFromDir(homeDir string) (*GlobalConfig, error) {
	configPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	var rawConfig globalConfigFile
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse global config TOML: %w", err)
	}

	cfg := &GlobalConfig{
		ServerURL: rawConfig.Server.URL,
	}

	if rawConfig.Server.TimeoutSeconds != nil {
		cfg.Timeout = time.Duration(*rawConfig.Server.TimeoutSeconds) * time.Second
	}

	return cfg, nil
}
