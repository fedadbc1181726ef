package config

import (
	"os"
	"time"
)

// ResolvedConfig represents the final merged configuration with all
// precedence rules applied. Precedence order (highest to lowest):
// 1. --server flag
// 2. FIELDTASK_SERVER environment variable
// 3. Global config (~/.fieldtask/config.toml)
type ResolvedConfig struct {
	ServerURL string
	Timeout   time.Duration
}

// Resolve merges the flag value, environment, and global config. It returns
// ErrNoServerURL when no source supplies a server base URL.
func Resolve(flagURL string) (*ResolvedConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return ResolveWithHome(flagURL, homeDir)
}

// ResolveWithHome resolves config using a specified home directory. This is
// useful for testing.
func ResolveWithHome(flagURL, homeDir string) (*ResolvedConfig, error) {
	globalCfg, err := LoadGlobalConfigFromDir(homeDir)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		ServerURL: globalCfg.ServerURL,
		Timeout:   DefaultTimeout,
	}

	if globalCfg.Timeout != 0 {
		resolved.Timeout = globalCfg.Timeout
	}

	if env := os.Getenv(EnvServerURL); env != "" {
		resolved.ServerURL = env
	}

	if flagURL != "" {
		resolved.ServerURL = flagURL
	}

	if resolved.ServerURL == "" {
		return nil, ErrNoServerURL
	}

	return resolved, nil
}
