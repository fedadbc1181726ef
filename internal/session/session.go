// Package session stores the CLI's bearer-token session on disk. The token
// is opaque to the client; only the server can interpret it. Passwords are
// never written anywhere.
package session

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fieldtask/fieldtask/internal/config"
)

// FileName is the name of the session file inside the config directory.
const FileName = "session.toml"

// Session holds the logged-in account's email and bearer token.
type Session struct {
	Email string `toml:"email"`
	Token string `toml:"token"`
}

// Path returns the session file path under the given home directory.
func Path(homeDir string) string {
	return filepath.Join(homeDir, config.GlobalConfigDir, FileName)
}

// Load reads the stored session. Returns (nil, nil) when no session exists.
func Load(homeDir string) (*Session, error) {
	data, err := os.ReadFile(Path(homeDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if _, err := toml.Decode(string(data), &s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	if s.Token == "" {
		return nil, nil
	}
	return &s, nil
}

// Save writes the session to disk, readable only by the current user.
func Save(homeDir string, s *Session) error {
	dir := filepath.Join(homeDir, config.GlobalConfigDir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(Path(homeDir), buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear deletes the stored session. Clearing a non-existent session is not
// an error.
func Clear(homeDir string) error {
	err := os.Remove(Path(homeDir))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
