// Package config persists the client's local settings as a small JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the settings file created under the user's home directory.
const DefaultFileName = ".dronebl"

// Config holds the local settings.
type Config struct {
	// RPCKey is nil until a key has been saved.
	RPCKey  *string `json:"rpckey"`
	Staging bool    `json:"staging"`
	Debug   bool    `json:"debug"`
}

// Key returns the RPC key, or "" if none is set.
func (c Config) Key() string {
	if c.RPCKey == nil {
		return ""
	}
	return *c.RPCKey
}

// SetKey stores a copy of the given key.
func (c *Config) SetKey(key string) {
	c.RPCKey = &key
}

// WriteError means the settings file could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return "unable to update configuration: " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }

// DefaultPath returns ~/.dronebl.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultFileName), nil
}

// Load reads the settings at path, merging recognized keys over the defaults.
//
// A missing file yields the defaults. So does a file that cannot be read or
// parsed: loading is best effort and never fails.
func Load(path string) Config {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	// Decode into a copy so that a half-parsed file leaves no trace.
	loaded := config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return config
	}
	return loaded
}

// Save overwrites the file at path with the full settings.
func Save(path string, config Config) error {
	data, err := json.Marshal(config)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	// The file holds a credential.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
