// Package secrets holds the provider API key outside the relational store.
// The key is an external credential, not app data, so it lives in a
// restricted file rather than the settings table.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Store interface {
	APIKey() (string, error)
	SetAPIKey(key string) error
	ClearAPIKey() error
}

type fileStore struct {
	path string
}

// NewFileStore uses the given path, or NUTRITIONAI_CREDENTIALS, or a file
// under the user config directory.
func NewFileStore(path string) (Store, error) {
	if path == "" {
		path = os.Getenv("NUTRITIONAI_CREDENTIALS")
	}
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		path = filepath.Join(configDir, "nutritionai", "credentials")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}

	return &fileStore{path: path}, nil
}

// APIKey returns "" without error when no key has been stored yet.
func (s *fileStore) APIKey() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credentials: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *fileStore) SetAPIKey(key string) error {
	if err := os.WriteFile(s.path, []byte(key+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

func (s *fileStore) ClearAPIKey() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
