package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is the durable local key-value mechanism the repositories persist
// into. Values survive process restarts and are scoped to one data directory
// on one device.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set durably replaces the value under key.
	Set(key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error

	// Exists checks if the key is present.
	Exists(key string) (bool, error)
}

var ErrKeyNotFound = fmt.Errorf("kvstore: key not found")

// LocalStore keeps one file per key under a base directory.
type LocalStore struct {
	basePath string
}

func NewLocalStore(basePath string) (*LocalStore, error) {
	// Create base directory if not exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &LocalStore{basePath: basePath}, nil
}

func (s *LocalStore) keyPath(key string) (string, error) {
	// Sanitize key to prevent directory traversal
	cleanKey := filepath.Clean(key)
	fullPath := filepath.Join(s.basePath, cleanKey)

	// Ensure the file stays within basePath
	if cleanKey == "." || strings.Contains(cleanKey, "..") || !strings.HasPrefix(fullPath, s.basePath) {
		return "", fmt.Errorf("invalid key: %s", key)
	}

	return fullPath, nil
}

func (s *LocalStore) Get(key string) ([]byte, error) {
	fullPath, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}

	return data, nil
}

// Set writes to a temp file first and renames it into place, so a failed
// write never destroys the previous value.
func (s *LocalStore) Set(key string, value []byte) error {
	fullPath, err := s.keyPath(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.basePath, "."+filepath.Base(fullPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for key %s: %w", key, err)
	}

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to flush key %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace key %s: %w", key, err)
	}

	return nil
}

func (s *LocalStore) Delete(key string) error {
	fullPath, err := s.keyPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}

func (s *LocalStore) Exists(key string) (bool, error) {
	fullPath, err := s.keyPath(key)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
