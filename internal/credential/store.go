package credential

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

var settingsBucket = []byte("settings")

// OverrideKey is the settings entry holding a user-supplied Gemini key.
const OverrideKey = "CUSTOM_GEMINI_API_KEY"

// OverrideStore persists the user's key override in a small bbolt file.
type OverrideStore struct {
	db *bbolt.DB
}

// OpenOverrideStore opens (or creates) the settings file at path.
func OpenOverrideStore(path string) (*OverrideStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open settings %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(settingsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init settings: %w", err)
	}

	return &OverrideStore{db: db}, nil
}

// Get returns the stored override, or "" when none is set.
func (s *OverrideStore) Get() (string, error) {
	var key string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(settingsBucket)
		if b == nil {
			return fmt.Errorf("settings bucket not found")
		}
		key = string(b.Get([]byte(OverrideKey)))
		return nil
	})
	return key, err
}

// Set stores key as the override. A blank key clears it.
func (s *OverrideStore) Set(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return s.Clear()
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(settingsBucket)
		if b == nil {
			return fmt.Errorf("settings bucket not found")
		}
		return b.Put([]byte(OverrideKey), []byte(key))
	})
}

// Clear removes the override.
func (s *OverrideStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(settingsBucket)
		if b == nil {
			return fmt.Errorf("settings bucket not found")
		}
		return b.Delete([]byte(OverrideKey))
	})
}

// Provider exposes the store as a credential source.
func (s *OverrideStore) Provider() Provider {
	return func(context.Context) (string, error) {
		return s.Get()
	}
}

// Close releases the file lock.
func (s *OverrideStore) Close() error {
	return s.db.Close()
}
