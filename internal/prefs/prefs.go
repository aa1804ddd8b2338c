// Package prefs persists client preferences in a local BoltDB file.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// Default database file permissions
	dbFileMode = 0600
	dbDirMode  = 0755

	openTimeout = time.Second
)

var bucketName = []byte("preferences")

const keyLanguage = "language"

// SupportedLanguages lists the languages SetLanguage accepts.
var SupportedLanguages = []string{"en", "es"}

// ErrUnsupportedLanguage is returned by SetLanguage for unknown codes.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Store holds the preferred UI language. Nothing else is persisted.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the store at path, creating parent directories.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("preferences path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	db, err := bolt.Open(path, dbFileMode, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preferences bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Language returns the saved language. ok is false when none was saved.
func (s *Store) Language() (string, bool, error) {
	return s.get(keyLanguage)
}

// SetLanguage saves lang, which must be one of SupportedLanguages.
func (s *Store) SetLanguage(lang string) error {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !isSupported(lang) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return s.put(keyLanguage, lang)
}

func (s *Store) get(key string) (string, bool, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		// bbolt values are only valid inside the transaction
		if v := b.Get([]byte(key)); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	if value == nil {
		return "", false, nil
	}
	return string(value), true, nil
}

func (s *Store) put(key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to store preference %s: %w", key, err)
	}
	return nil
}

func isSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
