// Package admin persists the site configuration blob edited through the
// admin panel. The blob is opaque JSON; the server stores and serves it
// without interpreting individual fields.
package admin

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yeoyeo/realty-api/internal/logger"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketName = "admin_config"
	entryKey   = "config"
)

// ErrInvalidJSON is returned when a submitted config blob is not valid
// JSON.
var ErrInvalidJSON = errors.New("admin config must be valid JSON")

// Store persists the admin config blob in a bbolt bucket.
type Store struct {
	db  *bolt.DB
	log *logger.Logger
}

func NewStore(db *bolt.DB, log *logger.Logger) (*Store, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create admin config bucket: %w", err)
	}

	return &Store{db: db, log: log.WithComponent("admin")}, nil
}

// Get returns the stored config blob. When nothing has been saved yet it
// returns an empty JSON object so clients can merge their defaults.
func (s *Store) Get() (json.RawMessage, error) {
	blob := json.RawMessage("{}")

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		if raw := bucket.Get([]byte(entryKey)); len(raw) > 0 {
			blob = append(json.RawMessage(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read admin config: %w", err)
	}

	return blob, nil
}

// Put replaces the stored config blob. The blob must be valid JSON;
// anything else is rejected before touching storage.
func (s *Store) Put(blob json.RawMessage) error {
	if !json.Valid(blob) {
		return ErrInvalidJSON
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return bolt.ErrBucketNotFound
		}
		return bucket.Put([]byte(entryKey), blob)
	})
	if err != nil {
		return fmt.Errorf("failed to save admin config: %w", err)
	}

	s.log.Info("Admin config updated", map[string]interface{}{"bytes": len(blob)})
	return nil
}
