// Package history keeps a small, size-capped list of past search
// queries: unique by value, most recent first, persisted so it survives
// restarts. Storage trouble of any kind degrades to a no-op or an empty
// list; history is a convenience, never worth failing a request over.
package history

import (
	"encoding/json"
	"strings"

	"github.com/yeoyeo/realty-api/internal/logger"
	bolt "go.etcd.io/bbolt"
)

const (
	// MaxItems caps the history length on every write.
	MaxItems = 10

	bucketName = "search_history"
	entryKey   = "queries"
)

// Store persists the search history in a bbolt bucket.
type Store struct {
	db  *bolt.DB
	log *logger.Logger
}

// NewStore creates a Store on the given bbolt handle, creating the
// bucket if needed. A bucket-creation failure is logged and tolerated;
// the store then degrades to empty reads and no-op writes.
func NewStore(db *bolt.DB, log *logger.Logger) *Store {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		log.Error("Failed to create history bucket", err, nil)
	}

	return &Store{db: db, log: log.WithComponent("history")}
}

// Save records a query at the front of the history, removing any
// existing equal entry and trimming to MaxItems. Blank queries are
// ignored. Storage failures are logged and swallowed.
func (s *Store) Save(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return bolt.ErrBucketNotFound
		}

		current := decode(bucket.Get([]byte(entryKey)))

		updated := make([]string, 0, len(current)+1)
		updated = append(updated, query)
		for _, item := range current {
			if item != query {
				updated = append(updated, item)
			}
		}
		if len(updated) > MaxItems {
			updated = updated[:MaxItems]
		}

		encoded, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(entryKey), encoded)
	})
	if err != nil {
		s.log.Error("Failed to save search history", err, map[string]interface{}{
			"query": query,
		})
	}
}

// GetAll returns the persisted history, most recent first. Missing or
// corrupt storage yields an empty list.
func (s *Store) GetAll() []string {
	var queries []string

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		queries = decode(bucket.Get([]byte(entryKey)))
		return nil
	})
	if err != nil {
		s.log.Error("Failed to read search history", err, nil)
		return []string{}
	}

	return queries
}

// Clear removes the persisted history. Failures are logged and
// swallowed.
func (s *Store) Clear() {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(entryKey))
	})
	if err != nil {
		s.log.Error("Failed to clear search history", err, nil)
	}
}

// decode unmarshals a stored history blob, treating nil or corrupt data
// as an empty history.
func decode(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var queries []string
	if err := json.Unmarshal(raw, &queries); err != nil {
		return []string{}
	}
	return queries
}
