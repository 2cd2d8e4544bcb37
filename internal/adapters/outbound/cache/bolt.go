package cache

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketScans = []byte("scans")

// BoltStore persists entries in a bbolt database. Writes are
// transactional, so a crash mid-write cannot corrupt committed
// entries.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketScans)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Get treats any missing or undecodable value as a miss; a corrupt
// entry just means a rescan.
func (s *BoltStore) Get(path string) (Entry, bool) {
	var entry Entry
	found := false
	s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketScans).Get([]byte(path))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return entry, found
}

func (s *BoltStore) Put(path string, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketScans).Put([]byte(path), raw)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
