package cache

import (
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucketName = "events"

// BoltStore persists cache entries in a bbolt database file. Entries are
// JSON-encoded; an entry that fails to decode is treated as a miss.
type BoltStore struct {
	db  *bbolt.DB
	ttl time.Duration
	now func() time.Time
}

// NewBoltStore opens (or creates) the database file at path.
func NewBoltStore(path string, ttl time.Duration) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &BoltStore{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// Get returns the stored body if a fresh entry exists for key.
func (s *BoltStore) Get(key string) ([]byte, bool) {
	var e entry
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketName))
		if bucket == nil {
			return nil
		}
		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &e); err != nil {
			// corrupt entry, treat as absent
			return nil
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return nil, false
	}
	if !valid(e.FetchedAt, s.ttl, s.now()) {
		return nil, false
	}
	return e.Body, true
}

// Set stores body for key, replacing any prior entry.
func (s *BoltStore) Set(key string, body []byte) error {
	data, err := json.Marshal(entry{
		FetchedAt: s.now(),
		Body:      body,
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(boltBucketName))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), data)
	})
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
