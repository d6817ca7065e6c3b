package cache

import "time"

// Store is a key/value store for raw API response bodies with TTL-based
// staleness. Keys are usernames; values are the raw JSON event feed.
// A stale entry is indistinguishable from a missing one: Get reports it
// as absent, never as an error.
//
// Backends may be in-memory or disk-backed. A disk-backed store must
// tolerate a missing or corrupt file by treating every lookup as a miss;
// cache corruption is never allowed to fail the program.
type Store interface {
	// Get returns the stored body for key only while the entry is
	// younger than the store's TTL. At exactly TTL age or later the
	// entry is absent.
	Get(key string) ([]byte, bool)

	// Set unconditionally stores body for key with the fetch time set
	// to now, replacing any prior entry.
	Set(key string, body []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// entry is the stored form shared by the disk-backed stores.
type entry struct {
	FetchedAt time.Time `json:"fetched_at"`
	Body      []byte    `json:"body"`
}

// valid reports whether an entry fetched at fetchedAt is still fresh at
// instant now. An entry exactly ttl old is already stale.
func valid(fetchedAt time.Time, ttl time.Duration, now time.Time) bool {
	return now.Sub(fetchedAt) < ttl
}
