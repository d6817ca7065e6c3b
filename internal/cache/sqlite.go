package cache

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// SqliteStore persists cache entries in a SQLite database file. Fetch
// times are stored as RFC 3339 text; a row that fails to parse is treated
// as a miss.
type SqliteStore struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewSqliteStore opens (or creates) the database file at path.
func NewSqliteStore(path string, ttl time.Duration) (*SqliteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SqliteStore{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS cache (
        key TEXT PRIMARY KEY,
        fetched_at TEXT NOT NULL,
        body BLOB NOT NULL
    );`)
	return err
}

// Get returns the stored body if a fresh entry exists for key.
func (s *SqliteStore) Get(key string) ([]byte, bool) {
	var ts string
	var body []byte
	err := s.db.QueryRow(`SELECT fetched_at, body FROM cache WHERE key = ?`, key).Scan(&ts, &body)
	if err != nil {
		return nil, false
	}

	fetchedAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, false
	}
	if !valid(fetchedAt, s.ttl, s.now()) {
		return nil, false
	}
	return body, true
}

// Set stores body for key, replacing any prior entry.
func (s *SqliteStore) Set(key string, body []byte) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO cache(key, fetched_at, body) VALUES (?, ?, ?)`,
		key, s.now().Format(time.RFC3339Nano), body)
	return err
}

// Close closes the underlying database.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}
