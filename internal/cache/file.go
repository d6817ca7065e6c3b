package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger records cache diagnostics (Interface Segregation Principle).
type Logger interface {
	Printf(format string, v ...interface{})
}

// FileStore provides a best-effort single-file JSON cache.
// The file holds a map of key to entry and is rewritten atomically on
// every Set. A missing or corrupt file behaves like an empty cache.
type FileStore struct {
	filePath string
	ttl      time.Duration
	now      func() time.Time
	mu       sync.Mutex
	logger   Logger
}

// NewFileStore creates a file-backed store. The file is created lazily on
// the first Set.
func NewFileStore(filePath string, ttl time.Duration, logger Logger) *FileStore {
	return &FileStore{
		filePath: filePath,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Get returns the stored body if a fresh entry exists for key.
func (s *FileStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	e, exists := entries[key]
	if !exists {
		return nil, false
	}
	if !valid(e.FetchedAt, s.ttl, s.now()) {
		return nil, false
	}
	return e.Body, true
}

// Set stores body for key and rewrites the cache file.
func (s *FileStore) Set(key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	entries[key] = entry{
		FetchedAt: s.now(),
		Body:      body,
	}
	return s.save(entries)
}

// Close is a no-op; every Set already flushes to disk.
func (s *FileStore) Close() error {
	return nil
}

// load reads the cache file. Any failure (missing file, unreadable file,
// invalid JSON) yields an empty map so the caller sees a clean cache.
func (s *FileStore) load() map[string]entry {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Printf("File cache: failed to read %s: %v", s.filePath, err)
		}
		return map[string]entry{}
	}

	var entries map[string]entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Printf("File cache: %s is corrupt, starting clean: %v", s.filePath, err)
		return map[string]entry{}
	}
	if entries == nil {
		return map[string]entry{}
	}
	return entries
}

// save writes the cache file via a temp file and rename (atomic on most
// filesystems).
func (s *FileStore) save(entries map[string]entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return err
	}
	return nil
}
