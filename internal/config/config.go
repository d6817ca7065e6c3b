package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Cache backend names accepted in the configuration.
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendSqlite = "sqlite"
	BackendMemory = "memory"
)

// Defaults applied when the configuration file or a field is absent.
const (
	DefaultAPIURL          = "https://api.github.com"
	DefaultTimeoutSeconds  = 10
	DefaultCacheTTLSeconds = 900
	DefaultCacheBackend    = BackendFile
)

// Config holds application configuration.
// Follows Single Responsibility - only holds configuration data.
type Config struct {
	APIURL          string `yaml:"api_url"`
	Token           string `yaml:"token"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	CacheBackend    string `yaml:"cache_backend"`
	CachePath       string `yaml:"cache_path"`
}

func defaultConfig() *Config {
	return &Config{
		APIURL:          DefaultAPIURL,
		TimeoutSeconds:  DefaultTimeoutSeconds,
		CacheTTLSeconds: DefaultCacheTTLSeconds,
		CacheBackend:    DefaultCacheBackend,
	}
}

// configPath returns the location of the optional configuration file.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "github-activity", "config.yaml"), nil
}

// Load reads the configuration file if present, fills defaults for empty
// fields, and applies environment overrides. A missing file is not an
// error; an unparseable one is.
func Load() (*Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			var fileCfg Config
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return nil, fmt.Errorf("invalid config file %s: %w", path, err)
			}
			mergeConfig(cfg, &fileCfg)
		} else if !errors.Is(readErr, os.ErrNotExist) {
			return nil, readErr
		}
	}

	// Environment overrides win over the file.
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.Token = v
	}

	switch cfg.CacheBackend {
	case BackendFile, BackendBolt, BackendSqlite, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}

	return cfg, nil
}

// mergeConfig copies the fields set in src over dst.
func mergeConfig(dst, src *Config) {
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
	}
	if src.Token != "" {
		dst.Token = src.Token
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	if src.CacheTTLSeconds > 0 {
		dst.CacheTTLSeconds = src.CacheTTLSeconds
	}
	if src.CacheBackend != "" {
		dst.CacheBackend = src.CacheBackend
	}
	if src.CachePath != "" {
		dst.CachePath = src.CachePath
	}
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns the cache time-to-live as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// HasToken returns true if an API token is configured.
func (c *Config) HasToken() bool {
	return c.Token != ""
}

// ResolvedCachePath returns the cache file location for the configured
// backend, computing a per-user default when none is set. Falls back to
// the working directory if no user cache directory is available.
func (c *Config) ResolvedCachePath() string {
	if c.CachePath != "" {
		return c.CachePath
	}

	name := "events_cache.json"
	switch c.CacheBackend {
	case BackendBolt:
		name = "events_cache.db"
	case BackendSqlite:
		name = "events_cache.sqlite"
	}

	dir, err := os.UserCacheDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "github-activity", name)
}
