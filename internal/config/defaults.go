package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	DefaultManifestFile = ".pre-commit-config.yaml"

	DefaultJobs       = 5
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3

	DefaultCacheEnabled = true
	DefaultCacheTTL     = 24 * time.Hour

	DefaultOutputFormat = "text"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hooklint"
	}
	return filepath.Join(home, ".hooklint")
}

// CacheDir returns the cache directory path
func CacheDir() string {
	return filepath.Join(ConfigDir(), "cache")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manifest: ManifestConfig{
			File: DefaultManifestFile,
		},
		Remote: RemoteConfig{
			Jobs:       DefaultJobs,
			Timeout:    DefaultTimeout,
			MaxRetries: DefaultMaxRetries,
		},
		Cache: CacheConfig{
			Enabled:   DefaultCacheEnabled,
			TTL:       DefaultCacheTTL,
			Directory: CacheDir(),
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
