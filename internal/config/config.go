package config

import "time"

// Config represents the application configuration
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Remote   RemoteConfig   `mapstructure:"remote" yaml:"remote"`
	Cache    CacheConfig    `mapstructure:"cache" yaml:"cache"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig contains manifest lookup settings
type ManifestConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// RemoteConfig contains remote rev-check settings
type RemoteConfig struct {
	Jobs       int           `mapstructure:"jobs" yaml:"jobs"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxRetries int           `mapstructure:"max_retries" yaml:"max_retries"`
}

// CacheConfig contains ref cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and normalizes out-of-range values
func (c *Config) Validate() error {
	if c.Manifest.File == "" {
		c.Manifest.File = DefaultManifestFile
	}
	if c.Remote.Jobs < 1 {
		c.Remote.Jobs = DefaultJobs
	}
	if c.Remote.Timeout < time.Second {
		c.Remote.Timeout = DefaultTimeout
	}
	if c.Remote.MaxRetries < 1 {
		c.Remote.MaxRetries = DefaultMaxRetries
	}
	if c.Cache.TTL < time.Minute {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Output.Format != "json" {
		c.Output.Format = DefaultOutputFormat
	}
	return nil
}
