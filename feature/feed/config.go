package feed

import (
	"path"
	"time"
)

// Config holds configuration for the feed mirror.
type Config struct {
	// Prefix is the bucket folder holding the feed snapshots.
	Prefix string `mapstructure:"prefix" default:"feeds"`
	// Extension is the snapshot file extension.
	Extension string `mapstructure:"extension" default:".json"`
	// CacheTTLSeconds is how long a downloaded snapshot is reused. 0 disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
	// MaxItems caps the number of mirrored entries per feed. 0 means unlimited.
	MaxItems int `mapstructure:"max_items" default:"0"`
}

// ObjectName returns the snapshot object for a feed.
func (c Config) ObjectName(name string) string {
	return path.Join(c.Prefix, name+c.Extension)
}

// CacheTTL returns the snapshot cache lifetime.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
