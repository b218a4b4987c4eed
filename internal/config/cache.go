package config

import (
	"time"
)

// MovieCacheConfig defines settings for caching movie catalog lookups in
// Redis.  When Enabled is false or no Redis client is configured, lookups
// always hit the upstream movie API.  TTL defines the lifetime of cache
// entries and Prefix namespaces the keys.
type MovieCacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadMovieCacheConfig reads environment variables to build a
// MovieCacheConfig.  Defaults are used when variables are not set.
func LoadMovieCacheConfig() MovieCacheConfig {
	return MovieCacheConfig{
		Enabled: envBool("MOVIE_CACHE_ENABLED", true),
		TTL:     envDur("MOVIE_CACHE_TTL", 10*time.Minute),
		Prefix:  getenv("MOVIE_CACHE_PREFIX", "movies"),
	}
}
