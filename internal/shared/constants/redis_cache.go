package constants

import (
	"fmt"
	"time"
)

// Redis key layout: bandacious:{module}:{operation}:{catalog-version}:{params?}
// Every derived key carries the catalog version so a reload never serves
// numbers from the previous snapshot.

const (
	CACHE_PREFIX = "bandacious"
)

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_POPULAR = 1 * time.Hour
	TTL_GENRES  = 1 * time.Hour
)

// ================== DISCOVERY MODULE ==================

const (
	CACHE_KEY_POPULAR_VENUES  = CACHE_PREFIX + ":discovery:popular_venues:"  // + version:limit
	CACHE_KEY_POPULAR_ARTISTS = CACHE_PREFIX + ":discovery:popular_artists:" // + version:limit
	CACHE_KEY_GENRES          = CACHE_PREFIX + ":discovery:genres:"          // + version
)

// ================== RATE LIMIT MODULE ==================

const (
	CACHE_KEY_RATE_LIMIT = CACHE_PREFIX + ":ratelimit:" // + ip:type
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_DISCOVERY_ALL = CACHE_PREFIX + ":discovery:*"
)

// ================== KEY BUILDERS ==================

func PopularVenuesKey(version string, limit int) string {
	return fmt.Sprintf("%s%s:%d", CACHE_KEY_POPULAR_VENUES, version, limit)
}

func PopularArtistsKey(version string, limit int) string {
	return fmt.Sprintf("%s%s:%d", CACHE_KEY_POPULAR_ARTISTS, version, limit)
}

func GenresKey(version string) string {
	return CACHE_KEY_GENRES + version
}

func RateLimitKey(ip, limitType string) string {
	return fmt.Sprintf("%s%s:%s", CACHE_KEY_RATE_LIMIT, ip, limitType)
}
