package domain

import (
	"strings"
)

// DefaultCacheKeyPrefix namespaces cache entries in a shared key-value store.
const DefaultCacheKeyPrefix = "pokeflex_"

// NormalizeName prepares a lookup name for cache keys and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//
// Inner whitespace, diacritics, hyphens, and apostrophes are preserved so
// that distinct catalog names never share a key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CacheKey returns the key under which the record for name is stored.
// Case variants of the same name map to the same key.
func CacheKey(prefix, name string) string {
	return prefix + NormalizeName(name)
}
