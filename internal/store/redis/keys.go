package redis

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const (
	// KeyPrefixProvider is the prefix for cached provider results
	KeyPrefixProvider = "jumplink:provider:"
)

// ProviderKey returns the Redis key for the cached short URL of longURL.
// Long URLs are hashed so keys stay short and free of odd characters.
func ProviderKey(longURL string) string {
	return KeyPrefixProvider + strconv.FormatUint(xxhash.Sum64String(longURL), 16)
}
