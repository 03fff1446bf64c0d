package contract

// CacheStore is durable K/V storage for extracted commit collections,
// so repeated analyses of an unchanged repository skip re-extraction.
type CacheStore interface {
	// Get returns the cached value for key and whether it was present.
	Get(key string) ([]byte, bool, error)

	// Set inserts or replaces a key/value pair.
	Set(key string, value []byte) error

	// Count returns the number of cached entries.
	Count() (int, error)

	// Clear removes all cached entries.
	Clear() error

	// Close releases the underlying connection.
	Close() error
}
