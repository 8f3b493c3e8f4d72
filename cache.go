package orgdocs

// Cache memoizes normalized document text by key for a bounded time.
// Implementations must be safe for concurrent use and must not perform I/O.
type Cache interface {
	// Get returns the stored value if present and not expired.
	Get(key string) (string, bool)

	// Set stores value under key, overwriting any previous entry.
	Set(key, value string)

	// Invalidate removes the entry for key.
	Invalidate(key string)
}
