package cache

import "context"

// Store keeps rendered consultation documents keyed by canonical intent.
// Implementations must be safe for concurrent use and must never fail a
// request: misses and write errors are absorbed, not returned.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Put(ctx context.Context, key string, value string)
}
