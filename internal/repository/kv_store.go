package repository

import "context"

// KVStore abstracts the shared key-value table behind /data.
// Implementations: in-memory (default, volatile) or Redis (shared state
// across instances). The found flag distinguishes a missing key from a
// stored empty value.
type KVStore interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (value string, found bool, err error)
}
