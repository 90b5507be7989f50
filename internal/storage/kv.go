// Package storage provides the string-keyed persistence substrate backing
// user lists and search history.
//
// Values are UTF-8 JSON text. The SQLite implementation enforces a single
// cooperative writer per storage directory via a file lock; the memory
// implementation backs tests.
package storage

import "context"

// Well-known keys. The legacy favorites key only exists in stores written
// before the unified aggregate schema and is removed after migration.
const (
	KeyUserLists       = "user-lists-v1"
	KeyLegacyFavorites = "favorites-v2"
	KeySearchHistory   = "search-history"
)

// KV is a synchronous string-keyed get/set persistence interface.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
