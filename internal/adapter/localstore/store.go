// Package localstore persists the small amount of client state that must
// survive restarts: the session token and the theme preference.
package localstore

import (
	"context"
	"errors"
)

// Keys written by the client. Nothing else is persisted.
const (
	KeyAuthToken = "auth_token"
	KeyTheme     = "theme"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("localstore: key not found")

// Store is a durable string key/value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// MemoryPath selects the in-memory store in configuration.
const MemoryPath = ":memory:"

// Open returns a SQLite store at path, or a Memory store when path is empty
// or MemoryPath.
func Open(ctx context.Context, path string) (Store, error) {
	if path == "" || path == MemoryPath {
		return NewMemory(), nil
	}
	return OpenSQLite(ctx, path)
}
