package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KeyValueStore.Get for an unset key.
var ErrNotFound = errors.New("key does not exist")

// KeyValueStore is the durable backend a repository writes through.
// A single Set replaces the whole value of a key.
type KeyValueStore interface {
	// Get the value of the key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set the value of the key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete the key. Deleting an unset key is not an error.
	Delete(ctx context.Context, key string) error
	// Release resources held by the backend.
	Close() error
}
