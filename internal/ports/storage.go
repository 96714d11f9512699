package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when no value is stored under the key
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is durable local storage for serialized documents, the
// equivalent of a browser's local storage
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
