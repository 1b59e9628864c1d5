package kv

import "context"

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "key not found" }

// Store defines the contract for saving and loading serialized state blobs.
// Implementations must treat values as opaque bytes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
