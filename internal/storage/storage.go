package storage

import (
	"context"
	"errors"
)

// Store is the durable-storage port used by the cart and wishlist stores.
// Aggregates are stored as JSON under a fixed key and fully overwritten on
// every save.
type Store interface {
	Load(ctx context.Context, key string, out any) error
	Save(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// ErrNotFound is returned by Load when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")
