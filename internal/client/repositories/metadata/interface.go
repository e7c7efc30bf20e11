// Package metadata is the local key/value table the client keeps its
// session state in.
package metadata

import (
	"context"
)

// Repository stores opaque values under string keys. Get returns (nil, nil)
// when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
