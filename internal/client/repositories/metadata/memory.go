package metadata

import (
	"context"
	"sync"
)

// MemoryRepository keeps values in a map. It is used by tests and by runs
// that must not touch the disk.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		out[k] = append([]byte(nil), v...)
	}
	return out, nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = make(map[string][]byte)
	return nil
}
