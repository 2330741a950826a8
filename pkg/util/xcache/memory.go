package xcache

import (
	"context"
	"time"

	"github.com/maypok86/otter"
	"golang.org/x/sync/singleflight"
)

// Defaults of NewMemory.
const (
	DefaultCapacity = 1 << 14
	DefaultTTL      = time.Hour
)

// NewMemory returns an in-memory Cache with DefaultCapacity and DefaultTTL.
func NewMemory[T any]() Cache[T] {
	return NewMemoryWithCapacity[T](DefaultCapacity, DefaultTTL)
}

// NewMemoryWithCapacity returns an in-memory Cache holding at most capacity
// values, each expiring ttl after it was written. Concurrent misses of the
// same key share a single load.
func NewMemoryWithCapacity[T any](capacity int, ttl time.Duration) Cache[T] {
	cache, err := otter.MustBuilder[string, T](capacity).
		WithTTL(ttl).
		Build()
	if err != nil {
		panic(err)
	}
	return &memoryCache[T]{cache: cache}
}

type memoryCache[T any] struct {
	cache otter.Cache[string, T]
	loads singleflight.Group
}

func (m *memoryCache[T]) Get(ctx context.Context, key string, options ...Option[T]) (T, error) {
	if v, ok := m.cache.Get(key); ok {
		return v, nil
	}
	load := MakeOptions(options...).Loader
	v, err, _ := m.loads.Do(key, func() (any, error) {
		value, err := load(ctx, key)
		if err != nil {
			return nil, err
		}
		m.cache.Set(key, value)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (m *memoryCache[T]) Set(_ context.Context, key string, value T) {
	m.cache.Set(key, value)
}

func (m *memoryCache[T]) Delete(_ context.Context, key string) {
	m.cache.Delete(key)
}

func (m *memoryCache[T]) Len() int {
	return m.cache.Size()
}
