// Package xcache memoizes values by string key.
package xcache

import (
	"context"

	"github.com/wuxler/imgref/pkg/errdefs"
)

// Cache stores values by key. Implementations are safe for concurrent use.
type Cache[T any] interface {
	// Get returns the value of key. On a miss the value is computed by the
	// loader given with WithLoader and stored; without loader a miss fails
	// with errdefs.ErrNotFound.
	Get(ctx context.Context, key string, options ...Option[T]) (T, error)
	// Set stores the value of key.
	Set(ctx context.Context, key string, value T)
	// Delete removes the value of key.
	Delete(ctx context.Context, key string)
	// Len returns the number of stored values.
	Len() int
}

// Loader computes the value of a missing key. Failed loads are not stored.
type Loader[T any] func(ctx context.Context, key string) (T, error)

// Option configures a single Get call.
type Option[T any] func(*Options[T])

// Options are the settings of a Get call.
type Options[T any] struct {
	Loader Loader[T]
}

// WithLoader sets the Loader called on a miss.
func WithLoader[T any](loader Loader[T]) Option[T] {
	return func(o *Options[T]) {
		o.Loader = loader
	}
}

// MakeOptions applies options over the defaults.
func MakeOptions[T any](options ...Option[T]) *Options[T] {
	o := &Options[T]{}
	for _, apply := range options {
		apply(o)
	}
	if o.Loader == nil {
		o.Loader = notFound[T]
	}
	return o
}

func notFound[T any](_ context.Context, key string) (T, error) {
	var zero T
	return zero, errdefs.Newf(errdefs.ErrNotFound, "key %q is not cached", key)
}

// NewNop returns a Cache storing nothing: every Get calls the loader.
func NewNop[T any]() Cache[T] {
	return nopCache[T]{}
}

type nopCache[T any] struct{}

func (nopCache[T]) Get(ctx context.Context, key string, options ...Option[T]) (T, error) {
	return MakeOptions(options...).Loader(ctx, key)
}

func (nopCache[T]) Set(context.Context, string, T) {}

func (nopCache[T]) Delete(context.Context, string) {}

func (nopCache[T]) Len() int { return 0 }
