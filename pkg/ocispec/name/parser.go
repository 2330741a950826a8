package name

import (
	"context"

	"github.com/wuxler/imgref/pkg/util/xcache"
)

// Parser parses image references. Implementations are safe for concurrent
// use.
type Parser interface {
	// Parse parses s as an image reference.
	Parse(ctx context.Context, s string) (Image, error)
}

// NewParser returns a Parser applying opts to every reference.
func NewParser(opts ...Option) Parser {
	return NewCachingParser(xcache.NewNop[Image](), opts...)
}

// NewCachingParser returns a Parser memoizing successfully parsed references
// in cache. Failures are never cached.
func NewCachingParser(cache xcache.Cache[Image], opts ...Option) Parser {
	return &cachingParser{cache: cache, opts: opts}
}

type cachingParser struct {
	cache xcache.Cache[Image]
	opts  []Option
}

// Parse implements Parser.
func (p *cachingParser) Parse(ctx context.Context, s string) (Image, error) {
	return p.cache.Get(ctx, s, xcache.WithLoader(func(_ context.Context, key string) (Image, error) {
		return Parse(key, p.opts...)
	}))
}
