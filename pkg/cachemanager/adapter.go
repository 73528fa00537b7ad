package cachemanager

import (
	"context"
	"time"
)

// Cache stores JSON-encoded results in redis under namespaced keys. The ideas endpoint uses it to
// serve a repeated idea dossier request, keyed by the hash of its input, without another LLM call.
//
//go:generate mockgen -source=adapter.go -destination=mock_adapter.go -package=cachemanager
type Cache interface {
	// Key joins params under the application prefix, e.g. Key("ideas", Hash(in)).
	Key(params ...string) Key
	// Hydrate runs fn, which fills value, and stores the result for ttl regardless of what is cached.
	Hydrate(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error
	// Once decodes the cached value into value, or runs fn and caches its result for ttl on a miss.
	// A failed fn caches nothing.
	Once(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error
	GetDefaultTTL() time.Duration
}
