package ttlcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/singleflight"
)

// Entry is a cached value and the instant it stops being served.
type Entry[V any] struct {
	Value     V
	ExpiresAt time.Time
}

// Producer computes the value for a key on miss or refresh.
type Producer[V any] func(ctx context.Context) (V, error)

// Cache maps keys to values that expire after a TTL.
// Expired entries are never swept; they are ignored on read and overwritten on the next Set.
// Concurrent misses and refreshes for a key share a single Producer call.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]Entry[V]

	ttl   time.Duration
	clock clock.Clock
	group singleflight.Group
}

type Option[K comparable, V any] func(*Cache[K, V])

func WithClock[K comparable, V any](c clock.Clock) Option[K, V] {
	return func(cache *Cache[K, V]) {
		cache.clock = c
	}
}

// New returns a cache whose Refresh and GetOrProduce store values for ttl.
func New[K comparable, V any](ttl time.Duration, opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		entries: make(map[K]Entry[V]),
		ttl:     ttl,
		clock:   clock.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache[K, V]) TTL() time.Duration {
	return c.ttl
}

// Get returns the value for key if it has not expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.GetEntry(key)
	return e.Value, ok
}

// GetEntry is Get that also exposes the expiry.
func (c *Cache[K, V]) GetEntry(key K) (Entry[V], bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.clock.Now().Before(e.ExpiresAt) {
		return Entry[V]{}, false
	}

	return e, true
}

// Set overwrites key with a new entry expiring ttl from now.
func (c *Cache[K, V]) Set(key K, value V, ttl time.Duration) Entry[V] {
	e := Entry[V]{Value: value, ExpiresAt: c.clock.Now().Add(ttl)}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()

	return e
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[K]Entry[V])
	c.mu.Unlock()
}

// Len counts stored entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetOrProduce returns the live entry for key or runs produce once for all concurrent callers
// and stores its result. The bool reports whether the value came from the cache.
// A failed produce stores nothing. A miss that overlaps a Refresh of the same key waits for it.
func (c *Cache[K, V]) GetOrProduce(ctx context.Context, key K, produce Producer[V]) (Entry[V], bool, error) {
	if e, ok := c.GetEntry(key); ok {
		return e, true, nil
	}

	res, err := c.do(ctx, key, func(ctx context.Context) (flight[V], error) {
		// another flight may have filled the key while this one waited for the group
		if e, ok := c.GetEntry(key); ok {
			return flight[V]{entry: e}, nil
		}
		return c.produceAndSet(ctx, key, produce)
	})

	return res.entry, false, err
}

// Refresh runs produce regardless of the current entry and stores the result.
// Misses and refreshes of one key share a flight, so a refresh that joins a miss takes the miss's
// producer result; it never returns a value that was only read back from the cache.
func (c *Cache[K, V]) Refresh(ctx context.Context, key K, produce Producer[V]) (Entry[V], error) {
	for {
		res, err := c.do(ctx, key, func(ctx context.Context) (flight[V], error) {
			return c.produceAndSet(ctx, key, produce)
		})
		if err != nil {
			return Entry[V]{}, err
		}
		if res.produced {
			return res.entry, nil
		}
	}
}

// flight is the shared outcome of one singleflight call; produced is false when the call only
// found a live entry.
type flight[V any] struct {
	entry    Entry[V]
	produced bool
}

func (c *Cache[K, V]) produceAndSet(ctx context.Context, key K, produce Producer[V]) (flight[V], error) {
	v, err := produce(ctx)
	if err != nil {
		return flight[V]{}, err
	}

	return flight[V]{entry: c.Set(key, v, c.ttl), produced: true}, nil
}

func (c *Cache[K, V]) do(ctx context.Context, key K, fn func(ctx context.Context) (flight[V], error)) (flight[V], error) {
	ch := c.group.DoChan(fmt.Sprint(key), func() (any, error) {
		// detached so one caller's cancellation does not fail every waiter
		return fn(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return flight[V]{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return flight[V]{}, res.Err
		}
		return res.Val.(flight[V]), nil
	}
}
