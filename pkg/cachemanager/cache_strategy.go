package cachemanager

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IsaacDSC/trendforge/internal/cfg"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	redis "github.com/redis/go-redis/v9"
)

// Fn produces the value to be cached.
type Fn func(ctx context.Context) (any, error)

type Key string

func (k Key) String() string {
	return string(k)
}

// Strategy caches JSON encoded values in redis under an application prefix.
type Strategy struct {
	appPrefix string
	client    redis.Cmdable
}

var _ Cache = (*Strategy)(nil)

func NewStrategy(appPrefix string, client redis.Cmdable) *Strategy {
	return &Strategy{appPrefix: appPrefix, client: client}
}

// Key joins the app prefix and params with ":".
func (s Strategy) Key(params ...string) Key {
	params = append([]string{s.appPrefix}, params...)
	return Key(strings.Join(params, ":"))
}

// Hash returns a short stable digest of the JSON encoding of v, suitable as a key segment.
func Hash(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error marshalling key input: %w", err)
	}

	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:16]), nil
}

func (s Strategy) GetDefaultTTL() time.Duration {
	return cfg.Get().Cache.DefaultTTL
}

// Hydrate always executes fn and overwrites the cached value.
func (s Strategy) Hydrate(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error {
	v, err := fn(ctx)
	if err != nil {
		return fmt.Errorf("error executing function for key %s: %w", key.String(), err)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshalling value for key %s: %w", key.String(), err)
	}

	if err := s.client.Set(ctx, key.String(), b, ttl).Err(); err != nil {
		return fmt.Errorf("error setting value for key %s: %w", key.String(), err)
	}

	if err := json.Unmarshal(b, value); err != nil {
		return fmt.Errorf("error unmarshalling value for key %s: %w", key.String(), err)
	}

	return nil
}

// Once returns the cached value when present and only executes fn on a miss.
// A redis read failure degrades to executing fn instead of failing the request.
func (s Strategy) Once(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error {
	l := ctxlogger.GetLogger(ctx)

	b, err := s.client.Get(ctx, key.String()).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(b, value); err == nil {
			l.Debug("cache hit", "key", key.String())
			return nil
		}
		l.Warn("discarding undecodable cache entry", "key", key.String())
	case !errors.Is(err, redis.Nil):
		l.Warn("cache read failed", "key", key.String(), "error", err)
	}

	return s.Hydrate(ctx, key, value, ttl, fn)
}
