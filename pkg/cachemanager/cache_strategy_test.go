package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/IsaacDSC/trendforge/internal/cfg"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	strategy := NewStrategy("trendforge", nil)

	testCases := []struct {
		name     string
		params   []string
		expected Key
	}{
		{
			name:     "single parameter",
			params:   []string{"ideas"},
			expected: Key("trendforge:ideas"),
		},
		{
			name:     "multiple parameters",
			params:   []string{"ideas", "abc", "v1"},
			expected: Key("trendforge:ideas:abc:v1"),
		},
		{
			name:     "empty parameters",
			params:   []string{},
			expected: Key("trendforge"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, strategy.Key(tc.params...))
		})
	}
}

func TestHash(t *testing.T) {
	type input struct {
		Goal string `json:"goal"`
	}

	a, err := Hash(input{Goal: "passive income"})
	require.NoError(t, err)
	b, err := Hash(input{Goal: "passive income"})
	require.NoError(t, err)
	c, err := Hash(input{Goal: "audience growth"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}

func TestGetDefaultTTL(t *testing.T) {
	cfg.SetConfig(cfg.Config{Cache: cfg.Cache{DefaultTTL: 2 * time.Hour}})
	assert.Equal(t, 2*time.Hour, Strategy{}.GetDefaultTTL())
}

func TestOnce_RedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	strategy := NewStrategy("trendforge", client)

	called := false
	var out string
	err := strategy.Once(context.Background(), strategy.Key("x"), &out, time.Minute, func(ctx context.Context) (any, error) {
		called = true
		return "value", nil
	})

	assert.True(t, called, "a failed read must fall through to the producer")
	assert.Error(t, err, "the write back still fails without redis")
}
