package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

// unreachable points at a closed port so every redis call fails fast.
func unreachable() *Cache {
	return &Cache{RDB: redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})}
}

func TestGetOrLoadJSON_FallsThroughWhenRedisDown(t *testing.T) {
	c := unreachable()
	t.Cleanup(func() { _ = c.Close() })

	calls := 0
	got, err := GetOrLoadJSON(c, context.Background(), "k", time.Minute, func(context.Context) (*item, error) {
		calls++
		return &item{Name: "ada"}, nil
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada", got.Name)
	assert.Equal(t, 1, calls)
}

func TestGetOrLoadJSON_NilAndError(t *testing.T) {
	c := unreachable()
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	got, err := GetOrLoadJSON(c, ctx, "missing", time.Minute, func(context.Context) (*item, error) { return nil, nil })
	require.NoError(t, err)
	assert.Nil(t, got)

	boom := errors.New("boom")
	_, err = GetOrLoadJSON(c, ctx, "err", time.Minute, func(context.Context) (*item, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}
