package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_LoadsAndCaches(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	loads := 0
	load := func(dest *cachedThing) func() error {
		return func() error {
			loads++
			dest.ID = 1
			dest.Name = "first"
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, "thing:1", &first, time.Minute, load(&first)))
	assert.Equal(t, 1, loads)
	assert.Equal(t, "first", first.Name)
	assert.True(t, mr.Exists("thing:1"))

	// Second read must come from the cache, not the loader.
	var second cachedThing
	require.NoError(t, Aside(ctx, "thing:1", &second, time.Minute, load(&second)))
	assert.Equal(t, 1, loads)
	assert.Equal(t, "first", second.Name)
}

func TestAside_LoadErrorNotCached(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	sentinel := errors.New("row not found")
	var dest cachedThing
	err := Aside(ctx, "thing:2", &dest, time.Minute, func() error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.False(t, mr.Exists("thing:2"))
}

func TestAside_CorruptEntryFallsThrough(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("thing:3", "{not json"))

	var dest cachedThing
	err := Aside(ctx, "thing:3", &dest, time.Minute, func() error {
		dest.ID = 3
		dest.Name = "fresh"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", dest.Name)
}

func TestAside_NilClientDegradesToLoad(t *testing.T) {
	SetClient(nil)

	var dest cachedThing
	err := Aside(context.Background(), "thing:4", &dest, time.Minute, func() error {
		dest.Name = "direct"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "direct", dest.Name)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(UserKey(7), `{"id":7}`))
	InvalidateUser(ctx, 7)
	assert.False(t, mr.Exists(UserKey(7)))

	require.NoError(t, mr.Set(ListingKey(9), `{"id":9}`))
	InvalidateListing(ctx, 9)
	assert.False(t, mr.Exists(ListingKey(9)))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "user:7", UserKey(7))
	assert.Equal(t, "listing:9", ListingKey(9))
}
