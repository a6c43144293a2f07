package postalcode

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workplace-geo/internal/types"
)

func TestKey(t *testing.T) {
	tests := []struct {
		country string
		city    string
		want    string
	}{
		{"IN", "Bengaluru", "IN-bengaluru"},
		{"in", "BENGALURU", "IN-bengaluru"},
		{" us ", " New York City ", "US-new york city"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.country, tt.city))
		})
	}
}

func TestEntry_Expired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := NewEntry(nil, "zippopotam", SearchParams{CountryCode: "IN", City: "Pune"}, now, time.Hour)

	assert.Equal(t, time.Hour, entry.TTL())
	assert.False(t, entry.Expired(now))
	assert.False(t, entry.Expired(now.Add(59*time.Minute)))
	assert.True(t, entry.Expired(now.Add(time.Hour)), "entry is stale exactly at its expiry")
	assert.True(t, entry.Expired(now.Add(2*time.Hour)))
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	t.Cleanup(func() { _ = cache.Close() })

	data := []types.PostalCodeOption{types.NewPostalCodeOption("411001", "Pune City", "zippopotam")}
	entry := NewEntry(data, "zippopotam", SearchParams{CountryCode: "IN", City: "Pune"}, time.Now(), time.Hour)

	_, ok, err := cache.Get(ctx, "IN-pune")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "IN-pune", entry))
	require.NoError(t, cache.Set(ctx, "IN-mumbai", entry))

	got, ok, err := cache.Get(ctx, "IN-pune")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, data, got.Data)
	assert.Equal(t, "zippopotam", got.Provider)

	n, err := cache.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := cache.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, cache.Delete(ctx, "IN-mumbai"))
	n, _ = cache.Len(ctx)
	assert.Equal(t, 1, n)

	require.NoError(t, cache.Clear(ctx))
	n, _ = cache.Len(ctx)
	assert.Equal(t, 0, n)
}

func TestMemoryCache_ItemTTL(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	t.Cleanup(func() { _ = cache.Close() })

	entry := NewEntry(nil, "zippopotam", SearchParams{}, time.Now(), 20*time.Millisecond)
	require.NoError(t, cache.Set(ctx, "k", entry))

	assert.Eventually(t, func() bool {
		_, ok, _ := cache.Get(ctx, "k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
