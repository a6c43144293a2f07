package postalcode

import (
	"context"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryCache is an in-process Cache. Items carry their own TTL so the
// backing store drops them even if they are never read again.
type MemoryCache struct {
	cache *ttlcache.Cache[string, Entry]
}

// NewMemoryCache creates a MemoryCache and starts its expiry loop
func NewMemoryCache() *MemoryCache {
	cache := ttlcache.New[string, Entry](
		ttlcache.WithDisableTouchOnHit[string, Entry](),
	)
	go cache.Start()
	return &MemoryCache{cache: cache}
}

func (m *MemoryCache) Get(_ context.Context, key string) (Entry, bool, error) {
	item := m.cache.Get(key)
	if item == nil {
		return Entry{}, false, nil
	}
	return item.Value(), true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, entry Entry) error {
	ttl := entry.TTL()
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	m.cache.Set(key, entry, ttl)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

func (m *MemoryCache) Clear(_ context.Context) error {
	m.cache.DeleteAll()
	return nil
}

func (m *MemoryCache) Entries(_ context.Context) ([]Entry, error) {
	items := m.cache.Items()
	out := make([]Entry, 0, len(items))
	for _, item := range items {
		out = append(out, item.Value())
	}
	return out, nil
}

func (m *MemoryCache) Len(_ context.Context) (int, error) {
	return m.cache.Len(), nil
}

// Close stops the expiry loop
func (m *MemoryCache) Close() error {
	m.cache.Stop()
	return nil
}
