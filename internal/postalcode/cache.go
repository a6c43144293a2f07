package postalcode

import (
	"context"
	"strings"
	"time"

	"workplace-geo/internal/types"
)

// SearchParams records the query that produced a cache entry
type SearchParams struct {
	CountryCode string `json:"countryCode"`
	City        string `json:"city"`
}

// Entry is a cached provider result for one country/city pair
type Entry struct {
	Data         []types.PostalCodeOption `json:"data"`
	Timestamp    time.Time                `json:"timestamp"`
	Provider     string                   `json:"provider"`
	SearchParams SearchParams             `json:"searchParams"`
	ExpiresAt    time.Time                `json:"expiresAt"`
}

// NewEntry stamps data fetched at now with an expiry of now+ttl
func NewEntry(data []types.PostalCodeOption, provider string, params SearchParams, now time.Time, ttl time.Duration) Entry {
	return Entry{
		Data:         data,
		Timestamp:    now,
		Provider:     provider,
		SearchParams: params,
		ExpiresAt:    now.Add(ttl),
	}
}

// Expired reports whether the entry may no longer be served at now
func (e Entry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// TTL is the lifetime the entry was stored with
func (e Entry) TTL() time.Duration {
	return e.ExpiresAt.Sub(e.Timestamp)
}

// Key builds the canonical cache key so that logically identical
// queries share an entry regardless of case and padding.
func Key(countryCode, city string) string {
	return strings.ToUpper(strings.TrimSpace(countryCode)) + "-" + strings.ToLower(strings.TrimSpace(city))
}

// Cache stores postal code lookups keyed by Key
type Cache interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Entries(ctx context.Context) ([]Entry, error)
	Len(ctx context.Context) (int, error)
	Close() error
}
