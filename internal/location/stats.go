package location

import (
	"context"
	"time"

	"workplace-geo/internal/config"
)

// CacheStats describes the postal code cache
type CacheStats struct {
	Size        int            `json:"size"`
	Hits        int64          `json:"hits"`
	Misses      int64          `json:"misses"`
	HitRate     float64        `json:"hitRate"`
	Providers   map[string]int `json:"providers"`
	OldestEntry *time.Time     `json:"oldestEntry,omitempty"`
	NewestEntry *time.Time     `json:"newestEntry,omitempty"`
}

// APIStats counts provider lookups. One lookup may span several providers
// and retries.
type APIStats struct {
	TotalRequests         int64   `json:"totalRequests"`
	SuccessfulRequests    int64   `json:"successfulRequests"`
	FailedRequests        int64   `json:"failedRequests"`
	AverageResponseTimeMs float64 `json:"averageResponseTimeMs"`
}

type ServiceStats struct {
	Cache         CacheStats            `json:"cache"`
	API           APIStats              `json:"api"`
	Config        config.LocationConfig `json:"config"`
	Providers     []string              `json:"providers"`
	UptimeSeconds float64               `json:"uptimeSeconds"`
}

func (s *locationService) GetCacheStats(ctx context.Context) CacheStats {
	stats := CacheStats{
		Hits:      s.cacheHits.Load(),
		Misses:    s.cacheMisses.Load(),
		Providers: map[string]int{},
	}
	if lookups := stats.Hits + stats.Misses; lookups > 0 {
		stats.HitRate = float64(stats.Hits) / float64(lookups)
	}

	entries, err := s.cache.Entries(ctx)
	if err != nil {
		s.logger.Warn("failed to read postal code cache", "error", err)
		return stats
	}

	stats.Size = len(entries)
	for _, e := range entries {
		stats.Providers[e.Provider]++
		ts := e.Timestamp
		if stats.OldestEntry == nil || ts.Before(*stats.OldestEntry) {
			stats.OldestEntry = &ts
		}
		if stats.NewestEntry == nil || ts.After(*stats.NewestEntry) {
			stats.NewestEntry = &ts
		}
	}
	return stats
}

func (s *locationService) GetServiceStats(ctx context.Context) ServiceStats {
	api := APIStats{
		TotalRequests:      s.totalRequests.Load(),
		SuccessfulRequests: s.successfulRequests.Load(),
		FailedRequests:     s.failedRequests.Load(),
	}
	if api.TotalRequests > 0 {
		avg := time.Duration(s.totalResponseNanos.Load() / api.TotalRequests)
		api.AverageResponseTimeMs = float64(avg.Microseconds()) / 1000.0
	}

	return ServiceStats{
		Cache:         s.GetCacheStats(ctx),
		API:           api,
		Config:        s.GetConfig(),
		Providers:     s.providerNames(),
		UptimeSeconds: s.now().Sub(s.startedAt).Seconds(),
	}
}
