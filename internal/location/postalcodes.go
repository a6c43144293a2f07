package location

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"

	"workplace-geo/internal/config"
	"workplace-geo/internal/metrics"
	"workplace-geo/internal/postalcode"
	"workplace-geo/internal/timezone"
	"workplace-geo/internal/types"
)

var errNoProviders = errors.New("no postal code providers configured")

func (s *locationService) GetPostalCodes(ctx context.Context, countryCode, city, search string) []types.PostalCodeOption {
	countryCode = strings.TrimSpace(countryCode)
	city = strings.TrimSpace(city)
	if countryCode == "" || city == "" || types.IsOtherCity(city) {
		return []types.PostalCodeOption{}
	}

	cfg := s.GetConfig()
	if !cfg.EnablePostalCodeLookup {
		return []types.PostalCodeOption{}
	}

	key := postalcode.Key(countryCode, city)
	if cfg.CacheEnabled {
		if entry, ok := s.cachedEntry(ctx, key); ok {
			return s.present(entry.Data, search, cfg)
		}
	}

	// The fetch is shared by every caller of the key, so it runs detached from
	// this caller's cancellation and is bounded by the retry budget instead.
	ch := s.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchBudget(cfg, len(s.providers)))
		defer cancel()
		return s.fetchPostalCodes(fetchCtx, key, countryCode, city, cfg)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		s.logger.Debug("stopped waiting for postal codes", "cache_key", key, "error", ctx.Err())
		return []types.PostalCodeOption{}
	}
	if res.Err != nil {
		s.logger.Warn("failed to fetch postal codes",
			"country_code", countryCode,
			"city", city,
			"error", res.Err,
		)
		return []types.PostalCodeOption{}
	}
	if res.Shared {
		s.logger.Debug("joined in-flight postal code fetch", "cache_key", key)
	}

	return s.present(res.Val.([]types.PostalCodeOption), search, cfg)
}

// fetchBudget is the longest a provider chain may take: every attempt at its
// request timeout plus the largest backoff wait between attempts.
func fetchBudget(cfg config.LocationConfig, providers int) time.Duration {
	retries := max(cfg.MaxRetries, 0)
	perProvider := time.Duration(retries+1) * cfg.RequestTimeout

	interval := float64(cfg.RetryDelay)
	for range retries {
		perProvider += time.Duration(interval * (1 + backoff.DefaultRandomizationFactor))
		interval = min(interval*backoff.DefaultMultiplier, float64(backoff.DefaultMaxInterval))
	}
	return time.Duration(max(providers, 1)) * perProvider
}

// cachedEntry returns a live entry, evicting it first if it has expired
func (s *locationService) cachedEntry(ctx context.Context, key string) (postalcode.Entry, bool) {
	entry, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("postal code cache read failed", "cache_key", key, "error", err)
	}
	if err != nil || !ok {
		s.cacheMisses.Add(1)
		s.metrics.CacheMiss()
		return postalcode.Entry{}, false
	}

	if entry.Expired(s.now()) {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to evict expired postal codes", "cache_key", key, "error", err)
		}
		s.logger.Debug("evicted expired postal codes", "cache_key", key, "expired_at", entry.ExpiresAt)
		s.metrics.CacheEviction()
		s.cacheMisses.Add(1)
		s.metrics.CacheMiss()
		return postalcode.Entry{}, false
	}

	s.cacheHits.Add(1)
	s.metrics.CacheHit()
	return entry, true
}

// fetchPostalCodes asks each provider in turn and caches the first non-empty answer
func (s *locationService) fetchPostalCodes(ctx context.Context, key, countryCode, city string, cfg config.LocationConfig) ([]types.PostalCodeOption, error) {
	data, provider, err := s.queryProviders(ctx, cfg, func(ctx context.Context, p PostalCodeProvider) ([]types.PostalCodeOption, error) {
		return p.SearchByCity(ctx, countryCode, city)
	})
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		entry := postalcode.NewEntry(data, provider, postalcode.SearchParams{
			CountryCode: countryCode,
			City:        city,
		}, s.now(), cfg.CacheExpiry)
		if err := s.cache.Set(ctx, key, entry); err != nil {
			s.logger.Warn("failed to cache postal codes", "cache_key", key, "error", err)
		}
	}

	s.logger.Debug("fetched postal codes",
		"country_code", countryCode,
		"city", city,
		"provider", provider,
		"count", len(data),
	)
	return data, nil
}

func (s *locationService) GetPostalCodeDetails(ctx context.Context, countryCode, postalCode string) *types.PostalCodeOption {
	countryCode = strings.TrimSpace(countryCode)
	postalCode = strings.TrimSpace(postalCode)
	if countryCode == "" || postalCode == "" {
		return nil
	}

	cfg := s.GetConfig()
	if !cfg.EnablePostalCodeLookup {
		return nil
	}

	data, _, err := s.queryProviders(ctx, cfg, func(ctx context.Context, p PostalCodeProvider) ([]types.PostalCodeOption, error) {
		return p.LookupPostalCode(ctx, countryCode, postalCode)
	})
	if err != nil {
		s.logger.Warn("failed to look up postal code",
			"country_code", countryCode,
			"postal_code", postalCode,
			"error", err,
		)
		return nil
	}

	first := s.present(data[:1], "", cfg)[0]
	return &first
}

type providerCall func(ctx context.Context, p PostalCodeProvider) ([]types.PostalCodeOption, error)

// queryProviders runs call against the providers in order and returns the
// first non-empty result with the name of the provider that produced it.
// It counts as one API request in the service statistics.
func (s *locationService) queryProviders(ctx context.Context, cfg config.LocationConfig, call providerCall) ([]types.PostalCodeOption, string, error) {
	start := time.Now()
	s.totalRequests.Add(1)
	defer func() {
		s.totalResponseNanos.Add(int64(time.Since(start)))
	}()

	lastErr := errNoProviders
	for _, p := range s.providers {
		data, err := s.callWithRetry(ctx, cfg, p, call)
		if err == nil && len(data) == 0 {
			err = ErrNotFound
		}
		if err != nil {
			s.logger.Debug("postal code provider failed", "provider", p.Name(), "error", err)
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		s.successfulRequests.Add(1)
		return s.withTimezones(data, cfg), p.Name(), nil
	}

	s.failedRequests.Add(1)
	return nil, "", lastErr
}

// callWithRetry bounds each attempt by the request timeout and retries
// transient failures with exponential backoff. Not-found answers are final.
func (s *locationService) callWithRetry(ctx context.Context, cfg config.LocationConfig, p PostalCodeProvider, call providerCall) ([]types.PostalCodeOption, error) {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = cfg.RetryDelay
	eb.MaxElapsedTime = 0

	var b backoff.BackOff = backoff.WithMaxRetries(eb, uint64(max(cfg.MaxRetries, 0)))
	b = backoff.WithContext(b, ctx)

	attempt := 0
	return backoff.RetryWithData(func() ([]types.PostalCodeOption, error) {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()

		start := time.Now()
		data, err := call(callCtx, p)
		elapsed := time.Since(start)

		switch {
		case err == nil:
			s.metrics.ObserveProviderRequest(p.Name(), metrics.OutcomeSuccess, elapsed)
			return data, nil
		case errors.Is(err, ErrNotFound):
			s.metrics.ObserveProviderRequest(p.Name(), metrics.OutcomeNotFound, elapsed)
			return nil, backoff.Permanent(err)
		default:
			s.metrics.ObserveProviderRequest(p.Name(), metrics.OutcomeError, elapsed)
			s.logger.Debug("postal code provider attempt failed",
				"provider", p.Name(),
				"attempt", attempt,
				"error", err,
			)
			return nil, err
		}
	}, b)
}

// withTimezones annotates options that carry coordinates with their IANA zone
func (s *locationService) withTimezones(data []types.PostalCodeOption, cfg config.LocationConfig) []types.PostalCodeOption {
	if !cfg.EnableTimezoneLookup {
		return data
	}
	tz := s.timezoneService()
	if tz == nil {
		return data
	}
	for i := range data {
		if data[i].Latitude == nil || data[i].Longitude == nil || data[i].Timezone != "" {
			continue
		}
		name, err := tz.GetTimezone(types.NewCoords(*data[i].Latitude, *data[i].Longitude))
		if err != nil {
			continue
		}
		data[i].Timezone = name
	}
	return data
}

func (s *locationService) timezoneService() timezone.Service {
	s.tzOnce.Do(func() {
		if s.tz != nil {
			return
		}
		svc, err := timezone.NewService()
		if err != nil {
			s.logger.Warn("timezone lookup unavailable", "error", err)
			return
		}
		s.tz = svc
	})
	return s.tz
}

// present filters options by search and applies the coordinate toggle. It
// always returns a fresh slice so cached data is never handed out.
func (s *locationService) present(data []types.PostalCodeOption, search string, cfg config.LocationConfig) []types.PostalCodeOption {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]types.PostalCodeOption, 0, len(data))
	for _, opt := range data {
		if term != "" &&
			!strings.HasPrefix(strings.ToLower(opt.Value), term) &&
			!strings.Contains(strings.ToLower(opt.PlaceName), term) {
			continue
		}
		if !cfg.EnableCoordinates {
			opt.Latitude, opt.Longitude = nil, nil
		}
		out = append(out, opt)
	}
	return out
}
