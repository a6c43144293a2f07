package location

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"workplace-geo/internal/config"
	"workplace-geo/internal/geodata"
	"workplace-geo/internal/metrics"
	"workplace-geo/internal/postalcode"
	"workplace-geo/internal/providers/geonames"
	"workplace-geo/internal/providers/zippopotam"
	"workplace-geo/internal/timezone"
	"workplace-geo/internal/types"
)

// locationService implements the Service interface
type locationService struct {
	dataset   *geodata.Dataset
	cache     postalcode.Cache
	providers []PostalCodeProvider
	metrics   *metrics.Resolver
	logger    *slog.Logger
	now       func() time.Time

	mu  sync.RWMutex
	cfg config.LocationConfig

	tz     timezone.Service
	tzOnce sync.Once

	// collapses concurrent misses for the same cache key
	group singleflight.Group

	cacheHits          atomic.Int64
	cacheMisses        atomic.Int64
	totalRequests      atomic.Int64
	successfulRequests atomic.Int64
	failedRequests     atomic.Int64
	totalResponseNanos atomic.Int64

	startedAt time.Time
	closers   []func() error
}

// Option customises a service built by NewLocationServiceWithProviders
type Option func(*locationService)

// WithClock replaces time.Now, e.g. to step past cache expiry in tests
func WithClock(now func() time.Time) Option {
	return func(s *locationService) {
		s.now = now
	}
}

// WithMetrics records resolver metrics into m
func WithMetrics(m *metrics.Resolver) Option {
	return func(s *locationService) {
		s.metrics = m
	}
}

// WithTimezoneService replaces the tzf-backed timezone lookup
func WithTimezoneService(tz timezone.Service) Option {
	return func(s *locationService) {
		s.tz = tz
	}
}

// NewLocationService creates a location service with real provider clients and
// the cache backend selected by cfg
func NewLocationService(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (Service, error) {
	dataset, err := geodata.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load geographic dataset: %w", err)
	}

	var (
		cache   postalcode.Cache
		closers []func() error
	)
	switch cfg.Cache.Backend {
	case "redis":
		client, err := postalcode.NewRedisClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect postal code cache: %w", err)
		}
		cache = postalcode.NewRedisCache(client, postalcode.WithKeyPrefix(cfg.Cache.KeyPrefix))
		closers = append(closers, client.Close)
	default:
		cache = postalcode.NewMemoryCache()
	}

	providers := []PostalCodeProvider{
		NewZippopotamProvider(zippopotam.NewClient(logger,
			zippopotam.WithBaseURL(cfg.Providers.ZippopotamBaseURL),
			zippopotam.WithTimeout(cfg.Location.RequestTimeout),
		)),
	}
	if cfg.Providers.GeonamesUsername != "" {
		providers = append(providers, NewGeonamesProvider(geonames.NewClient(logger, cfg.Providers.GeonamesUsername,
			geonames.WithBaseURL(cfg.Providers.GeonamesBaseURL),
			geonames.WithTimeout(cfg.Location.RequestTimeout),
			geonames.WithMaxRows(cfg.Providers.MaxRows),
		)))
	}

	svc := newLocationService(logger, cfg.Location, dataset, cache, providers, opts...)
	svc.closers = append(svc.closers, closers...)

	logger.Info("location service initialized",
		"cache_backend", cfg.Cache.Backend,
		"providers", svc.providerNames(),
	)

	return svc, nil
}

// NewLocationServiceWithProviders creates a location service with custom collaborators.
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	logger *slog.Logger,
	cfg config.LocationConfig,
	dataset *geodata.Dataset,
	cache postalcode.Cache,
	providers []PostalCodeProvider,
	opts ...Option,
) Service {
	return newLocationService(logger, cfg, dataset, cache, providers, opts...)
}

func newLocationService(
	logger *slog.Logger,
	cfg config.LocationConfig,
	dataset *geodata.Dataset,
	cache postalcode.Cache,
	providers []PostalCodeProvider,
	opts ...Option,
) *locationService {
	s := &locationService{
		dataset:   dataset,
		cache:     cache,
		providers: providers,
		metrics:   metrics.NewResolver(nil),
		logger:    logger.With("component", "location-service"),
		now:       time.Now,
		cfg:       cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.now()
	return s
}

func (s *locationService) providerNames() []string {
	names := make([]string, 0, len(s.providers))
	for _, p := range s.providers {
		names = append(names, p.Name())
	}
	return names
}

// containsFold reports whether any field contains term, ignoring case.
// An empty term matches everything.
func containsFold(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func (s *locationService) GetCountries(search string) []types.CountryOption {
	countries := s.dataset.AllCountries()
	out := make([]types.CountryOption, 0, len(countries))
	for _, c := range countries {
		if !containsFold(search, c.Name, c.IsoCode) {
			continue
		}
		out = append(out, types.CountryOption{
			Value:   c.Name,
			Label:   c.Name,
			IsoCode: c.IsoCode,
		})
	}
	return out
}

func (s *locationService) GetStates(countryCode, search string) []types.StateOption {
	if strings.TrimSpace(countryCode) == "" {
		return []types.StateOption{}
	}

	states := s.dataset.StatesOfCountry(countryCode)
	out := make([]types.StateOption, 0, len(states))
	for _, st := range states {
		if !containsFold(search, st.Name, st.IsoCode) {
			continue
		}
		out = append(out, types.StateOption{
			Value:       st.Name,
			Label:       st.Name,
			IsoCode:     st.IsoCode,
			CountryCode: st.CountryCode,
		})
	}
	return out
}

func (s *locationService) GetCities(countryCode, stateCode, search string) []types.CityOption {
	countryCode = strings.TrimSpace(countryCode)
	stateCode = strings.TrimSpace(stateCode)
	if countryCode == "" {
		return []types.CityOption{}
	}

	var cities []geodata.City
	if stateCode != "" {
		cities = s.dataset.CitiesOfState(countryCode, stateCode)
	} else {
		cities = s.dataset.CitiesOfCountry(countryCode)
	}

	withCoords := s.GetConfig().EnableCoordinates
	out := make([]types.CityOption, 0, len(cities)+1)
	for _, c := range cities {
		if !containsFold(search, c.Name) {
			continue
		}
		opt := types.CityOption{
			Value:       c.Name,
			Label:       c.Name,
			StateCode:   c.StateCode,
			CountryCode: c.CountryCode,
		}
		if withCoords {
			if coords, err := types.ParseCoords(c.Latitude, c.Longitude); err == nil {
				opt.Latitude, opt.Longitude = coords.Pointers()
			}
		}
		out = append(out, opt)
	}

	// The sentinel survives any filter so forms can always offer it.
	return append(out, types.NewOtherCity(strings.ToUpper(countryCode), stateCode))
}

func (s *locationService) GetConfig() config.LocationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// ConfigPatch carries the settings to change; nil fields are left alone
type ConfigPatch struct {
	CacheEnabled           *bool          `json:"cacheEnabled,omitempty"`
	CacheExpiry            *time.Duration `json:"cacheExpiry,omitempty" swaggertype:"integer"`
	RequestTimeout         *time.Duration `json:"requestTimeout,omitempty" swaggertype:"integer"`
	MaxRetries             *int           `json:"maxRetries,omitempty"`
	RetryDelay             *time.Duration `json:"retryDelay,omitempty" swaggertype:"integer"`
	EnablePostalCodeLookup *bool          `json:"enablePostalCodeLookup,omitempty"`
	EnableCoordinates      *bool          `json:"enableCoordinates,omitempty"`
	EnableTimezoneLookup   *bool          `json:"enableTimezoneLookup,omitempty"`
}

func (p ConfigPatch) apply(cfg config.LocationConfig) config.LocationConfig {
	if p.CacheEnabled != nil {
		cfg.CacheEnabled = *p.CacheEnabled
	}
	if p.CacheExpiry != nil {
		cfg.CacheExpiry = *p.CacheExpiry
	}
	if p.RequestTimeout != nil {
		cfg.RequestTimeout = *p.RequestTimeout
	}
	if p.MaxRetries != nil {
		cfg.MaxRetries = *p.MaxRetries
	}
	if p.RetryDelay != nil {
		cfg.RetryDelay = *p.RetryDelay
	}
	if p.EnablePostalCodeLookup != nil {
		cfg.EnablePostalCodeLookup = *p.EnablePostalCodeLookup
	}
	if p.EnableCoordinates != nil {
		cfg.EnableCoordinates = *p.EnableCoordinates
	}
	if p.EnableTimezoneLookup != nil {
		cfg.EnableTimezoneLookup = *p.EnableTimezoneLookup
	}
	return cfg
}

// UpdateConfig merges patch into the current settings. The update is rejected
// as a whole when the result does not validate.
func (s *locationService) UpdateConfig(patch ConfigPatch) (config.LocationConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := patch.apply(s.cfg)
	if err := next.Validate(); err != nil {
		return s.cfg, err
	}
	s.cfg = next

	s.logger.Info("location config updated",
		"cache_enabled", next.CacheEnabled,
		"cache_expiry", next.CacheExpiry,
		"request_timeout", next.RequestTimeout,
		"max_retries", next.MaxRetries,
	)
	return next, nil
}

// ClearCache drops every cached entry and resets the hit/miss counters
func (s *locationService) ClearCache(ctx context.Context) error {
	if err := s.cache.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear postal code cache: %w", err)
	}
	s.cacheHits.Store(0)
	s.cacheMisses.Store(0)
	s.logger.Info("postal code cache cleared")
	return nil
}

// Close clears an in-process cache and releases the backend. A Redis cache
// is shared with other replicas and is left intact.
func (s *locationService) Close() error {
	if _, shared := s.cache.(*postalcode.RedisCache); !shared {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.ClearCache(ctx); err != nil {
			s.logger.Warn("failed to clear cache on close", "error", err)
		}
	}
	if err := s.cache.Close(); err != nil {
		return fmt.Errorf("failed to close cache: %w", err)
	}
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			return err
		}
	}
	return nil
}
