package location

import (
	"context"

	"workplace-geo/internal/config"
	"workplace-geo/internal/postalcode"
	"workplace-geo/internal/types"
)

// Service answers which geographic values are valid at each level and which
// postal codes exist for a city
type Service interface {
	// GetCountries lists countries whose label or ISO code contains search
	GetCountries(search string) []types.CountryOption
	// GetStates lists the states of a country; empty when countryCode is empty
	GetStates(countryCode, search string) []types.StateOption
	// GetCities lists cities of a state, or of the whole country when stateCode is
	// empty, followed by the OTHER sentinel
	GetCities(countryCode, stateCode, search string) []types.CityOption
	// GetPostalCodes resolves the postal codes of a city through the cache and providers.
	// Failures are logged and yield an empty list.
	GetPostalCodes(ctx context.Context, countryCode, city, search string) []types.PostalCodeOption
	// GetPostalCodeDetails looks up one postal code without caching; nil on any failure
	GetPostalCodeDetails(ctx context.Context, countryCode, postalCode string) *types.PostalCodeOption
	ValidatePostalCode(countryCode, postalCode string) postalcode.ValidationResult
	ValidateLocation(req ValidationRequest) ValidationResponse
	SearchLocations(req SearchRequest) SearchResponse
	GetLocationHierarchy(countryCode, stateCode string) Hierarchy

	GetCacheStats(ctx context.Context) CacheStats
	GetServiceStats(ctx context.Context) ServiceStats
	UpdateConfig(patch ConfigPatch) (config.LocationConfig, error)
	GetConfig() config.LocationConfig
	ClearCache(ctx context.Context) error
	Close() error
}

// PostalCodeProvider is an upstream that maps cities and postal codes to places
type PostalCodeProvider interface {
	Name() string
	SearchByCity(ctx context.Context, countryCode, city string) ([]types.PostalCodeOption, error)
	LookupPostalCode(ctx context.Context, countryCode, postalCode string) ([]types.PostalCodeOption, error)
}
