// Package timezone resolves IANA zone names for postal code coordinates.
package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"workplace-geo/internal/types"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(coords types.Coords) (string, error)
}

// Finder is the subset of tzf.F used here
type Finder interface {
	GetTimezoneName(lng float64, lat float64) string
}

type service struct {
	finder Finder
}

var (
	defaultFinder Finder
	finderErr     error
	finderOnce    sync.Once
)

// NewService returns a service over the shared tzf finder. The finder
// holds the polygon data in memory, so it is built at most once per process.
func NewService() (Service, error) {
	finderOnce.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			finderErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		defaultFinder = f
	})
	if finderErr != nil {
		return nil, finderErr
	}
	return NewServiceWithFinder(defaultFinder), nil
}

// NewServiceWithFinder wraps a custom finder
func NewServiceWithFinder(finder Finder) Service {
	return &service{finder: finder}
}

// GetTimezone returns names like "Asia/Kolkata" or "Europe/London"
func (s *service) GetTimezone(coords types.Coords) (string, error) {
	tz := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if tz == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", coords.Latitude, coords.Longitude)
	}
	return tz, nil
}
