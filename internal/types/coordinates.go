package types

import (
	"fmt"
	"strconv"
	"strings"
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// ParseCoords parses the string coordinates shipped by the dataset and upstream providers
func ParseCoords(latitude, longitude string) (Coords, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latitude), 64)
	if err != nil {
		return Coords{}, fmt.Errorf("invalid latitude %q: %w", latitude, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(longitude), 64)
	if err != nil {
		return Coords{}, fmt.Errorf("invalid longitude %q: %w", longitude, err)
	}
	if lat < -90 || lat > 90 {
		return Coords{}, fmt.Errorf("latitude %f out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return Coords{}, fmt.Errorf("longitude %f out of range", lon)
	}
	return NewCoords(lat, lon), nil
}

// Pointers returns the coordinates as optional fields for option types
func (c Coords) Pointers() (*float64, *float64) {
	lat, lon := c.Latitude, c.Longitude
	return &lat, &lon
}
