package geodata

import (
	"testing"

	gocitiesjson "github.com/ringsaturn/go-cities.json"
	"github.com/stretchr/testify/assert"
)

func testBox(code string, minLat, maxLat, minLng, maxLng float64) subdivisionBox {
	return subdivisionBox{
		code:   code,
		minLat: minLat, maxLat: maxLat,
		minLng: minLng, maxLng: maxLng,
		lat: (minLat + maxLat) / 2,
		lng: (minLng + maxLng) / 2,
	}
}

func TestStateResolver(t *testing.T) {
	boxes := []subdivisionBox{
		testBox("N", 10, 20, 0, 10),
		testBox("S", 0, 10, 0, 10),
		testBox("BIG", 0, 20, 0, 20),
		testBox("FLAT", 5, 5, 0, 10),
	}
	cities := []*gocitiesjson.City{
		{Name: "n1", Admin1: "01", Lat: 15, Lng: 5},
		{Name: "n2", Admin1: "01", Lat: 16, Lng: 4},
		{Name: "n3", Admin1: "01", Lat: 14, Lng: 6},
		{Name: "s1", Admin1: "02", Lat: 5, Lng: 5},
		{Name: "s2", Admin1: "02", Lat: 4, Lng: 4},
		{Name: "dup", Admin1: "03", Lat: 15, Lng: 5},
		{Name: "spread1", Admin1: "04", Lat: 5, Lng: 5},
		{Name: "spread2", Admin1: "04", Lat: 50, Lng: 50},
		{Name: "spread3", Admin1: "04", Lat: 60, Lng: 60},
	}
	r := newStateResolver(cities, boxes)

	tests := []struct {
		name     string
		admin1   string
		lat, lng float64
		want     string
	}{
		{name: "group inside the closest box", admin1: "01", lat: 15, lng: 5, want: "N"},
		{name: "second group", admin1: "02", lat: 5, lng: 5, want: "S"},
		{name: "a subdivision is matched once", admin1: "03", lat: 15, lng: 5, want: "BIG"},
		{name: "scattered group falls back to the smallest box", admin1: "04", lat: 5, lng: 5, want: "S"},
		{name: "scattered group outside every box", admin1: "04", lat: 50, lng: 50, want: ""},
		{name: "no admin1", admin1: "", lat: 12, lng: 15, want: "BIG"},
		{name: "unknown admin1 outside every box", admin1: "99", lat: -5, lng: -5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.stateOf(tt.admin1, tt.lat, tt.lng))
		})
	}
}

func TestStateResolver_NoSubdivisions(t *testing.T) {
	r := newStateResolver([]*gocitiesjson.City{{Name: "x", Admin1: "01", Lat: 1, Lng: 1}}, nil)
	assert.Empty(t, r.stateOf("01", 1, 1))
}

func TestSubdivisionBox(t *testing.T) {
	b := testBox("A", 0, 10, 0, 20)
	assert.True(t, b.contains(10, 20), "edges are inside")
	assert.False(t, b.contains(10.5, 5))
	assert.InDelta(t, 200.0, b.area(), 1e-9)

	flat := testBox("F", 5, 5, 0, 10)
	assert.False(t, flat.valid())
	assert.False(t, flat.contains(5, 5))
}

func TestSubdivisionCode(t *testing.T) {
	assert.Equal(t, "01", subdivisionCode("SG", "SG-01"))
	assert.Equal(t, "KA", subdivisionCode("IN", " ka "))
	assert.Equal(t, "C", subdivisionCode("EG", "C"))
}
