package geodata

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/pariz/gountries"
	gocitiesjson "github.com/ringsaturn/go-cities.json"
)

// minAdmin1Share is the fraction of an admin1 group's cities that must lie
// inside a subdivision's extent for the group to be matched to it.
const minAdmin1Share = 0.6

// subdivisionBox is the bounding box and centroid of one subdivision
type subdivisionBox struct {
	code           string
	minLat, maxLat float64
	minLng, maxLng float64
	lat, lng       float64
}

func boxOf(code string, c gountries.Coordinates) subdivisionBox {
	return subdivisionBox{
		code:   code,
		minLat: c.MinLatitude,
		maxLat: c.MaxLatitude,
		minLng: c.MinLongitude,
		maxLng: c.MaxLongitude,
		lat:    c.Latitude,
		lng:    c.Longitude,
	}
}

func (b subdivisionBox) valid() bool {
	return b.maxLat > b.minLat && b.maxLng > b.minLng
}

func (b subdivisionBox) contains(lat, lng float64) bool {
	return b.valid() &&
		lat >= b.minLat && lat <= b.maxLat &&
		lng >= b.minLng && lng <= b.maxLng
}

func (b subdivisionBox) area() float64 {
	return (b.maxLat - b.minLat) * (b.maxLng - b.minLng)
}

// stateResolver maps GeoNames admin1 codes of one country onto ISO 3166-2
// subdivision codes.
//
// Each admin1 group is matched to the subdivision whose extent holds the
// largest share of the group's cities, ties broken by centroid distance.
// A subdivision is matched at most once. Cities whose group stays unmatched
// fall back to the smallest subdivision extent containing them.
type stateResolver struct {
	boxes  []subdivisionBox
	admin1 map[string]string
}

func newStateResolver(cities []*gocitiesjson.City, boxes []subdivisionBox) *stateResolver {
	r := &stateResolver{boxes: boxes, admin1: make(map[string]string)}
	if len(boxes) == 0 {
		return r
	}

	groups := make(map[string][]*gocitiesjson.City)
	for _, c := range cities {
		if c.Admin1 != "" {
			groups[c.Admin1] = append(groups[c.Admin1], c)
		}
	}

	type match struct {
		admin1, code string
		share, dist  float64
	}
	var matches []match
	for admin1, members := range groups {
		lat, lng := centroid(members)
		for _, b := range boxes {
			if !b.valid() {
				continue
			}
			inside := 0
			for _, c := range members {
				if b.contains(c.Lat, c.Lng) {
					inside++
				}
			}
			share := float64(inside) / float64(len(members))
			if share < minAdmin1Share {
				continue
			}
			matches = append(matches, match{
				admin1: admin1,
				code:   b.code,
				share:  share,
				dist:   math.Hypot(b.lat-lat, b.lng-lng),
			})
		}
	}

	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(b.share, a.share); c != 0 {
			return c
		}
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		if c := strings.Compare(a.admin1, b.admin1); c != 0 {
			return c
		}
		return strings.Compare(a.code, b.code)
	})

	used := make(map[string]bool)
	for _, m := range matches {
		if _, done := r.admin1[m.admin1]; done || used[m.code] {
			continue
		}
		r.admin1[m.admin1] = m.code
		used[m.code] = true
	}
	return r
}

// stateOf returns the subdivision code for a city, or "" when none fits
func (r *stateResolver) stateOf(admin1 string, lat, lng float64) string {
	if code, ok := r.admin1[admin1]; ok {
		return code
	}
	var (
		best     string
		bestArea float64
	)
	for _, b := range r.boxes {
		if !b.contains(lat, lng) {
			continue
		}
		if a := b.area(); best == "" || a < bestArea {
			best, bestArea = b.code, a
		}
	}
	return best
}

func centroid(cities []*gocitiesjson.City) (lat, lng float64) {
	for _, c := range cities {
		lat += c.Lat
		lng += c.Lng
	}
	n := float64(len(cities))
	return lat / n, lng / n
}
