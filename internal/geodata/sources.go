package geodata

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/pariz/gountries"
	gocitiesjson "github.com/ringsaturn/go-cities.json"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// loadCountries reads ISO 3166-1 countries and their ISO 3166-2
// subdivisions, sorted by name. Subdivision extents are keyed by country.
func loadCountries() ([]Country, []State, map[string][]subdivisionBox, error) {
	query := gountries.New()
	all := query.FindAllCountries()
	if len(all) == 0 {
		return nil, nil, nil, errors.New("country data is empty")
	}

	countries := make([]Country, 0, len(all))
	var states []State
	boxes := make(map[string][]subdivisionBox)
	for _, c := range all {
		if c.Alpha2 == "" || c.Name.Common == "" {
			continue
		}
		countries = append(countries, Country{
			Name:      c.Name.Common,
			IsoCode:   c.Alpha2,
			PhoneCode: first(c.CallingCodes),
			Currency:  first(c.Currencies),
			Latitude:  formatCoord(c.Coordinates.Latitude),
			Longitude: formatCoord(c.Coordinates.Longitude),
		})
		for _, sd := range c.SubDivisions() {
			code := subdivisionCode(c.Alpha2, sd.Code)
			if code == "" || sd.Name == "" {
				continue
			}
			states = append(states, State{
				Name:        sd.Name,
				IsoCode:     code,
				CountryCode: c.Alpha2,
				Latitude:    formatCoord(sd.Coordinates.Latitude),
				Longitude:   formatCoord(sd.Coordinates.Longitude),
			})
			boxes[c.Alpha2] = append(boxes[c.Alpha2], boxOf(code, sd.Coordinates))
		}
	}

	col := collate.New(language.English, collate.IgnoreCase)
	slices.SortFunc(countries, func(a, b Country) int {
		return col.CompareString(a.Name, b.Name)
	})
	slices.SortFunc(states, func(a, b State) int {
		if c := strings.Compare(a.CountryCode, b.CountryCode); c != 0 {
			return c
		}
		return col.CompareString(a.Name, b.Name)
	})
	return countries, states, boxes, nil
}

// loadCities reads the GeoNames city list and assigns each city the
// subdivision of its country that it falls in. Cities of countries
// missing from the country list are dropped.
func loadCities(countries []Country, boxes map[string][]subdivisionBox) []City {
	known := make(map[string]bool, len(countries))
	for _, c := range countries {
		known[c.IsoCode] = true
	}

	byCountry := make(map[string][]*gocitiesjson.City)
	for c := range gocitiesjson.All(false) {
		if !known[c.Country] || c.Name == "" {
			continue
		}
		byCountry[c.Country] = append(byCountry[c.Country], c)
	}

	codes := make([]string, 0, len(byCountry))
	for cc := range byCountry {
		codes = append(codes, cc)
	}
	slices.Sort(codes)

	var cities []City
	for _, cc := range codes {
		members := byCountry[cc]
		resolver := newStateResolver(members, boxes[cc])
		for _, c := range members {
			cities = append(cities, City{
				Name:        c.Name,
				CountryCode: cc,
				StateCode:   resolver.stateOf(c.Admin1, c.Lat, c.Lng),
				Latitude:    formatCoord(c.Lat),
				Longitude:   formatCoord(c.Lng),
			})
		}
	}
	return cities
}

// subdivisionCode strips the country prefix some subdivision codes carry
func subdivisionCode(countryCode, code string) string {
	code = normalize(code)
	return strings.TrimPrefix(code, countryCode+"-")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
