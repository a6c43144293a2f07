// Package geodata holds the country/state/city reference dataset.
//
// Countries and their ISO 3166-2 subdivisions come from gountries, cities
// from the GeoNames export bundled in go-cities.json.
package geodata

import (
	"strings"
	"sync"
)

// Country is a dataset country record
type Country struct {
	Name      string `json:"name"`
	IsoCode   string `json:"isoCode"`
	PhoneCode string `json:"phonecode"`
	Currency  string `json:"currency"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// State is a dataset state/province record
type State struct {
	Name        string `json:"name"`
	IsoCode     string `json:"isoCode"`
	CountryCode string `json:"countryCode"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// City is a dataset city record. StateCode may be empty for city-states.
type City struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	StateCode   string `json:"stateCode"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// Dataset is an immutable, indexed view over the reference records
type Dataset struct {
	countries []Country
	states    []State
	cities    []City

	countryIdx map[string]int
	statesBy   map[string][]State
	citiesBy   map[string][]City
}

var (
	defaultDataset *Dataset
	loadErr        error
	loadOnce       sync.Once
)

// Load builds the world dataset once and returns the shared instance
func Load() (*Dataset, error) {
	loadOnce.Do(func() {
		countries, states, boxes, err := loadCountries()
		if err != nil {
			loadErr = err
			return
		}
		cities := loadCities(countries, boxes)
		defaultDataset = FromRecords(countries, states, cities)
	})
	return defaultDataset, loadErr
}

// MustLoad is Load for callers that cannot run without the dataset
func MustLoad() *Dataset {
	ds, err := Load()
	if err != nil {
		panic(err)
	}
	return ds
}

// FromRecords builds a dataset from raw records, keeping their order
func FromRecords(countries []Country, states []State, cities []City) *Dataset {
	ds := &Dataset{
		countries:  countries,
		states:     states,
		cities:     cities,
		countryIdx: make(map[string]int, len(countries)),
		statesBy:   make(map[string][]State),
		citiesBy:   make(map[string][]City),
	}
	for i, c := range countries {
		ds.countryIdx[normalize(c.IsoCode)] = i
	}
	for _, s := range states {
		cc := normalize(s.CountryCode)
		ds.statesBy[cc] = append(ds.statesBy[cc], s)
	}
	for _, c := range cities {
		cc := normalize(c.CountryCode)
		ds.citiesBy[cc] = append(ds.citiesBy[cc], c)
	}
	return ds
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// AllCountries returns every country in dataset order
func (d *Dataset) AllCountries() []Country {
	out := make([]Country, len(d.countries))
	copy(out, d.countries)
	return out
}

// CountryByCode finds a country by ISO 3166-1 alpha-2 code
func (d *Dataset) CountryByCode(countryCode string) (Country, bool) {
	i, ok := d.countryIdx[normalize(countryCode)]
	if !ok {
		return Country{}, false
	}
	return d.countries[i], true
}

// StatesOfCountry returns the states of a country in dataset order
func (d *Dataset) StatesOfCountry(countryCode string) []State {
	states := d.statesBy[normalize(countryCode)]
	out := make([]State, len(states))
	copy(out, states)
	return out
}

// StateByCode finds a state of a country by its subdivision code
func (d *Dataset) StateByCode(countryCode, stateCode string) (State, bool) {
	sc := normalize(stateCode)
	for _, s := range d.statesBy[normalize(countryCode)] {
		if normalize(s.IsoCode) == sc {
			return s, true
		}
	}
	return State{}, false
}

// CitiesOfCountry returns every city of a country regardless of state
func (d *Dataset) CitiesOfCountry(countryCode string) []City {
	cities := d.citiesBy[normalize(countryCode)]
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}

// CitiesOfState returns the cities of one state of a country
func (d *Dataset) CitiesOfState(countryCode, stateCode string) []City {
	sc := normalize(stateCode)
	var out []City
	for _, c := range d.citiesBy[normalize(countryCode)] {
		if normalize(c.StateCode) == sc {
			out = append(out, c)
		}
	}
	return out
}
