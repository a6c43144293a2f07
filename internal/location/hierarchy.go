package location

import (
	"strings"

	"workplace-geo/internal/types"
)

// Hierarchy is the nested view backing cascading selectors
type Hierarchy struct {
	Country       *types.CountryOption `json:"country,omitempty"`
	States        []types.StateOption  `json:"states,omitempty"`
	SelectedState *types.StateOption   `json:"selectedState,omitempty"`
	Cities        []types.CityOption   `json:"cities,omitempty"`
}

// GetLocationHierarchy resolves the selected country by code or name, falling
// back to the first dataset country. States are listed when a country was asked
// for and cities when a state was asked for; both always belong to the country
// and state the hierarchy reports.
func (s *locationService) GetLocationHierarchy(countryCode, stateCode string) Hierarchy {
	countryCode = strings.TrimSpace(countryCode)
	stateCode = strings.TrimSpace(stateCode)

	var h Hierarchy
	if countryCode != "" {
		h.Country = s.findCountry(countryCode)
	}
	if h.Country == nil {
		if countries := s.GetCountries(""); len(countries) > 0 {
			h.Country = &countries[0]
		}
	}

	if countryCode == "" || h.Country == nil {
		return h
	}
	h.States = s.GetStates(h.Country.IsoCode, "")

	if stateCode == "" {
		return h
	}
	h.SelectedState = s.findState(h.Country.IsoCode, stateCode)
	if h.SelectedState != nil {
		h.Cities = s.GetCities(h.Country.IsoCode, h.SelectedState.IsoCode, "")
	}

	return h
}
