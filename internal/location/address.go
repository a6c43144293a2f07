package location

import (
	"strings"

	"workplace-geo/internal/types"
)

// Address is a structured postal address. Prefer passing one directly over
// parsing free text with ParseAddress.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

func (a Address) parts() []string {
	return []string{a.Street, a.City, a.State, a.Country, a.PostalCode}
}

// FormatAddress joins the non-empty components with ", "
func FormatAddress(a Address) string {
	var out []string
	for _, p := range a.parts() {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// ParseAddress reads a comma separated address in the fixed order street,
// city, state, country, postal code. The last four parts are taken from the
// end and anything before them is kept as the street. Addresses written in
// another order or with missing components are misread.
func ParseAddress(s string) Address {
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	var a Address
	switch n := len(parts); {
	case n == 0:
	case n <= 5:
		fields := []*string{&a.Street, &a.City, &a.State, &a.Country, &a.PostalCode}
		for i, p := range parts {
			*fields[i] = p
		}
	default:
		a.Street = strings.Join(parts[:n-4], ", ")
		a.City, a.State, a.Country, a.PostalCode = parts[n-4], parts[n-3], parts[n-2], parts[n-1]
	}
	return a
}

// ValidateLocationHierarchy checks that each supplied component belongs to its parent
func ValidateLocationHierarchy(svc Service, a Address) ValidationResponse {
	return svc.ValidateLocation(ValidationRequest{
		Country:    a.Country,
		State:      a.State,
		City:       a.City,
		PostalCode: a.PostalCode,
	})
}

// maxSuggestionCountries bounds the countries whose cities are scanned when no state matched
const maxSuggestionCountries = 3

// GenerateSuggestions returns country, then state, then city matches for a
// free text query, without duplicates and capped at limit
func GenerateSuggestions(svc Service, query string, limit int) []types.LocationOption {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return []types.LocationOption{}
	}

	out := make([]types.LocationOption, 0, limit)
	seen := map[string]bool{}
	add := func(o types.LocationOption) bool {
		key := o.Type + "|" + o.CountryCode + "|" + o.StateCode + "|" + strings.ToLower(o.Value)
		if !seen[key] {
			seen[key] = true
			out = append(out, o)
		}
		return len(out) < limit
	}

	countries := svc.GetCountries(query)
	for _, c := range countries {
		if !add(types.LocationOption{
			Type:        ResultCountry,
			Value:       c.Value,
			Label:       c.Label,
			IsoCode:     c.IsoCode,
			CountryCode: c.IsoCode,
		}) {
			return out
		}
	}

	// state names are matched across every country
	var cityCountries []string
	for _, c := range svc.GetCountries("") {
		for _, st := range svc.GetStates(c.IsoCode, query) {
			if !add(types.LocationOption{
				Type:        ResultState,
				Value:       st.Value,
				Label:       st.Label + ", " + c.Label,
				IsoCode:     st.IsoCode,
				CountryCode: st.CountryCode,
				StateCode:   st.IsoCode,
			}) {
				return out
			}
			if len(cityCountries) == 0 || cityCountries[len(cityCountries)-1] != c.IsoCode {
				cityCountries = append(cityCountries, c.IsoCode)
			}
		}
	}
	if len(cityCountries) == 0 {
		for i, c := range countries {
			if i == maxSuggestionCountries {
				break
			}
			cityCountries = append(cityCountries, c.IsoCode)
		}
	}

	for _, cc := range cityCountries {
		for _, city := range svc.GetCities(cc, "", query) {
			if city.IsOther() {
				continue
			}
			if !add(types.LocationOption{
				Type:        ResultCity,
				Value:       city.Value,
				Label:       city.Label,
				CountryCode: city.CountryCode,
				StateCode:   city.StateCode,
			}) {
				return out
			}
		}
	}
	return out
}

// GetDisplayText returns a short label for an address: "City, State",
// "City, Country" or "Country"
func GetDisplayText(a Address) string {
	city := strings.TrimSpace(a.City)
	state := strings.TrimSpace(a.State)
	country := strings.TrimSpace(a.Country)

	switch {
	case city != "" && state != "":
		return city + ", " + state
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	default:
		return country
	}
}
