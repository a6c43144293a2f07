package location

import (
	"fmt"
	"strings"

	"workplace-geo/internal/postalcode"
	"workplace-geo/internal/types"
)

// ValidationRequest names the location fields to check; empty fields are skipped.
// Country and State accept either an ISO code or a display name.
type ValidationRequest struct {
	Country    string `json:"country,omitempty" example:"IN"`
	State      string `json:"state,omitempty" example:"KA"`
	City       string `json:"city,omitempty" example:"Bengaluru"`
	PostalCode string `json:"postalCode,omitempty" example:"560001"`
}

// FieldValidation is the verdict for one field
type FieldValidation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Result  string `json:"result,omitempty"` // postal code only
}

// ValidationResponse aggregates the per-field verdicts
type ValidationResponse struct {
	IsValid bool                       `json:"isValid"`
	Errors  []string                   `json:"errors"`
	Fields  map[string]FieldValidation `json:"fields"`
}

func (s *locationService) ValidatePostalCode(countryCode, postalCode string) postalcode.ValidationResult {
	return postalcode.Validate(countryCode, postalCode)
}

func (s *locationService) ValidateLocation(req ValidationRequest) ValidationResponse {
	resp := ValidationResponse{
		IsValid: true,
		Errors:  []string{},
		Fields:  map[string]FieldValidation{},
	}
	fail := func(field, msg string) {
		resp.IsValid = false
		resp.Errors = append(resp.Errors, msg)
		resp.Fields[field] = FieldValidation{Valid: false, Message: msg}
	}

	var country *types.CountryOption
	if v := strings.TrimSpace(req.Country); v != "" {
		country = s.findCountry(v)
		if country == nil {
			fail("country", fmt.Sprintf("Invalid country: %s", v))
		} else {
			resp.Fields["country"] = FieldValidation{Valid: true}
		}
	}

	var state *types.StateOption
	if v := strings.TrimSpace(req.State); v != "" {
		switch {
		case country == nil:
			fail("state", fmt.Sprintf("Cannot validate state %s without a valid country", v))
		default:
			state = s.findState(country.IsoCode, v)
			if state == nil {
				fail("state", fmt.Sprintf("Invalid state %s for country %s", v, country.Label))
			} else {
				resp.Fields["state"] = FieldValidation{Valid: true}
			}
		}
	}

	if v := strings.TrimSpace(req.City); v != "" {
		switch {
		case types.IsOtherCity(v):
			resp.Fields["city"] = FieldValidation{Valid: true}
		case country == nil:
			fail("city", fmt.Sprintf("Cannot validate city %s without a valid country", v))
		default:
			stateCode := ""
			if state != nil {
				stateCode = state.IsoCode
			}
			if s.hasCity(country.IsoCode, stateCode, v) {
				resp.Fields["city"] = FieldValidation{Valid: true}
			} else {
				fail("city", fmt.Sprintf("Invalid city %s for %s", v, placeLabel(country, state)))
			}
		}
	}

	if v := strings.TrimSpace(req.PostalCode); v != "" {
		countryCode := strings.TrimSpace(req.Country)
		if country != nil {
			countryCode = country.IsoCode
		}
		result := s.ValidatePostalCode(countryCode, v)
		if result == postalcode.Invalid {
			fail("postalCode", fmt.Sprintf("Invalid postal code format for %s: %s", countryCode, v))
			f := resp.Fields["postalCode"]
			f.Result = string(result)
			resp.Fields["postalCode"] = f
		} else {
			resp.Fields["postalCode"] = FieldValidation{Valid: true, Result: string(result)}
		}
	}

	return resp
}

func placeLabel(country *types.CountryOption, state *types.StateOption) string {
	if state != nil {
		return state.Label + ", " + country.Label
	}
	return country.Label
}

// findCountry matches an ISO code or a display name, ignoring case
func (s *locationService) findCountry(v string) *types.CountryOption {
	for _, c := range s.GetCountries("") {
		if strings.EqualFold(c.IsoCode, v) || strings.EqualFold(c.Value, v) {
			return &c
		}
	}
	return nil
}

func (s *locationService) findState(countryCode, v string) *types.StateOption {
	for _, st := range s.GetStates(countryCode, "") {
		if strings.EqualFold(st.IsoCode, v) || strings.EqualFold(st.Value, v) {
			return &st
		}
	}
	return nil
}

func (s *locationService) hasCity(countryCode, stateCode, city string) bool {
	for _, c := range s.GetCities(countryCode, stateCode, "") {
		if !c.IsOther() && strings.EqualFold(c.Value, city) {
			return true
		}
	}
	return false
}
