package types

import "strings"

// OtherCityValue is the value of the synthetic city offered when the user's city is not listed
const OtherCityValue = "OTHER"

// CountryOption is a selectable country
type CountryOption struct {
	Value   string `json:"value" example:"India"`
	Label   string `json:"label" example:"India"`
	IsoCode string `json:"isoCode" example:"IN"`
}

// StateOption is a selectable state or province within a country
type StateOption struct {
	Value       string `json:"value" example:"Karnataka"`
	Label       string `json:"label" example:"Karnataka"`
	IsoCode     string `json:"isoCode" example:"KA"`
	CountryCode string `json:"countryCode" example:"IN"`
}

// CityOption is a selectable city within a state or country
type CityOption struct {
	Value       string   `json:"value" example:"Bengaluru"`
	Label       string   `json:"label" example:"Bengaluru"`
	StateCode   string   `json:"stateCode,omitempty" example:"KA"`
	CountryCode string   `json:"countryCode" example:"IN"`
	Latitude    *float64 `json:"latitude,omitempty" example:"12.97194"`
	Longitude   *float64 `json:"longitude,omitempty" example:"77.59369"`
}

// IsOther reports whether the option is the unlisted-city sentinel
func (c CityOption) IsOther() bool {
	return c.Value == OtherCityValue
}

// NewOtherCity builds the unlisted-city sentinel for a country and optional state
func NewOtherCity(countryCode, stateCode string) CityOption {
	return CityOption{
		Value:       OtherCityValue,
		Label:       "Other",
		StateCode:   stateCode,
		CountryCode: countryCode,
	}
}

// IsOtherCity reports whether a raw city value names the sentinel
func IsOtherCity(city string) bool {
	return strings.EqualFold(strings.TrimSpace(city), OtherCityValue)
}

// PostalCodeOption is a postal code returned by an external provider
type PostalCodeOption struct {
	Value     string   `json:"value" example:"560001"`
	Label     string   `json:"label" example:"560001 - Bangalore G.P.O."`
	PlaceName string   `json:"placeName" example:"Bangalore G.P.O."`
	State     string   `json:"state,omitempty" example:"Karnataka"`
	StateCode string   `json:"stateCode,omitempty" example:"KA"`
	Latitude  *float64 `json:"latitude,omitempty" example:"12.9762"`
	Longitude *float64 `json:"longitude,omitempty" example:"77.6033"`
	Timezone  string   `json:"timezone,omitempty" example:"Asia/Kolkata"`
	Provider  string   `json:"provider" example:"zippopotam"`
}

// NewPostalCodeOption builds an option with the "{code} - {place}" label
func NewPostalCodeOption(code, placeName, provider string) PostalCodeOption {
	label := code
	if placeName != "" {
		label = code + " - " + placeName
	}
	return PostalCodeOption{
		Value:     code,
		Label:     label,
		PlaceName: placeName,
		Provider:  provider,
	}
}

// LocationOption is a search result from any level of the hierarchy
type LocationOption struct {
	Type        string `json:"type" example:"state"` // country, state, city
	Value       string `json:"value" example:"Karnataka"`
	Label       string `json:"label" example:"Karnataka"`
	IsoCode     string `json:"isoCode,omitempty" example:"KA"`
	CountryCode string `json:"countryCode,omitempty" example:"IN"`
	StateCode   string `json:"stateCode,omitempty" example:"KA"`
}
