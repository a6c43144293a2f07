package geonames

type PostalCodeSearchAPIResponse struct {
	PostalCodes []PostalCode `json:"postalCodes"`
	// Status is set instead of results when the request is rejected
	// (bad credentials, exhausted credits).
	Status *struct {
		Message string `json:"message"`
		Value   int    `json:"value"`
	} `json:"status,omitempty"`
}

type PostalCode struct {
	PostalCode  string  `json:"postalCode"`
	PlaceName   string  `json:"placeName"`
	CountryCode string  `json:"countryCode"`
	AdminName1  string  `json:"adminName1"`
	AdminCode1  string  `json:"adminCode1"`
	AdminName2  string  `json:"adminName2"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}
