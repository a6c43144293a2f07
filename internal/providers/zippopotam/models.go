package zippopotam

// PlacesAPIResponse is returned by both the postal code and the city endpoints.
// The city endpoint fills "post code" per place; the postal code endpoint fills
// it at the top level.
type PlacesAPIResponse struct {
	PostCode            string  `json:"post code"`
	Country             string  `json:"country"`
	CountryAbbreviation string  `json:"country abbreviation"`
	Places              []Place `json:"places"`
}

type Place struct {
	PlaceName         string `json:"place name"`
	Longitude         string `json:"longitude"`
	Latitude          string `json:"latitude"`
	State             string `json:"state"`
	StateAbbreviation string `json:"state abbreviation"`
	PostCode          string `json:"post code"`
}
