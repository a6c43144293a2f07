package location

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"workplace-geo/internal/types"
)

// Result types of a unified search
const (
	ResultCountry = "country"
	ResultState   = "state"
	ResultCity    = "city"
)

// SearchRequest is a unified search across the hierarchy. Without CountryCode
// countries are searched; with it, states, plus cities when StateCode is set.
type SearchRequest struct {
	Query       string `form:"q" json:"query"`
	CountryCode string `form:"countryCode" json:"countryCode"`
	StateCode   string `form:"stateCode" json:"stateCode"`
	SortBy      string `form:"sortBy" json:"sortBy" binding:"omitempty,oneof=label value"`
	SortOrder   string `form:"sortOrder" json:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Limit       int    `form:"limit" json:"limit" binding:"omitempty,min=1,max=1000"`
}

// SearchResponse lists matches from every searched level, concatenated.
// Total counts the matches before Limit was applied.
type SearchResponse struct {
	Results          []types.LocationOption `json:"results"`
	Total            int                    `json:"total"`
	ProcessingTimeMs float64                `json:"processingTimeMs"`
	Success          bool                   `json:"success"`
}

func (s *locationService) SearchLocations(req SearchRequest) SearchResponse {
	start := time.Now()

	var results []types.LocationOption
	if strings.TrimSpace(req.CountryCode) == "" {
		for _, c := range s.GetCountries(req.Query) {
			results = append(results, types.LocationOption{
				Type:        ResultCountry,
				Value:       c.Value,
				Label:       c.Label,
				IsoCode:     c.IsoCode,
				CountryCode: c.IsoCode,
			})
		}
	} else {
		for _, st := range s.GetStates(req.CountryCode, req.Query) {
			results = append(results, types.LocationOption{
				Type:        ResultState,
				Value:       st.Value,
				Label:       st.Label,
				IsoCode:     st.IsoCode,
				CountryCode: st.CountryCode,
				StateCode:   st.IsoCode,
			})
		}
		if strings.TrimSpace(req.StateCode) != "" {
			for _, c := range s.GetCities(req.CountryCode, req.StateCode, req.Query) {
				if c.IsOther() {
					continue
				}
				results = append(results, types.LocationOption{
					Type:        ResultCity,
					Value:       c.Value,
					Label:       c.Label,
					CountryCode: c.CountryCode,
					StateCode:   c.StateCode,
				})
			}
		}
	}
	if results == nil {
		results = []types.LocationOption{}
	}

	if req.SortBy != "" {
		sortOptions(results, req.SortBy, req.SortOrder)
	}

	total := len(results)
	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}

	return SearchResponse{
		Results:          results,
		Total:            total,
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		Success:          true,
	}
}

// sortOptions orders results by label or value using English collation
func sortOptions(results []types.LocationOption, sortBy, sortOrder string) {
	col := collate.New(language.English, collate.IgnoreCase)
	key := func(o types.LocationOption) string {
		if sortBy == "value" {
			return o.Value
		}
		return o.Label
	}
	dir := 1
	if sortOrder == "desc" {
		dir = -1
	}
	slices.SortStableFunc(results, func(a, b types.LocationOption) int {
		return dir * col.CompareString(key(a), key(b))
	})
}
