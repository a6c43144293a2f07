package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workplace-geo/internal/location"
	"workplace-geo/internal/postalcode"
	_ "workplace-geo/internal/types" // imported for swagger type definitions
)

// SearchInput is the optional free text filter shared by list endpoints
type SearchInput struct {
	Search string `form:"search"` // Case-insensitive substring filter
}

// CitiesInput defines the query parameters for the cities endpoint
type CitiesInput struct {
	StateCode string `form:"stateCode"` // ISO 3166-2 subdivision code; empty lists the whole country
	Search    string `form:"search"`
}

// PostalCodesInput defines the query parameters for the postal codes endpoint
type PostalCodesInput struct {
	City   string `form:"city" binding:"required"` // City name as listed by the cities endpoint
	Search string `form:"search"`                  // Postal code prefix or place name substring
}

// HierarchyInput defines the query parameters for the hierarchy endpoint
type HierarchyInput struct {
	CountryCode string `form:"countryCode"`
	StateCode   string `form:"stateCode"`
}

// SuggestionsInput defines the query parameters for the suggestions endpoint
type SuggestionsInput struct {
	Query string `form:"q" binding:"required"`
	Limit int    `form:"limit,default=10" binding:"min=1,max=50"`
}

// PostalCodeValidationResponse is the verdict for a single postal code
type PostalCodeValidationResponse struct {
	CountryCode string                      `json:"countryCode" example:"IN"`
	PostalCode  string                      `json:"postalCode" example:"560001"`
	Formatted   string                      `json:"formatted" example:"560001"`
	Result      postalcode.ValidationResult `json:"result" example:"VALID"`
}

// FormatAddressResponse holds a formatted address line
type FormatAddressResponse struct {
	Formatted   string `json:"formatted" example:"1 MG Road, Bengaluru, Karnataka, India, 560001"`
	DisplayText string `json:"displayText" example:"Bengaluru, Karnataka"`
}

// ParseAddressRequest carries a comma separated address
type ParseAddressRequest struct {
	Address string `json:"address" binding:"required" example:"1 MG Road, Bengaluru, Karnataka, India, 560001"`
}

// handleGetCountries godoc
// @Summary List countries
// @Description List countries whose name or ISO code contains the search term
// @Tags location
// @Produce json
// @Param search query string false "Case-insensitive filter" example(united)
// @Success 200 {array} types.CountryOption
// @Failure 400 {object} map[string]string
// @Router /locations/countries [get]
func (app *App) handleGetCountries(c *gin.Context) {
	var input SearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app.locationService.GetCountries(input.Search))
}

// handleGetStates godoc
// @Summary List states of a country
// @Tags location
// @Produce json
// @Param countryCode path string true "ISO 3166-1 alpha-2 country code" example(IN)
// @Param search query string false "Case-insensitive filter"
// @Success 200 {array} types.StateOption
// @Failure 400 {object} map[string]string
// @Router /locations/countries/{countryCode}/states [get]
func (app *App) handleGetStates(c *gin.Context) {
	var input SearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app.locationService.GetStates(c.Param("countryCode"), input.Search))
}

// handleGetCities godoc
// @Summary List cities
// @Description List the cities of a state, or of the whole country when no state is given. The list always ends with the OTHER option.
// @Tags location
// @Produce json
// @Param countryCode path string true "ISO 3166-1 alpha-2 country code" example(IN)
// @Param stateCode query string false "ISO 3166-2 subdivision code" example(KA)
// @Param search query string false "Case-insensitive filter"
// @Success 200 {array} types.CityOption
// @Failure 400 {object} map[string]string
// @Router /locations/countries/{countryCode}/cities [get]
func (app *App) handleGetCities(c *gin.Context) {
	var input CitiesInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app.locationService.GetCities(c.Param("countryCode"), input.StateCode, input.Search))
}

// handleGetPostalCodes godoc
// @Summary List postal codes of a city
// @Description Resolve postal codes through the cache and the upstream providers. Upstream failures yield an empty list.
// @Tags location
// @Produce json
// @Param countryCode path string true "ISO 3166-1 alpha-2 country code" example(IN)
// @Param city query string true "City name" example(Bengaluru)
// @Param search query string false "Postal code prefix or place name filter"
// @Success 200 {array} types.PostalCodeOption
// @Failure 400 {object} map[string]string
// @Router /locations/countries/{countryCode}/postal-codes [get]
func (app *App) handleGetPostalCodes(c *gin.Context) {
	var input PostalCodesInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	codes := app.locationService.GetPostalCodes(c.Request.Context(), c.Param("countryCode"), input.City, input.Search)
	c.JSON(http.StatusOK, codes)
}

// handleGetPostalCodeDetails godoc
// @Summary Look up a postal code
// @Tags location
// @Produce json
// @Param countryCode path string true "ISO 3166-1 alpha-2 country code" example(IN)
// @Param postalCode path string true "Postal code" example(560001)
// @Success 200 {object} types.PostalCodeOption
// @Failure 404 {object} map[string]string
// @Router /locations/countries/{countryCode}/postal-codes/{postalCode} [get]
func (app *App) handleGetPostalCodeDetails(c *gin.Context) {
	details := app.locationService.GetPostalCodeDetails(c.Request.Context(), c.Param("countryCode"), c.Param("postalCode"))
	if details == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "postal code not found"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// handleValidatePostalCode godoc
// @Summary Validate a postal code format
// @Description Check a postal code against the country's format. Countries without a known format yield UNKNOWN_FORMAT.
// @Tags location
// @Produce json
// @Param countryCode path string true "ISO 3166-1 alpha-2 country code" example(IN)
// @Param postalCode path string true "Postal code" example(560001)
// @Success 200 {object} PostalCodeValidationResponse
// @Router /locations/countries/{countryCode}/postal-codes/{postalCode}/validation [get]
func (app *App) handleValidatePostalCode(c *gin.Context) {
	countryCode, code := c.Param("countryCode"), c.Param("postalCode")

	c.JSON(http.StatusOK, PostalCodeValidationResponse{
		CountryCode: countryCode,
		PostalCode:  code,
		Formatted:   postalcode.Format(countryCode, code),
		Result:      app.locationService.ValidatePostalCode(countryCode, code),
	})
}

// handleValidateLocation godoc
// @Summary Validate a location
// @Description Check that each supplied level exists and belongs to its parent
// @Tags location
// @Accept json
// @Produce json
// @Param request body location.ValidationRequest true "Location to validate"
// @Success 200 {object} location.ValidationResponse
// @Failure 400 {object} map[string]string
// @Router /locations/validate [post]
func (app *App) handleValidateLocation(c *gin.Context) {
	var req location.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app.locationService.ValidateLocation(req))
}

// handleSearchLocations godoc
// @Summary Search locations
// @Description Search countries, or the states and cities of a country
// @Tags location
// @Produce json
// @Param q query string false "Search term"
// @Param countryCode query string false "Search within this country"
// @Param stateCode query string false "Also search the cities of this state"
// @Param sortBy query string false "Sort key" Enums(label, value)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Param limit query int false "Maximum results" minimum(1) maximum(1000)
// @Success 200 {object} location.SearchResponse
// @Failure 400 {object} map[string]string
// @Router /locations/search [get]
func (app *App) handleSearchLocations(c *gin.Context) {
	var req location.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app.locationService.SearchLocations(req))
}

// handleGetHierarchy godoc
// @Summary Get a location hierarchy
// @Tags location
// @Produce json
// @Param countryCode query string false "Selected country" example(IN)
// @Param stateCode query string false "Selected state" example(KA)
// @Success 200 {object} location.Hierarchy
// @Failure 400 {object} map[string]string
// @Router /locations/hierarchy [get]
func (app *App) handleGetHierarchy(c *gin.Context) {
	var input HierarchyInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app.locationService.GetLocationHierarchy(input.CountryCode, input.StateCode))
}

// handleGetSuggestions godoc
// @Summary Suggest locations
// @Description Country, state and city matches for free text, countries first
// @Tags location
// @Produce json
// @Param q query string true "Free text" example(delhi)
// @Param limit query int false "Maximum suggestions" minimum(1) maximum(50) default(10)
// @Success 200 {array} types.LocationOption
// @Failure 400 {object} map[string]string
// @Router /locations/suggestions [get]
func (app *App) handleGetSuggestions(c *gin.Context) {
	var input SuggestionsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, location.GenerateSuggestions(app.locationService, input.Query, input.Limit))
}

// handleFormatAddress godoc
// @Summary Format an address
// @Tags address
// @Accept json
// @Produce json
// @Param address body location.Address true "Structured address"
// @Success 200 {object} FormatAddressResponse
// @Failure 400 {object} map[string]string
// @Router /locations/address/format [post]
func (app *App) handleFormatAddress(c *gin.Context) {
	var addr location.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, FormatAddressResponse{
		Formatted:   location.FormatAddress(addr),
		DisplayText: location.GetDisplayText(addr),
	})
}

// handleParseAddress godoc
// @Summary Parse an address
// @Description Split "street, city, state, country, postal code". Addresses in any other order are misread.
// @Tags address
// @Accept json
// @Produce json
// @Param request body ParseAddressRequest true "Comma separated address"
// @Success 200 {object} location.Address
// @Failure 400 {object} map[string]string
// @Router /locations/address/parse [post]
func (app *App) handleParseAddress(c *gin.Context) {
	var req ParseAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, location.ParseAddress(req.Address))
}
