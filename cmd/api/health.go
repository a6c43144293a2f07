package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// HealthResponse summarises the resolver's runtime state
type HealthResponse struct {
	Status            string   `json:"status" example:"ok"`
	Countries         int      `json:"countries"`
	Providers         []string `json:"providers" example:"zippopotam"`
	PostalCodeLookup  bool     `json:"postalCodeLookup" example:"true"`
	CachedPostalCodes int      `json:"cachedPostalCodes" example:"12"`
	UptimeSeconds     float64  `json:"uptimeSeconds" example:"3600"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleHealth godoc
// @Summary Resolver health
// @Description Report dataset size, configured providers and cache occupancy
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (app *App) handleHealth(c *gin.Context) {
	stats := app.locationService.GetServiceStats(c.Request.Context())

	c.JSON(http.StatusOK, HealthResponse{
		Status:            "ok",
		Countries:         len(app.locationService.GetCountries("")),
		Providers:         stats.Providers,
		PostalCodeLookup:  stats.Config.EnablePostalCodeLookup,
		CachedPostalCodes: stats.Cache.Size,
		UptimeSeconds:     stats.UptimeSeconds,
	})
}
