package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workplace-geo/internal/location"
)

// handleGetServiceStats godoc
// @Summary Service statistics
// @Tags admin
// @Produce json
// @Success 200 {object} location.ServiceStats
// @Router /admin/stats [get]
func (app *App) handleGetServiceStats(c *gin.Context) {
	c.JSON(http.StatusOK, app.locationService.GetServiceStats(c.Request.Context()))
}

// handleGetCacheStats godoc
// @Summary Postal code cache statistics
// @Tags admin
// @Produce json
// @Success 200 {object} location.CacheStats
// @Router /admin/cache/stats [get]
func (app *App) handleGetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, app.locationService.GetCacheStats(c.Request.Context()))
}

// handleClearCache godoc
// @Summary Clear the postal code cache
// @Tags admin
// @Success 204
// @Failure 500 {object} map[string]string
// @Router /admin/cache [delete]
func (app *App) handleClearCache(c *gin.Context) {
	if err := app.locationService.ClearCache(c.Request.Context()); err != nil {
		app.logger.Error("failed to clear cache", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cache"})
		return
	}

	c.Status(http.StatusNoContent)
}

// handleGetConfig godoc
// @Summary Current resolver settings
// @Tags admin
// @Produce json
// @Success 200 {object} config.LocationConfig
// @Router /admin/config [get]
func (app *App) handleGetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, app.locationService.GetConfig())
}

// handleUpdateConfig godoc
// @Summary Update resolver settings
// @Description Merge the supplied fields into the current settings. Durations are in nanoseconds.
// @Tags admin
// @Accept json
// @Produce json
// @Param patch body location.ConfigPatch true "Fields to change"
// @Success 200 {object} config.LocationConfig
// @Failure 400 {object} map[string]string
// @Router /admin/config [patch]
func (app *App) handleUpdateConfig(c *gin.Context) {
	var patch location.ConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := app.locationService.UpdateConfig(patch)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
