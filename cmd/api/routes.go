package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoints
	app.router.GET("/ping", app.handlePing)
	app.router.GET("/health", app.handleHealth)

	// Location endpoints
	locations := app.router.Group("/locations")
	{
		locations.GET("/countries", app.handleGetCountries)
		locations.GET("/countries/:countryCode/states", app.handleGetStates)
		locations.GET("/countries/:countryCode/cities", app.handleGetCities)
		locations.GET("/countries/:countryCode/postal-codes", app.handleGetPostalCodes)
		locations.GET("/countries/:countryCode/postal-codes/:postalCode", app.handleGetPostalCodeDetails)
		locations.GET("/countries/:countryCode/postal-codes/:postalCode/validation", app.handleValidatePostalCode)
		locations.POST("/validate", app.handleValidateLocation)
		locations.GET("/search", app.handleSearchLocations)
		locations.GET("/hierarchy", app.handleGetHierarchy)
		locations.GET("/suggestions", app.handleGetSuggestions)
		locations.POST("/address/format", app.handleFormatAddress)
		locations.POST("/address/parse", app.handleParseAddress)
	}

	// Admin endpoints
	admin := app.router.Group("/admin")
	{
		admin.GET("/stats", app.handleGetServiceStats)
		admin.GET("/cache/stats", app.handleGetCacheStats)
		admin.DELETE("/cache", app.handleClearCache)
		admin.GET("/config", app.handleGetConfig)
		admin.PATCH("/config", app.handleUpdateConfig)
	}

	app.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
