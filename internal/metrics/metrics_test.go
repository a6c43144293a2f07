package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewResolver(reg)

	m.CacheHit()
	m.CacheHit()
	m.CacheMiss()
	m.CacheEviction()
	m.ObserveProviderRequest("zippopotam", OutcomeSuccess, 120*time.Millisecond)
	m.ObserveProviderRequest("zippopotam", OutcomeError, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheEvictions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.providerRequests.WithLabelValues("zippopotam", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.providerRequests.WithLabelValues("zippopotam", OutcomeError)))

	n, err := testutil.GatherAndCount(reg, "workplace_geo_provider_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResolver_Unregistered(t *testing.T) {
	assert.NotPanics(t, func() {
		NewResolver(nil)
		NewResolver(nil)
	})
}

func TestHTTP_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewHTTP(prometheus.NewRegistry())

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/locations/countries/:countryCode/states", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, cc := range []string{"IN", "US"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations/countries/"+cc+"/states", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/locations/countries/:countryCode/states", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.requestsInFlight))
}
