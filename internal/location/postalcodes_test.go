package location

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workplace-geo/internal/config"
	"workplace-geo/internal/types"
)

func TestLocationService_GetPostalCodes_ConcurrentMissesShareOneFetch(t *testing.T) {
	provider := bengaluruProvider()
	provider.delay = 100 * time.Millisecond
	svc := newTestService(t, testConfig(), []PostalCodeProvider{provider})

	const callers = 16
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		results = make([][]types.PostalCodeOption, callers)
	)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = svc.GetPostalCodes(context.Background(), "IN", "Bengaluru", "")
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, provider.calls())
	for i, got := range results {
		assert.Lenf(t, got, 3, "caller %d", i)
	}
}

func TestLocationService_GetPostalCodes_CallerCancellation(t *testing.T) {
	provider := bengaluruProvider()
	provider.delay = 200 * time.Millisecond
	svc := newTestService(t, testConfig(), []PostalCodeProvider{provider})

	firstCtx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	var (
		wg           sync.WaitGroup
		first        []types.PostalCodeOption
		firstElapsed time.Duration
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		began := time.Now()
		first = svc.GetPostalCodes(firstCtx, "IN", "Bengaluru", "")
		firstElapsed = time.Since(began)
	}()

	// the second caller joins the fetch the first one started
	require.Eventually(t, func() bool { return provider.calls() == 1 }, time.Second, time.Millisecond)
	second := svc.GetPostalCodes(context.Background(), "IN", "Bengaluru", "")
	wg.Wait()

	assert.Empty(t, first, "a cancelled caller gets no results")
	assert.Less(t, firstElapsed, provider.delay, "a cancelled caller must not wait for the shared fetch")
	assert.Len(t, second, 3, "other callers are unaffected by the first caller's cancellation")
	assert.Equal(t, 1, provider.calls())

	// the shared fetch still populated the cache
	assert.Len(t, svc.GetPostalCodes(context.Background(), "IN", "Bengaluru", ""), 3)
	assert.Equal(t, 1, provider.calls())
}

func TestFetchBudget(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LocationConfig
		providers int
		want      time.Duration
	}{
		{
			name:      "single attempt",
			cfg:       config.LocationConfig{RequestTimeout: time.Second, RetryDelay: 100 * time.Millisecond},
			providers: 1,
			want:      time.Second,
		},
		{
			name:      "retries add their backoff waits",
			cfg:       config.LocationConfig{MaxRetries: 2, RequestTimeout: time.Second, RetryDelay: 100 * time.Millisecond},
			providers: 2,
			want:      2 * (3*time.Second + 150*time.Millisecond + 225*time.Millisecond),
		},
		{
			name:      "no providers still gets one chain",
			cfg:       config.LocationConfig{RequestTimeout: 500 * time.Millisecond},
			providers: 0,
			want:      500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fetchBudget(tt.cfg, tt.providers))
		})
	}
}
