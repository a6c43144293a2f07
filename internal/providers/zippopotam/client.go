package zippopotam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API Docs: https://docs.zippopotam.us/
// Sample requests:
// - https://api.zippopotam.us/in/560001
// - https://api.zippopotam.us/in/bangalore
const (
	baseURL        = "https://api.zippopotam.us"
	defaultTimeout = 5 * time.Second

	// ProviderName identifies results produced by this client
	ProviderName = "zippopotam"
)

// ErrNotFound is returned when the upstream knows no places for the query
var ErrNotFound = errors.New("zippopotam: no places found")

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

type Option func(*Client)

// WithBaseURL points the client at another host, e.g. an httptest server
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout bounds every request made by the client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func NewClient(logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "zippopotam-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchByCity lists the postal codes of a city
func (c *Client) SearchByCity(ctx context.Context, countryCode, city string) (*PlacesAPIResponse, error) {
	return c.get(ctx, countryCode, city)
}

// LookupPostalCode resolves the places sharing one postal code
func (c *Client) LookupPostalCode(ctx context.Context, countryCode, postalCode string) (*PlacesAPIResponse, error) {
	return c.get(ctx, countryCode, postalCode)
}

func (c *Client) get(ctx context.Context, countryCode, query string) (*PlacesAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	cc := strings.ToLower(strings.TrimSpace(countryCode))
	q := strings.TrimSpace(query)
	base := strings.TrimRight(u.Path, "/")
	u.Path = base + "/" + cc + "/" + q
	u.RawPath = base + "/" + url.PathEscape(cc) + "/" + url.PathEscape(q)

	c.logger.Debug("fetching zippopotam places",
		"country_code", cc,
		"query", q,
		"url", u.String(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Debug("zippopotam returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp PlacesAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(apiResp.Places) == 0 {
		return nil, ErrNotFound
	}

	c.logger.Debug("successfully fetched zippopotam places",
		"country_code", cc,
		"place_count", len(apiResp.Places),
	)

	return &apiResp, nil
}
