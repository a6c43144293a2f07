package geonames

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API Docs: https://www.geonames.org/export/web-services.html#postalCodeSearch
// Sample request: http://api.geonames.org/postalCodeSearchJSON?placename=Berlin&country=DE&maxRows=10&username=demo
const (
	baseURL        = "http://api.geonames.org"
	defaultTimeout = 5 * time.Second
	defaultMaxRows = 50

	// ProviderName identifies results produced by this client
	ProviderName = "geonames"
)

var (
	// ErrNotFound is returned when the search yields no postal codes
	ErrNotFound = errors.New("geonames: no postal codes found")
	// ErrMissingUsername is returned when the client was built without credentials
	ErrMissingUsername = errors.New("geonames: username is required")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	maxRows    int
	logger     *slog.Logger
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithMaxRows(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRows = n
		}
	}
}

func NewClient(logger *slog.Logger, username string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		username:   username,
		maxRows:    defaultMaxRows,
		logger:     logger.With("component", "geonames-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchByCity lists the postal codes of a place name within a country
func (c *Client) SearchByCity(ctx context.Context, countryCode, city string) (*PostalCodeSearchAPIResponse, error) {
	return c.search(ctx, countryCode, "placename", city)
}

// LookupPostalCode resolves the places sharing one postal code
func (c *Client) LookupPostalCode(ctx context.Context, countryCode, postalCode string) (*PostalCodeSearchAPIResponse, error) {
	return c.search(ctx, countryCode, "postalcode", postalCode)
}

func (c *Client) search(ctx context.Context, countryCode, param, value string) (*PostalCodeSearchAPIResponse, error) {
	if c.username == "" {
		return nil, ErrMissingUsername
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/postalCodeSearchJSON"
	q := u.Query()
	q.Set(param, strings.TrimSpace(value))
	q.Set("country", strings.ToUpper(strings.TrimSpace(countryCode)))
	q.Set("maxRows", strconv.Itoa(c.maxRows))
	q.Set("username", c.username)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching geonames postal codes",
		"country_code", countryCode,
		param, value,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp PostalCodeSearchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if apiResp.Status != nil {
		return nil, fmt.Errorf("geonames rejected request (code %d): %s", apiResp.Status.Value, apiResp.Status.Message)
	}
	if len(apiResp.PostalCodes) == 0 {
		return nil, ErrNotFound
	}

	c.logger.Debug("successfully fetched geonames postal codes",
		"country_code", countryCode,
		"result_count", len(apiResp.PostalCodes),
	)

	return &apiResp, nil
}
