package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://www.weather.gov/documentation/services-web-api
// Sample request: https://api.weather.gov/points/40.7128,-74.0060
// The points response links to the gridpoint forecast URL, which is then
// fetched verbatim in a second call.

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a weather.gov client for the given base URL. The NWS API
// asks callers to identify themselves via User-Agent and may reject
// anonymous traffic.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// GetPoint looks up the forecast grid metadata for a coordinate.
func (c *Client) GetPoint(ctx context.Context, latitude, longitude float64) (*PointAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/points/%v,%v", latitude, longitude)

	var apiResp PointAPIResponse
	if err := c.getJSON(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// GetForecast fetches the gridpoint forecast document. forecastURL is the
// absolute URL taken from a prior points lookup.
func (c *Client) GetForecast(ctx context.Context, forecastURL string) (*ForecastAPIResponse, error) {
	var apiResp ForecastAPIResponse
	if err := c.getJSON(ctx, forecastURL, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
