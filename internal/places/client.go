// Package places provides a client for a Nominatim-compatible place-search
// provider. The engine treats the provider as a black box: any service that
// accepts a tag-based query with a bounding box and returns
// {display_name, lat, lon} entries satisfies the contract.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Result is a single place returned by the provider. Coordinates come back
// as strings on the wire.
type Result struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// BoundingBox is a rectangular lat/lng region used to scope a search query
type BoundingBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// NewBoundingBox builds a box centered on the given coordinate with the
// given angular half-width in degrees
func NewBoundingBox(lat, lon, halfWidth float64) BoundingBox {
	return BoundingBox{
		MinLon: lon - halfWidth,
		MinLat: lat - halfWidth,
		MaxLon: lon + halfWidth,
		MaxLat: lat + halfWidth,
	}
}

// viewbox formats the box as the provider expects: minLon,minLat,maxLon,maxLat
func (b BoundingBox) viewbox() string {
	return fmt.Sprintf("%s,%s,%s,%s",
		formatCoord(b.MinLon),
		formatCoord(b.MinLat),
		formatCoord(b.MaxLon),
		formatCoord(b.MaxLat),
	)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Client is an HTTP client for the place-search provider
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new provider client with a bounded per-call timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search queries the provider for places matching the amenity tag within the
// bounding box, capped at limit results
func (c *Client) Search(ctx context.Context, amenity string, box BoundingBox, limit int) ([]Result, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("amenity", amenity)
	params.Set("bounded", "1")
	params.Set("viewbox", box.viewbox())
	params.Set("limit", strconv.Itoa(limit))

	searchURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request returned status %d", resp.StatusCode)
	}

	var results []Result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return results, nil
}
