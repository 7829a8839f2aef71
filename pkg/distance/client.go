// Package distance wraps the external routing provider that converts a
// pincode pair into road distance. The quote engine only ever sees
// kilometers; provider wire details stay here.
package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"freight-compare/internal/models"
)

// ProviderInterface is what the quote service depends on.
type ProviderInterface interface {
	DistanceKm(ctx context.Context, originPincode, destinationPincode string) (float64, error)
}

// Client calls the routing provider's JSON API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// DistanceKm returns the road distance between two pincodes. A response with
// no routes maps to models.ErrRouteNotFound; transport failures map to
// models.ErrProviderUnavailable so the caller can retry once.
func (c *Client) DistanceKm(ctx context.Context, origin, destination string) (float64, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/distance?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("distance request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance call: %v: %w", err, models.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return 0, fmt.Errorf("distance call: status %d: %w", resp.StatusCode, models.ErrProviderUnavailable)
	}

	var out struct {
		Routes []struct {
			DistanceKm float64 `json:"distance_km"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("distance decode: %v: %w", err, models.ErrProviderUnavailable)
	}
	if len(out.Routes) == 0 || out.Routes[0].DistanceKm <= 0 {
		return 0, fmt.Errorf("distance %s→%s: %w", origin, destination, models.ErrRouteNotFound)
	}
	return out.Routes[0].DistanceKm, nil
}
