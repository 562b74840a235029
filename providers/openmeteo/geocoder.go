package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-cli/datasource"
	"weather-cli/models"
	"weather-cli/wxerr"
)

// GeocoderClient resolves place names via the Open-Meteo geocoding API
type GeocoderClient struct {
	baseURL string
	client  *http.Client
}

// Ensure GeocoderClient implements datasource.Geocoder
var _ datasource.Geocoder = (*GeocoderClient)(nil)

// NewGeocoderClient creates a new Open-Meteo geocoding client
func NewGeocoderClient(baseURL string, timeout time.Duration) *GeocoderClient {
	if baseURL == "" {
		baseURL = datasource.DefaultGeocodingURL
	}
	return &GeocoderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the name of this geocoding service
func (g *GeocoderClient) Name() string {
	return "Open-Meteo Geocoding"
}

// geocodingResponse represents the API response structure
type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

// Geocode resolves a place name to its best-ranked match. Upstream returns
// candidates ranked by relevance and population; the first one wins.
func (g *GeocoderClient) Geocode(ctx context.Context, name string) (models.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Location{}, wxerr.New(wxerr.CodeInput, "place name must not be empty")
	}

	params := url.Values{}
	params.Set("name", name)
	params.Set("count", "5")
	params.Set("language", "en")
	params.Set("format", "json")
	reqURL := g.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return models.Location{}, wxerr.Wrap(wxerr.CodeNetwork, "geocoding request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, wxerr.New(wxerr.CodeBadResponse,
			fmt.Sprintf("geocoding API returned non-200 status: %d", resp.StatusCode))
	}

	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Location{}, wxerr.Wrap(wxerr.CodeNetwork, "failed to read geocoding response", err)
	}

	// A body we cannot decode is handled like an empty result set rather
	// than a hard failure, so the user sees the not-found message.
	var geoResp geocodingResponse
	if err := json.Unmarshal(rawData, &geoResp); err != nil {
		return models.Location{}, wxerr.Wrap(wxerr.CodeNotFound,
			fmt.Sprintf("no match for %q", name), err)
	}

	if len(geoResp.Results) == 0 {
		return models.Location{}, wxerr.New(wxerr.CodeNotFound, fmt.Sprintf("no match for %q", name))
	}

	best := geoResp.Results[0]
	loc := models.Location{
		Query:     name,
		Name:      best.Name,
		Admin1:    best.Admin1,
		Country:   best.Country,
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
	}
	if loc.Name == "" {
		loc.Name = name
	}

	return loc, nil
}
