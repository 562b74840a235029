package datasource

import (
	"context"
	"fmt"

	"weather-cli/models"

	"golang.org/x/time/rate"
)

// RateLimitedGeocoder wraps a Geocoder with rate limiting
type RateLimitedGeocoder struct {
	geocoder Geocoder
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedGeocoder creates a new rate limited geocoder
// rps is the maximum requests per second allowed (can be fractional)
// burst is the maximum burst size allowed
func NewRateLimitedGeocoder(geocoder Geocoder, rps float64, burst int) *RateLimitedGeocoder {
	return &RateLimitedGeocoder{
		geocoder: geocoder,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", geocoder.Name()),
	}
}

// Geocode resolves a place name, respecting rate limits
func (r *RateLimitedGeocoder) Geocode(ctx context.Context, name string) (models.Location, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return models.Location{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	// Forward to the underlying geocoder
	return r.geocoder.Geocode(ctx, name)
}

// Name returns the geocoder name
func (r *RateLimitedGeocoder) Name() string {
	return r.name
}

// RateLimitedForecastProvider wraps a ForecastProvider with rate limiting
type RateLimitedForecastProvider struct {
	provider ForecastProvider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedForecastProvider creates a new rate limited forecast provider
// rps is the maximum requests per second allowed
// burst is the maximum burst size allowed
func NewRateLimitedForecastProvider(provider ForecastProvider, rps float64, burst int) *RateLimitedForecastProvider {
	return &RateLimitedForecastProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedForecastProvider) FetchForecast(ctx context.Context, loc models.Location, units models.Units, days int) (models.ForecastBundle, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return models.ForecastBundle{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	// Forward to the underlying provider
	return r.provider.FetchForecast(ctx, loc, units, days)
}

// Name returns the provider name
func (r *RateLimitedForecastProvider) Name() string {
	return r.name
}

// Verify that our rate limited types implement the required interfaces
var (
	_ Geocoder         = (*RateLimitedGeocoder)(nil)
	_ ForecastProvider = (*RateLimitedForecastProvider)(nil)
)
