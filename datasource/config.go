package datasource

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default endpoints and client settings. Open-Meteo needs no API key.
const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultHTTPTimeout  = 10 * time.Second
)

// Config represents the application configuration
type Config struct {
	GeocodingURL string        // geocoding endpoint override
	ForecastURL  string        // forecast endpoint override
	HTTPTimeout  time.Duration // per-request HTTP client timeout
	RateLimit    bool          // wrap providers with client-side rate limiting
}

// LoadConfig builds configuration from environment variables, falling back
// to defaults for anything unset. Recognized variables:
//
//	WEATHER_GEOCODING_URL  geocoding endpoint
//	WEATHER_FORECAST_URL   forecast endpoint
//	WEATHER_HTTP_TIMEOUT   Go duration, e.g. "15s"
//	WEATHER_RATE_LIMIT     "true"/"false"
func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	if v := os.Getenv("WEATHER_GEOCODING_URL"); v != "" {
		config.GeocodingURL = v
	}
	if v := os.Getenv("WEATHER_FORECAST_URL"); v != "" {
		config.ForecastURL = v
	}
	if v := os.Getenv("WEATHER_HTTP_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WEATHER_HTTP_TIMEOUT %q: %w", v, err)
		}
		config.HTTPTimeout = timeout
	}
	if v := os.Getenv("WEATHER_RATE_LIMIT"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WEATHER_RATE_LIMIT %q: %w", v, err)
		}
		config.RateLimit = enabled
	}

	return config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		GeocodingURL: DefaultGeocodingURL,
		ForecastURL:  DefaultForecastURL,
		HTTPTimeout:  DefaultHTTPTimeout,
		RateLimit:    true,
	}
}
