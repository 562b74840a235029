package datasource

import (
	"context"

	"weather-cli/models"
)

// Geocoder resolves a free-text place name to coordinates
type Geocoder interface {
	// Geocode returns the best match for a place name
	Geocode(ctx context.Context, name string) (models.Location, error)

	// Name returns the service's name
	Name() string
}

// ForecastProvider is an interface for services that can fetch current
// conditions plus a daily forecast for a resolved location
type ForecastProvider interface {
	// FetchForecast fetches current conditions and a forecast for the
	// specified number of days, with values in the requested unit system
	FetchForecast(ctx context.Context, loc models.Location, units models.Units, days int) (models.ForecastBundle, error)

	// Name returns the provider's name
	Name() string
}
