// Package cmd wires the geocode, fetch and render steps behind the CLI.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"weather-cli/datasource"
	"weather-cli/models"
	"weather-cli/providers/openmeteo"
	"weather-cli/render"
	"weather-cli/wxerr"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Open-Meteo's free tier allows ~600 calls/minute; 5 rps with a burst of 5
// stays well inside that while never delaying a single interactive run.
const (
	rateLimitRPS   = 5.0
	rateLimitBurst = 5
)

func NewRootCommand() *cobra.Command {
	var fahrenheit bool
	var days int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:     "weather-cli <city>",
		Short:   "Fetch and display weather for a city in your terminal",
		Example: "  weather-cli London\n  weather-cli \"New York\" -f\n  weather-cli Tokyo --fahrenheit --days 7",
		Args:    cobra.MinimumNArgs(1),
		Version: version,
		// Errors are reported once, by Execute, as a single stderr line
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			city := strings.TrimSpace(strings.Join(args, " "))
			if city == "" {
				return wxerr.New(wxerr.CodeInput, "city name must not be empty")
			}
			if days < 1 || days > 16 {
				return wxerr.New(wxerr.CodeInput, "days must be between 1 and 16")
			}

			units := models.Metric
			if fahrenheit {
				units = models.Imperial
			}

			config, err := datasource.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("timeout") {
				config.HTTPTimeout = timeout
			}

			return run(cmd.Context(), cmd.OutOrStdout(), config, city, units, days)
		},
	}

	cmd.Flags().BoolVarP(&fahrenheit, "fahrenheit", "f", false, "Display temperatures in Fahrenheit (default: Celsius)")
	cmd.Flags().IntVar(&days, "days", 5, "Forecast horizon in days (1-16)")
	cmd.Flags().DurationVar(&timeout, "timeout", datasource.DefaultHTTPTimeout, "HTTP request timeout")

	return cmd
}

// run executes the pipeline: resolve the city, fetch the forecast, render.
func run(ctx context.Context, out io.Writer, config *datasource.Config, city string, units models.Units, days int) error {
	var geocoder datasource.Geocoder = openmeteo.NewGeocoderClient(config.GeocodingURL, config.HTTPTimeout)
	var provider datasource.ForecastProvider = openmeteo.NewForecastClient(config.ForecastURL, config.HTTPTimeout)

	if config.RateLimit {
		geocoder = datasource.NewRateLimitedGeocoder(geocoder, rateLimitRPS, rateLimitBurst)
		provider = datasource.NewRateLimitedForecastProvider(provider, rateLimitRPS, rateLimitBurst)
	}

	fmt.Fprintf(out, "\nFetching weather for %s...\n\n", city)

	loc, err := geocoder.Geocode(ctx, city)
	if err != nil {
		if wxerr.IsCode(err, wxerr.CodeNotFound) {
			return wxerr.New(wxerr.CodeNotFound,
				fmt.Sprintf("city not found: could not find %q, check the spelling and try again", city))
		}
		return err
	}

	bundle, err := provider.FetchForecast(ctx, loc, units, days)
	if err != nil {
		return err
	}

	render.WeatherReport(out, bundle)
	fmt.Fprintln(out)
	return nil
}

// Execute runs the root command and returns its error after reporting it.
func Execute() error {
	// Optional .env for endpoint/timeout overrides; absence is normal
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
