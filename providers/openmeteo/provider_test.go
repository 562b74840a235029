package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"weather-cli/models"
	"weather-cli/wxerr"

	"github.com/stretchr/testify/require"
)

var testLocation = models.Location{
	Query:     "london",
	Name:      "London",
	Admin1:    "England",
	Country:   "United Kingdom",
	Latitude:  51.50853,
	Longitude: -0.12574,
}

// forecastHandler serves a minimal Open-Meteo style payload, converting
// values upstream the way the real API does when imperial units are asked.
func forecastHandler(t *testing.T, days int, capture *url.Values) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if capture != nil {
			*capture = query
		}

		imperial := query.Get("temperature_unit") == "fahrenheit"
		convert := func(celsius float64) float64 {
			if imperial {
				return celsius*9/5 + 32
			}
			return celsius
		}

		payload := map[string]interface{}{
			"current": map[string]interface{}{
				"time":                 "2026-08-24T13:00",
				"temperature_2m":       convert(18.3),
				"relative_humidity_2m": 72,
				"apparent_temperature": convert(17.1),
				"weather_code":         2,
				"wind_speed_10m":       14.2,
				"wind_direction_10m":   225.0,
			},
			"daily": dailyPayload(days, convert),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}
}

func dailyPayload(days int, convert func(float64) float64) map[string]interface{} {
	times := make([]string, 0, days)
	codes := make([]int, 0, days)
	maxs := make([]float64, 0, days)
	mins := make([]float64, 0, days)
	precip := make([]float64, 0, days)
	sunrise := make([]string, 0, days)
	sunset := make([]string, 0, days)

	for i := 0; i < days; i++ {
		day := 24 + i
		times = append(times, fmt.Sprintf("2026-08-%02d", day))
		codes = append(codes, 61)
		maxs = append(maxs, convert(20.5))
		mins = append(mins, convert(12.4))
		precip = append(precip, 1.2)
		sunrise = append(sunrise, fmt.Sprintf("2026-08-%02dT06:05", day))
		sunset = append(sunset, fmt.Sprintf("2026-08-%02dT19:58", day))
	}

	return map[string]interface{}{
		"time":               times,
		"weather_code":       codes,
		"temperature_2m_max": maxs,
		"temperature_2m_min": mins,
		"precipitation_sum":  precip,
		"sunrise":            sunrise,
		"sunset":             sunset,
	}
}

func TestFetchForecastMetric(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(forecastHandler(t, 5, &gotQuery))
	defer server.Close()

	f := NewForecastClient(server.URL, 5*time.Second)
	bundle, err := f.FetchForecast(context.Background(), testLocation, models.Metric, 5)
	require.NoError(t, err)

	// Request construction
	require.Equal(t, "51.50853", gotQuery.Get("latitude"))
	require.Equal(t, "-0.12574", gotQuery.Get("longitude"))
	require.Equal(t, "auto", gotQuery.Get("timezone"))
	require.Equal(t, "5", gotQuery.Get("forecast_days"))
	require.Empty(t, gotQuery.Get("temperature_unit"))
	require.Contains(t, gotQuery.Get("current"), "apparent_temperature")
	require.Contains(t, gotQuery.Get("daily"), "precipitation_sum")

	// Current conditions
	require.Equal(t, "Open-Meteo", bundle.Provider)
	require.Equal(t, testLocation, bundle.Location)
	require.Equal(t, models.Metric, bundle.Units)
	require.InDelta(t, 18.3, bundle.Current.Temperature, 1e-9)
	require.InDelta(t, 17.1, bundle.Current.ApparentTemp, 1e-9)
	require.Equal(t, 72, bundle.Current.Humidity)
	require.Equal(t, 2, bundle.Current.ConditionCode)
	require.Equal(t, time.Date(2026, 8, 24, 13, 0, 0, 0, time.UTC), bundle.Current.Time)

	// Forecast days, chronological
	require.Len(t, bundle.Days, 5)
	require.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), bundle.Days[0].Date)
	require.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), bundle.Days[4].Date)
	require.Equal(t, 61, bundle.Days[0].ConditionCode)
	require.InDelta(t, 20.5, bundle.Days[0].TempMax, 1e-9)
	require.InDelta(t, 1.2, bundle.Days[0].Precipitation, 1e-9)
	require.Equal(t, 6, bundle.Days[0].Sunrise.Hour())
	require.Equal(t, 19, bundle.Days[0].Sunset.Hour())
}

func TestFetchForecastImperialConversion(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(forecastHandler(t, 5, &gotQuery))
	defer server.Close()

	f := NewForecastClient(server.URL, 5*time.Second)
	bundle, err := f.FetchForecast(context.Background(), testLocation, models.Imperial, 5)
	require.NoError(t, err)

	require.Equal(t, "fahrenheit", gotQuery.Get("temperature_unit"))
	require.Equal(t, "mph", gotQuery.Get("wind_speed_unit"))
	require.Equal(t, "inch", gotQuery.Get("precipitation_unit"))

	// Values come back converted upstream: °F = °C * 9/5 + 32
	require.InDelta(t, 18.3*9/5+32, bundle.Current.Temperature, 0.05)
	require.InDelta(t, 20.5*9/5+32, bundle.Days[0].TempMax, 0.05)
	require.Equal(t, models.Imperial, bundle.Units)
}

func TestFetchForecastNeverExceedsRequestedDays(t *testing.T) {
	// Upstream answers with more days than asked for; extra rows are dropped
	server := httptest.NewServer(forecastHandler(t, 7, nil))
	defer server.Close()

	f := NewForecastClient(server.URL, 5*time.Second)
	bundle, err := f.FetchForecast(context.Background(), testLocation, models.Metric, 5)
	require.NoError(t, err)
	require.Len(t, bundle.Days, 5)
}

func TestFetchForecastAcceptsShorterHorizon(t *testing.T) {
	server := httptest.NewServer(forecastHandler(t, 3, nil))
	defer server.Close()

	f := NewForecastClient(server.URL, 5*time.Second)
	bundle, err := f.FetchForecast(context.Background(), testLocation, models.Metric, 5)
	require.NoError(t, err)
	require.Len(t, bundle.Days, 3)
}

func TestFetchForecastBadResponses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>oops</html>`},
		{name: "missing current", body: `{"daily": {"time": []}}`},
		{
			name: "missing daily",
			body: `{"current": {"time": "2026-08-24T13:00", "temperature_2m": 1}}`,
		},
		{
			name: "ragged daily arrays",
			body: `{
				"current": {"time": "2026-08-24T13:00", "temperature_2m": 1},
				"daily": {
					"time": ["2026-08-24", "2026-08-25"],
					"weather_code": [0],
					"temperature_2m_max": [1, 2],
					"temperature_2m_min": [0, 1],
					"precipitation_sum": [0, 0],
					"sunrise": ["2026-08-24T06:05", "2026-08-25T06:06"],
					"sunset": ["2026-08-24T19:58", "2026-08-25T19:56"]
				}
			}`,
		},
		{
			name: "unparseable current time",
			body: `{
				"current": {"time": "yesterday", "temperature_2m": 1},
				"daily": {
					"time": [], "weather_code": [], "temperature_2m_max": [],
					"temperature_2m_min": [], "precipitation_sum": [],
					"sunrise": [], "sunset": []
				}
			}`,
		},
	}

	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(tc.body))
		}))

		f := NewForecastClient(server.URL, 5*time.Second)
		_, err := f.FetchForecast(context.Background(), testLocation, models.Metric, 5)
		require.True(t, wxerr.IsCode(err, wxerr.CodeBadResponse), "%s: got %v", tc.name, err)

		server.Close()
	}
}

func TestFetchForecastNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	f := NewForecastClient(server.URL, 1*time.Second)
	_, err := f.FetchForecast(context.Background(), testLocation, models.Metric, 5)
	require.True(t, wxerr.IsCode(err, wxerr.CodeNetwork))
}

func TestFetchForecastServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	f := NewForecastClient(server.URL, 5*time.Second)
	_, err := f.FetchForecast(context.Background(), testLocation, models.Metric, 5)
	require.True(t, wxerr.IsCode(err, wxerr.CodeBadResponse))
}
