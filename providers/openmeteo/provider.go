package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-cli/datasource"
	"weather-cli/models"
	"weather-cli/wxerr"
)

// Time layouts used by the Open-Meteo forecast API with timeformat=iso8601.
// Timestamps are local to the requested location and carry no zone suffix.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
)

// ForecastClient fetches current conditions and daily forecasts from the
// Open-Meteo forecast API
type ForecastClient struct {
	baseURL string
	client  *http.Client
}

// Ensure ForecastClient implements datasource.ForecastProvider
var _ datasource.ForecastProvider = (*ForecastClient)(nil)

// NewForecastClient creates a new Open-Meteo forecast client
func NewForecastClient(baseURL string, timeout time.Duration) *ForecastClient {
	if baseURL == "" {
		baseURL = datasource.DefaultForecastURL
	}
	return &ForecastClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the name of this provider
func (f *ForecastClient) Name() string {
	return "Open-Meteo"
}

// forecastResponse represents the API response structure
type forecastResponse struct {
	Current *struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature_2m"`
		Humidity      int     `json:"relative_humidity_2m"`
		ApparentTemp  float64 `json:"apparent_temperature"`
		WeatherCode   int     `json:"weather_code"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WindDirection float64 `json:"wind_direction_10m"`
	} `json:"current"`
	Daily *struct {
		Time          []string  `json:"time"`
		WeatherCode   []int     `json:"weather_code"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		Precipitation []float64 `json:"precipitation_sum"`
		Sunrise       []string  `json:"sunrise"`
		Sunset        []string  `json:"sunset"`
	} `json:"daily"`
}

// FetchForecast fetches current conditions plus a daily forecast for the
// given location. One request covers both; no retries are attempted.
func (f *ForecastClient) FetchForecast(ctx context.Context, loc models.Location, units models.Units, days int) (models.ForecastBundle, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	params.Set("current", strings.Join([]string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"weather_code",
		"wind_speed_10m",
		"wind_direction_10m",
	}, ","))
	params.Set("daily", strings.Join([]string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"sunrise",
		"sunset",
	}, ","))
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(days))

	// The API converts values upstream; display code only switches labels.
	if units == models.Imperial {
		params.Set("temperature_unit", "fahrenheit")
		params.Set("wind_speed_unit", "mph")
		params.Set("precipitation_unit", "inch")
	}

	reqURL := f.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.ForecastBundle{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return models.ForecastBundle{}, wxerr.Wrap(wxerr.CodeNetwork, "weather request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ForecastBundle{}, wxerr.New(wxerr.CodeBadResponse,
			fmt.Sprintf("weather API returned non-200 status: %d", resp.StatusCode))
	}

	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ForecastBundle{}, wxerr.Wrap(wxerr.CodeNetwork, "failed to read weather response", err)
	}

	var fcResp forecastResponse
	if err := json.Unmarshal(rawData, &fcResp); err != nil {
		return models.ForecastBundle{}, wxerr.Wrap(wxerr.CodeBadResponse, "failed to parse weather response", err)
	}

	if fcResp.Current == nil {
		return models.ForecastBundle{}, wxerr.New(wxerr.CodeBadResponse, "weather response missing current conditions")
	}
	if fcResp.Daily == nil {
		return models.ForecastBundle{}, wxerr.New(wxerr.CodeBadResponse, "weather response missing daily forecast")
	}

	current, err := convertCurrent(fcResp)
	if err != nil {
		return models.ForecastBundle{}, err
	}

	forecastDays, err := convertDaily(fcResp, days)
	if err != nil {
		return models.ForecastBundle{}, err
	}

	return models.ForecastBundle{
		Provider: f.Name(),
		Location: loc,
		Units:    units,
		Current:  current,
		Days:     forecastDays,
		Updated:  time.Now(),
	}, nil
}

func convertCurrent(fcResp forecastResponse) (models.CurrentConditions, error) {
	cur := fcResp.Current

	observed, err := time.Parse(dateTimeLayout, cur.Time)
	if err != nil {
		return models.CurrentConditions{}, wxerr.Wrap(wxerr.CodeBadResponse,
			fmt.Sprintf("invalid current observation time %q", cur.Time), err)
	}

	return models.CurrentConditions{
		Temperature:   cur.Temperature,
		ApparentTemp:  cur.ApparentTemp,
		Humidity:      cur.Humidity,
		WindSpeed:     cur.WindSpeed,
		WindDirection: cur.WindDirection,
		ConditionCode: cur.WeatherCode,
		Time:          observed,
	}, nil
}

// convertDaily zips the parallel daily arrays into ForecastDay records.
// Upstream may supply fewer days than requested; never more are returned.
func convertDaily(fcResp forecastResponse, days int) ([]models.ForecastDay, error) {
	daily := fcResp.Daily

	n := len(daily.Time)
	for _, l := range []int{
		len(daily.WeatherCode),
		len(daily.TempMax),
		len(daily.TempMin),
		len(daily.Precipitation),
		len(daily.Sunrise),
		len(daily.Sunset),
	} {
		if l != n {
			return nil, wxerr.New(wxerr.CodeBadResponse, "daily forecast arrays have mismatched lengths")
		}
	}
	if n > days {
		n = days
	}

	forecastDays := make([]models.ForecastDay, 0, n)
	for i := 0; i < n; i++ {
		date, err := time.Parse(dateLayout, daily.Time[i])
		if err != nil {
			return nil, wxerr.Wrap(wxerr.CodeBadResponse,
				fmt.Sprintf("invalid forecast date %q", daily.Time[i]), err)
		}
		sunrise, err := time.Parse(dateTimeLayout, daily.Sunrise[i])
		if err != nil {
			return nil, wxerr.Wrap(wxerr.CodeBadResponse,
				fmt.Sprintf("invalid sunrise time %q", daily.Sunrise[i]), err)
		}
		sunset, err := time.Parse(dateTimeLayout, daily.Sunset[i])
		if err != nil {
			return nil, wxerr.Wrap(wxerr.CodeBadResponse,
				fmt.Sprintf("invalid sunset time %q", daily.Sunset[i]), err)
		}

		forecastDays = append(forecastDays, models.ForecastDay{
			Date:          date,
			ConditionCode: daily.WeatherCode[i],
			TempMax:       daily.TempMax[i],
			TempMin:       daily.TempMin[i],
			Precipitation: daily.Precipitation[i],
			Sunrise:       sunrise,
			Sunset:        sunset,
		})
	}

	return forecastDays, nil
}
