package models

import (
	"time"
)

// ForecastDay represents one day of the daily forecast
type ForecastDay struct {
	Date          time.Time `json:"date"`          // midnight, local to the location
	ConditionCode int       `json:"conditionCode"` // WMO weather code
	TempMax       float64   `json:"tempMax"`       // daily high
	TempMin       float64   `json:"tempMin"`       // daily low
	Precipitation float64   `json:"precipitation"` // mm or inches
	Sunrise       time.Time `json:"sunrise"`
	Sunset        time.Time `json:"sunset"`
}

// ForecastBundle represents one provider response: current conditions plus
// the daily forecast, in chronological order.
type ForecastBundle struct {
	Provider string            `json:"provider"` // weather data provider name
	Location Location          `json:"location"` // resolved location
	Units    Units             `json:"units"`    // unit system the values are in
	Current  CurrentConditions `json:"current"`
	Days     []ForecastDay     `json:"days"`
	Updated  time.Time         `json:"updated"` // when this bundle was fetched
}
