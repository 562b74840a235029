package models

import (
	"time"
)

// CurrentConditions represents the current weather at a location
type CurrentConditions struct {
	Temperature   float64   `json:"temperature"`   // in the requested unit system
	ApparentTemp  float64   `json:"apparentTemp"`  // "feels like" temperature
	Humidity      int       `json:"humidity"`      // relative humidity, percent
	WindSpeed     float64   `json:"windSpeed"`     // km/h or mph
	WindDirection float64   `json:"windDirection"` // wind direction in degrees
	ConditionCode int       `json:"conditionCode"` // WMO weather code
	Time          time.Time `json:"time"`          // observation time
}
