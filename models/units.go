package models

// Units selects the measurement system used for requests and display.
type Units int

const (
	// Metric is the default: Celsius, km/h, millimeters.
	Metric Units = iota
	// Imperial: Fahrenheit, mph, inches.
	Imperial
)

// TempSymbol returns the temperature suffix for this unit system.
func (u Units) TempSymbol() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// WindUnit returns the wind speed unit label.
func (u Units) WindUnit() string {
	if u == Imperial {
		return "mph"
	}
	return "km/h"
}

// PrecipUnit returns the precipitation amount unit label.
func (u Units) PrecipUnit() string {
	if u == Imperial {
		return "in"
	}
	return "mm"
}

func (u Units) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}
