package render

import (
	"fmt"
	"math"
	"time"

	"weather-cli/models"
)

// cardinalDirections are the 16-point compass labels, clockwise from north.
var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Cardinal converts a wind direction in degrees to a compass label.
func Cardinal(degrees float64) string {
	index := int(math.Round(degrees/22.5)) % 16
	if index < 0 {
		index += 16
	}
	return cardinalDirections[index]
}

// FormatTemp renders a temperature with one decimal and the unit symbol.
func FormatTemp(value float64, units models.Units) string {
	return fmt.Sprintf("%.1f%s", value, units.TempSymbol())
}

// FormatWind renders wind speed and compass direction, e.g. "14.2 km/h NNW".
func FormatWind(speed, degrees float64, units models.Units) string {
	return fmt.Sprintf("%.1f %s %s", speed, units.WindUnit(), Cardinal(degrees))
}

// FormatPrecip renders a precipitation amount with its unit label.
func FormatPrecip(amount float64, units models.Units) string {
	return fmt.Sprintf("%.1f %s", amount, units.PrecipUnit())
}

// formatClock renders a 12-hour time like "6:45 AM".
func formatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// formatDate renders a short forecast date like "Mon 01/02".
func formatDate(t time.Time) string {
	return t.Format("Mon 01/02")
}
