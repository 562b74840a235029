package models

import (
	"strings"
)

// Location is a resolved place: the query that produced it plus the
// coordinates and naming returned by the geocoder. Immutable after creation.
type Location struct {
	Query     string  `json:"query"`     // original free-text lookup
	Name      string  `json:"name"`      // resolved city/town name
	Admin1    string  `json:"admin1"`    // first-level admin region (state, province)
	Country   string  `json:"country"`   // country name
	Latitude  float64 `json:"latitude"`  // decimal degrees
	Longitude float64 `json:"longitude"` // decimal degrees
}

// DisplayName joins the non-empty naming parts as "City, Region, Country".
func (l Location) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Name, l.Admin1, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
