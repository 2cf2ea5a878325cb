package domain

import (
	"math"
	"strconv"
)

// Immutable point of interest (an attraction, a hotel location, or a stop).
// PlaceID is the provider identifier used for de-duplication; it may be empty.
type Point struct {
	Name    string
	Lat     float64
	Lng     float64
	PlaceID string
}

// Valid reports whether the coordinates are finite and inside the WGS84 ranges.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Return coordinates as "lat,lng" for external API compatibility.
func (p Point) LatLng() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// SameAs reports whether two points share a non-empty PlaceID.
func (p Point) SameAs(o Point) bool {
	return p.PlaceID != "" && p.PlaceID == o.PlaceID
}
