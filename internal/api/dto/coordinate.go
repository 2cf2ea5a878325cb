package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coordinate accepts a JSON number or a numeric string. Anything else
// decodes to NaN so that the attraction is dropped by validation instead of
// failing the whole request.
type Coordinate float64

func (c *Coordinate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			*c = Coordinate(math.NaN())
			return nil
		}
	} else {
		s = string(b)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*c = Coordinate(math.NaN())
		return nil
	}
	*c = Coordinate(f)
	return nil
}

// Float returns the value, or NaN when c is nil.
func (c *Coordinate) Float() float64 {
	if c == nil {
		return math.NaN()
	}
	return float64(*c)
}

// LatLng is a plain coordinate pair in responses.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
