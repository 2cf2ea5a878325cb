package domain

import (
	"fmt"
	"strings"
)

// TravelMode selects the routing profile requested from the routing provider.
type TravelMode string

const (
	Driving   TravelMode = "driving"
	Walking   TravelMode = "walking"
	Bicycling TravelMode = "bicycling"
	Transit   TravelMode = "transit"
)

// ParseTravelMode accepts any casing; an empty string means Driving.
func ParseTravelMode(s string) (TravelMode, error) {
	switch m := TravelMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return Driving, nil
	case Driving, Walking, Bicycling, Transit:
		return m, nil
	default:
		return "", &ValidationError{Field: "mode", Msg: fmt.Sprintf("unsupported travel mode %q", s)}
	}
}

// OrDefault returns Driving for the zero value.
func (m TravelMode) OrDefault() TravelMode {
	if m == "" {
		return Driving
	}
	return m
}
