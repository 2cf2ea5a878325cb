package ports

import (
	"context"
	"errors"
	"globetrotter/internal/domain"
)

// ErrNoRoute is returned when the provider answers but finds no route.
var ErrNoRoute = errors.New("no route found")

// Multi-stop routing request. Origin and Destination are usually the same
// overnight location.
type RouteRequest struct {
	Origin            domain.Point
	Destination       domain.Point
	Waypoints         []domain.Point
	OptimizeWaypoints bool
	Mode              domain.TravelMode
}

// One instruction of a leg, as returned by the provider (may contain markup).
type RouteLegStep struct {
	Instruction  string
	DistanceText string
	DurationText string
}

// Travel between two consecutive stops.
type RouteLeg struct {
	DistanceMeters  int
	DurationSeconds int
	Steps           []RouteLegStep
}

// Successful routing response.
// WaypointOrder[i] is the index into RouteRequest.Waypoints visited i-th.
type RouteResult struct {
	Legs          []RouteLeg
	WaypointOrder []int
}

// Contract for exact road routing.
type RoutingProvider interface {
	// Return a route or an error; ErrNoRoute when the provider found none.
	Route(ctx context.Context, req RouteRequest) (RouteResult, error)
}
