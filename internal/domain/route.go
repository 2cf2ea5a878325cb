package domain

import "fmt"

// RouteState tracks a day through finalization:
// NeedsHotel -> HotelChosen -> RouteRequested -> RouteComputed | RouteApproximated.
type RouteState int

const (
	NeedsHotel RouteState = iota
	HotelChosen
	RouteRequested
	RouteComputed
	RouteApproximated
)

func (s RouteState) String() string {
	switch s {
	case NeedsHotel:
		return "needs_hotel"
	case HotelChosen:
		return "hotel_chosen"
	case RouteRequested:
		return "route_requested"
	case RouteComputed:
		return "route_computed"
	case RouteApproximated:
		return "route_approximated"
	default:
		return fmt.Sprintf("route_state(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible.
func (s RouteState) Terminal() bool {
	return s == RouteComputed || s == RouteApproximated
}

// A single turn-by-turn instruction with markup removed.
type RouteStep struct {
	Instruction string
	Distance    string
	Duration    string
}

// A labelled stop in final visiting order.
type RouteStop struct {
	Label string
	Place Point
}

// Represents the finalized route for one day.
// DurationHours is nil when only the straight-line approximation is available.
// Hotel is nil when the day was routed without a fixed overnight anchor.
type FinalDayResult struct {
	Day           int
	State         RouteState
	DurationHours *float64
	DistanceKm    float64
	Stops         []RouteStop
	Steps         []RouteStep
	Hotel         *HotelCandidate
}
