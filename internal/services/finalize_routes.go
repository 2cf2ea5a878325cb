package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	"globetrotter/internal/domain"
	"globetrotter/internal/platform/metrics"
	"globetrotter/internal/platform/obs"
	"globetrotter/internal/ports"
)

// DefaultRoutePause spaces consecutive routing calls to stay under provider QPS.
const DefaultRoutePause = 200 * time.Millisecond

// ErrHotelRequired is returned when a day has no overnight location and the
// caller did not allow routing without one.
var ErrHotelRequired = &domain.ValidationError{Field: "selected_hotels", Msg: "hotel required for every non-empty day"}

var markupRe = regexp.MustCompile(`<[^>]*>`)

type FinalizeRequest struct {
	Days []domain.DayPlan
	// Selected maps a 1-based day to the user's hotel choice.
	Selected map[int]domain.HotelCandidate
	Mode     domain.TravelMode
	// ProceedWithoutHotel routes days lacking any hotel from their first stop.
	ProceedWithoutHotel bool
}

// RouteFinalizer computes road routes for a confirmed itinerary, one day at
// a time, falling back to straight-line totals when routing fails.
type RouteFinalizer struct {
	Routing ports.RoutingProvider
	Pause   time.Duration
}

func NewRouteFinalizer(routing ports.RoutingProvider, pause time.Duration) *RouteFinalizer {
	return &RouteFinalizer{Routing: routing, Pause: pause}
}

// Finalize returns one result per day in day order.
// On cancellation it returns the days finished so far together with ctx.Err().
func (f *RouteFinalizer) Finalize(ctx context.Context, req FinalizeRequest) ([]domain.FinalDayResult, error) {
	out := make([]domain.FinalDayResult, 0, len(req.Days))
	err := f.FinalizeEach(ctx, req, func(r domain.FinalDayResult) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

// FinalizeEach is Finalize with results delivered to fn as each day
// completes. An error from fn stops processing and is returned.
func (f *RouteFinalizer) FinalizeEach(ctx context.Context, req FinalizeRequest, fn func(domain.FinalDayResult) error) (err error) {
	ctx, done := obs.Start(ctx, "finalize_routes")
	defer done(&err)

	hotels, err := resolveHotels(req)
	if err != nil {
		return err
	}

	called := false
	for i, day := range req.Days {
		if err := ctx.Err(); err != nil {
			return err
		}

		if len(day.Places) > 0 && called {
			if err := f.wait(ctx); err != nil {
				return err
			}
		}

		res, err := f.finalizeDay(ctx, day, hotels[i], req.Mode)
		if err != nil {
			return err
		}
		if len(day.Places) > 0 {
			called = true
		}

		if err := fn(res); err != nil {
			return err
		}
	}

	return nil
}

// resolveHotels moves every day from NeedsHotel to HotelChosen, before any
// provider call is made. A nil entry means "anchor at the first stop".
func resolveHotels(req FinalizeRequest) ([]*domain.HotelCandidate, error) {
	hotels := make([]*domain.HotelCandidate, len(req.Days))
	for i, day := range req.Days {
		if h, ok := req.Selected[day.Day]; ok {
			hotels[i] = &h
			continue
		}
		if day.SuggestedHotel != nil {
			h := *day.SuggestedHotel
			hotels[i] = &h
			continue
		}
		if len(day.Places) > 0 && !req.ProceedWithoutHotel {
			return nil, fmt.Errorf("day %d: %w", day.Day, ErrHotelRequired)
		}
	}
	return hotels, nil
}

func (f *RouteFinalizer) wait(ctx context.Context) error {
	if f.Pause <= 0 {
		return nil
	}
	t := time.NewTimer(f.Pause)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// finalizeDay only fails when ctx ends during the routing call; provider
// failures are absorbed by the straight-line fallback.
func (f *RouteFinalizer) finalizeDay(ctx context.Context, day domain.DayPlan, hotel *domain.HotelCandidate, mode domain.TravelMode) (domain.FinalDayResult, error) {
	res := domain.FinalDayResult{
		Day:   day.Day,
		State: domain.HotelChosen,
		Stops: []domain.RouteStop{},
		Steps: []domain.RouteStep{},
		Hotel: hotel,
	}

	if len(day.Places) == 0 {
		zero := 0.0
		res.State = domain.RouteComputed
		res.DurationHours = &zero
		return res, nil
	}

	anchor := day.Places[0]
	if hotel != nil {
		anchor = hotel.Location
	}

	res.State = domain.RouteRequested
	route, err := f.route(ctx, ports.RouteRequest{
		Origin:            anchor,
		Destination:       anchor,
		Waypoints:         day.Places,
		OptimizeWaypoints: true,
		Mode:              mode,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.FinalDayResult{}, ctxErr
		}
		metrics.RouteFallbacks.Inc()
		log.Printf("req_id=%s op=finalize_routes day=%d stage=route fallback=straight_line err=%v", obs.RequestID(ctx), day.Day, err)
		return approximate(res, day.Places), nil
	}

	return computed(res, day.Places, route), nil
}

func (f *RouteFinalizer) route(ctx context.Context, req ports.RouteRequest) (ports.RouteResult, error) {
	if f.Routing == nil {
		return ports.RouteResult{}, errors.New("no routing provider configured")
	}
	r, err := f.Routing.Route(ctx, req)
	if err != nil {
		return ports.RouteResult{}, err
	}
	if len(r.Legs) == 0 {
		return ports.RouteResult{}, ports.ErrNoRoute
	}
	return r, nil
}

func computed(res domain.FinalDayResult, places []domain.Point, route ports.RouteResult) domain.FinalDayResult {
	meters, seconds := 0, 0
	for _, leg := range route.Legs {
		meters += leg.DistanceMeters
		seconds += leg.DurationSeconds
		for _, s := range leg.Steps {
			res.Steps = append(res.Steps, domain.RouteStep{
				Instruction: stripMarkup(s.Instruction),
				Distance:    s.DistanceText,
				Duration:    s.DurationText,
			})
		}
	}

	hours := round(float64(seconds)/3600, 2)
	res.State = domain.RouteComputed
	res.DurationHours = &hours
	res.DistanceKm = round(float64(meters)/1000, 1)

	order := route.WaypointOrder
	if !isPermutation(order, len(places)) {
		order = identity(len(places))
	}
	res.Stops = labelStops(places, order)

	return res
}

func approximate(res domain.FinalDayResult, places []domain.Point) domain.FinalDayResult {
	total := 0.0
	for i := 1; i < len(places); i++ {
		total += domain.DistanceKm(places[i-1], places[i])
	}

	res.State = domain.RouteApproximated
	res.DurationHours = nil
	res.DistanceKm = round(total, 1)
	res.Stops = labelStops(places, identity(len(places)))

	return res
}

func labelStops(places []domain.Point, order []int) []domain.RouteStop {
	stops := make([]domain.RouteStop, 0, len(order))
	for i, idx := range order {
		stops = append(stops, domain.RouteStop{Label: StopLabel(i), Place: places[idx]})
	}
	return stops
}

func stripMarkup(s string) string {
	return strings.TrimSpace(html.UnescapeString(markupRe.ReplaceAllString(s, "")))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
