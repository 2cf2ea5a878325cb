package services

import (
	"context"
	"fmt"

	"globetrotter/internal/domain"
)

// Session holds one user's planning state: the attraction list, the current
// itinerary and the hotel chosen for each day.
//
// A Session has a single writer and is not safe for concurrent use.
// Planning and clearing replace state wholesale.
type Session struct {
	planner   *Planner
	finalizer *RouteFinalizer

	attractions []domain.Point
	itinerary   *domain.Itinerary
	selected    map[int]domain.HotelCandidate
}

func NewSession(planner *Planner, finalizer *RouteFinalizer) *Session {
	return &Session{
		planner:   planner,
		finalizer: finalizer,
		selected:  map[int]domain.HotelCandidate{},
	}
}

// RestoreSession rebuilds a session from a plan and selections supplied by a
// client, for stateless finalization.
func RestoreSession(finalizer *RouteFinalizer, it *domain.Itinerary, selected map[int]domain.HotelCandidate) (*Session, error) {
	s := NewSession(nil, finalizer)
	s.itinerary = it
	for day, h := range selected {
		if err := s.SelectHotel(day, h); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddAttractions appends points, skipping any whose PlaceID is already present.
// It returns the number actually added.
func (s *Session) AddAttractions(points ...domain.Point) int {
	added := 0
	for _, p := range points {
		if p.PlaceID != "" && s.indexOf(p.PlaceID) >= 0 {
			continue
		}
		s.attractions = append(s.attractions, p)
		added++
	}
	return added
}

// RemoveAttraction drops the attraction with the given PlaceID. Attractions
// without a PlaceID cannot be removed by id.
func (s *Session) RemoveAttraction(placeID string) bool {
	if placeID == "" {
		return false
	}
	i := s.indexOf(placeID)
	if i < 0 {
		return false
	}
	s.attractions = append(s.attractions[:i:i], s.attractions[i+1:]...)
	return true
}

func (s *Session) Attractions() []domain.Point {
	out := make([]domain.Point, len(s.attractions))
	copy(out, s.attractions)
	return out
}

func (s *Session) Itinerary() *domain.Itinerary { return s.itinerary }

// Plan replaces the current itinerary and discards previous hotel choices.
func (s *Session) Plan(ctx context.Context, days int, partition Partitioner) (*domain.Itinerary, error) {
	if s.planner == nil {
		return nil, fmt.Errorf("session: no planner configured")
	}

	it, err := s.planner.Plan(ctx, PlanRequest{
		Attractions: s.Attractions(),
		Days:        days,
		Partitioner: partition,
	})
	if err != nil {
		return nil, err
	}

	s.itinerary = it
	s.selected = map[int]domain.HotelCandidate{}
	return it, nil
}

// SelectHotel records the overnight choice for a planned, non-empty day.
func (s *Session) SelectHotel(day int, hotel domain.HotelCandidate) error {
	plan, ok := s.itinerary.Day(day)
	if !ok {
		return &domain.ValidationError{Field: "day", Msg: fmt.Sprintf("day %d is not in the current plan", day)}
	}
	if len(plan.Places) == 0 {
		return &domain.ValidationError{Field: "day", Msg: fmt.Sprintf("day %d has no places", day)}
	}
	if !hotel.Location.Valid() {
		return &domain.ValidationError{Field: "hotel", Msg: "invalid hotel location"}
	}
	s.selected[day] = hotel
	return nil
}

// Finalize computes final routes for the current itinerary.
func (s *Session) Finalize(ctx context.Context, mode domain.TravelMode, proceedWithoutHotel bool) ([]domain.FinalDayResult, error) {
	if s.itinerary == nil {
		return nil, &domain.ValidationError{Field: "plan", Msg: "nothing planned yet"}
	}
	return s.finalizer.Finalize(ctx, s.finalizeRequest(mode, proceedWithoutHotel))
}

// FinalizeEach is Finalize with per-day delivery.
func (s *Session) FinalizeEach(ctx context.Context, mode domain.TravelMode, proceedWithoutHotel bool, fn func(domain.FinalDayResult) error) error {
	if s.itinerary == nil {
		return &domain.ValidationError{Field: "plan", Msg: "nothing planned yet"}
	}
	return s.finalizer.FinalizeEach(ctx, s.finalizeRequest(mode, proceedWithoutHotel), fn)
}

// Clear resets the session to empty.
func (s *Session) Clear() {
	s.attractions = nil
	s.itinerary = nil
	s.selected = map[int]domain.HotelCandidate{}
}

func (s *Session) finalizeRequest(mode domain.TravelMode, proceed bool) FinalizeRequest {
	selected := make(map[int]domain.HotelCandidate, len(s.selected))
	for k, v := range s.selected {
		selected[k] = v
	}
	return FinalizeRequest{
		Days:                s.itinerary.Days,
		Selected:            selected,
		Mode:                mode,
		ProceedWithoutHotel: proceed,
	}
}

func (s *Session) indexOf(placeID string) int {
	for i, a := range s.attractions {
		if a.PlaceID == placeID {
			return i
		}
	}
	return -1
}
