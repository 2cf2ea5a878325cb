package services

import (
	"context"
	"errors"
	"testing"

	"globetrotter/internal/adapters/mock"
	"globetrotter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() (*Session, *mock.RoutingProvider) {
	router := mock.NewStraightLineRouter(40)
	planner := NewPlanner(mock.NewHotelProvider(hotelsAlongEquator(3)...))
	return NewSession(planner, NewRouteFinalizer(router, 0)), router
}

func TestSessionAttractionsDeduplicateByPlaceID(t *testing.T) {
	s, _ := newTestSession()

	added := s.AddAttractions(fiveAttractions()...)
	assert.Equal(t, 5, added)

	added = s.AddAttractions(domain.Point{Name: "a again", PlaceID: "a"}, domain.Point{Name: "no id"}, domain.Point{Name: "no id"})
	assert.Equal(t, 2, added)
	assert.Len(t, s.Attractions(), 7)

	assert.True(t, s.RemoveAttraction("c"))
	assert.False(t, s.RemoveAttraction("c"))
	assert.NotContains(t, names(s.Attractions()), "c")

	assert.False(t, s.RemoveAttraction(""))
	assert.Len(t, s.Attractions(), 6)
}

func TestSessionPlanSelectFinalize(t *testing.T) {
	s, router := newTestSession()
	s.AddAttractions(fiveAttractions()...)

	it, err := s.Plan(context.Background(), 2, nil)
	require.NoError(t, err)
	require.Len(t, it.Days, 2)

	chosen := it.Days[1].HotelAlternatives[0]
	require.NoError(t, s.SelectHotel(2, chosen))

	res, err := s.Finalize(context.Background(), domain.Driving, false)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, it.Days[0].SuggestedHotel.Name, res[0].Hotel.Name)
	assert.Equal(t, chosen.Name, res[1].Hotel.Name)
	assert.Equal(t, chosen.Location, router.Requests()[1].Origin)
}

func TestSessionReplanClearsSelections(t *testing.T) {
	s, _ := newTestSession()
	s.AddAttractions(fiveAttractions()...)

	it, err := s.Plan(context.Background(), 1, nil)
	require.NoError(t, err)
	require.NoError(t, s.SelectHotel(1, it.Days[0].HotelAlternatives[0]))

	_, err = s.Plan(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, s.finalizeRequest(domain.Driving, false).Selected)
}

func TestSessionSelectHotelValidation(t *testing.T) {
	s, _ := newTestSession()
	s.AddAttractions(fiveAttractions()[:1]...)

	_, err := s.Plan(context.Background(), 2, nil)
	require.NoError(t, err)

	var ve *domain.ValidationError
	assert.True(t, errors.As(s.SelectHotel(3, testHotel), &ve))
	assert.True(t, errors.As(s.SelectHotel(2, testHotel), &ve), "day 2 is empty")
	assert.NoError(t, s.SelectHotel(1, testHotel))
}

func TestSessionClear(t *testing.T) {
	s, _ := newTestSession()
	s.AddAttractions(fiveAttractions()...)
	_, err := s.Plan(context.Background(), 1, nil)
	require.NoError(t, err)

	s.Clear()
	assert.Empty(t, s.Attractions())
	assert.Nil(t, s.Itinerary())

	_, err = s.Finalize(context.Background(), domain.Driving, false)
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestRestoreSession(t *testing.T) {
	router := mock.NewStraightLineRouter(40)
	it := &domain.Itinerary{Days: []domain.DayPlan{bangaloreDay(1)}}

	s, err := RestoreSession(NewRouteFinalizer(router, 0), it, map[int]domain.HotelCandidate{1: testHotel})
	require.NoError(t, err)

	res, err := s.Finalize(context.Background(), domain.Transit, false)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, domain.RouteComputed, res[0].State)

	_, err = RestoreSession(NewRouteFinalizer(router, 0), it, map[int]domain.HotelCandidate{4: testHotel})
	assert.Error(t, err)
}
