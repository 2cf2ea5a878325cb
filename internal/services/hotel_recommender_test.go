package services

import (
	"errors"
	"fmt"
	"testing"

	"globetrotter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hotelsAlongEquator(n int) []domain.HotelCandidate {
	out := make([]domain.HotelCandidate, n)
	for i := range out {
		// Farther hotels first so ranking has to reorder them.
		out[i] = domain.HotelCandidate{
			Name:     fmt.Sprintf("h%d", i),
			Location: domain.Point{Lat: 0, Lng: float64(n-i) * 0.01},
		}
	}
	return out
}

func TestRankHotelsSortsByMeanDistance(t *testing.T) {
	places := []domain.Point{{Lat: 0, Lng: 0}, {Lat: 0.01, Lng: 0}}
	candidates := hotelsAlongEquator(4)

	ranked, err := RankHotels(places, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].AvgDistanceKm, ranked[i].AvgDistanceKm)
	}
	assert.Equal(t, "h3", ranked[0].Name)
	assert.Zero(t, candidates[0].AvgDistanceKm, "input must not be modified")

	want := (domain.DistanceKm(places[0], ranked[0].Location) + domain.DistanceKm(places[1], ranked[0].Location)) / 2
	assert.InDelta(t, want, ranked[0].AvgDistanceKm, 1e-9)
}

func TestRankHotelsStableOnTies(t *testing.T) {
	loc := domain.Point{Lat: 1, Lng: 1}
	candidates := []domain.HotelCandidate{
		{Name: "first", Location: loc},
		{Name: "second", Location: loc},
		{Name: "third", Location: loc},
	}

	ranked, err := RankHotels([]domain.Point{{Lat: 0, Lng: 0}}, candidates)
	require.NoError(t, err)
	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
	assert.Equal(t, "third", ranked[2].Name)
}

func TestRankHotelsEmptyDay(t *testing.T) {
	_, err := RankHotels(nil, hotelsAlongEquator(2))
	assert.True(t, errors.Is(err, ErrEmptyDay))
}

func TestSuggestHotelsAlternativesLength(t *testing.T) {
	places := []domain.Point{{Lat: 0, Lng: 0}}

	for _, n := range []int{0, 1, 2, 6, 7, 12} {
		suggested, alts, err := SuggestHotels(places, hotelsAlongEquator(n))
		require.NoError(t, err)

		if n == 0 {
			assert.Nil(t, suggested)
			assert.Empty(t, alts)
			continue
		}
		require.NotNil(t, suggested)
		assert.Equal(t, "h"+fmt.Sprint(n-1), suggested.Name)
		assert.Len(t, alts, min(MaxHotelAlternatives, n-1))
		for _, a := range alts {
			assert.GreaterOrEqual(t, a.AvgDistanceKm, suggested.AvgDistanceKm)
		}
	}
}
