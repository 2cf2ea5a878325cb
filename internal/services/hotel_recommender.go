package services

import (
	"errors"
	"sort"

	"globetrotter/internal/domain"
)

// MaxHotelAlternatives caps the runner-up hotels offered per day.
const MaxHotelAlternatives = 5

// ErrEmptyDay is returned when ranking hotels for a day without stops.
var ErrEmptyDay = errors.New("cannot rank hotels for a day without places")

// RankHotels scores every candidate by its mean distance to places and
// returns a new slice sorted ascending by that score. Ties keep provider order.
func RankHotels(places []domain.Point, candidates []domain.HotelCandidate) ([]domain.HotelCandidate, error) {
	if len(places) == 0 {
		return nil, ErrEmptyDay
	}

	ranked := make([]domain.HotelCandidate, len(candidates))
	copy(ranked, candidates)

	for i := range ranked {
		total := 0.0
		for _, p := range places {
			total += domain.DistanceKm(p, ranked[i].Location)
		}
		ranked[i].AvgDistanceKm = total / float64(len(places))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AvgDistanceKm < ranked[j].AvgDistanceKm
	})

	return ranked, nil
}

// SuggestHotels ranks candidates and splits them into the closest hotel and
// up to MaxHotelAlternatives runners-up. suggested is nil when there are no
// candidates.
func SuggestHotels(places []domain.Point, candidates []domain.HotelCandidate) (suggested *domain.HotelCandidate, alternatives []domain.HotelCandidate, err error) {
	ranked, err := RankHotels(places, candidates)
	if err != nil {
		return nil, nil, err
	}
	if len(ranked) == 0 {
		return nil, []domain.HotelCandidate{}, nil
	}

	first := ranked[0]
	end := min(len(ranked), 1+MaxHotelAlternatives)

	return &first, ranked[1:end], nil
}
