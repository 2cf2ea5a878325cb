package services

import (
	"fmt"
	"globetrotter/internal/domain"
	"math"
	"slices"
)

// Partitioner splits attractions into exactly days buckets.
// Every input point must land in exactly one bucket; buckets may be empty.
type Partitioner func(points []domain.Point, days int) ([][]domain.Point, error)

func validateDays(days int) error {
	if days < 1 {
		return &domain.ValidationError{Field: "days", Msg: fmt.Sprintf("must be at least 1, got %d", days)}
	}
	return nil
}

// PartitionRoundRobin assigns the i-th point to bucket i mod days.
//
// It ignores geography on purpose: the result is deterministic, keeps input
// order within each bucket and sizes differ by at most one.
func PartitionRoundRobin(points []domain.Point, days int) ([][]domain.Point, error) {
	if err := validateDays(days); err != nil {
		return nil, fmt.Errorf("partition round robin: %w", err)
	}

	buckets := make([][]domain.Point, days)
	for i, p := range points {
		buckets[i%days] = append(buckets[i%days], p)
	}

	return buckets, nil
}

// PartitionSweep is an opt-in geography-aware partitioner.
//
// Points are sorted by bearing around the centroid of the whole set and cut
// into contiguous chunks of ceil(n/days), so each day covers one angular
// sector. Ties keep input order. Later buckets may be shorter or empty.
func PartitionSweep(points []domain.Point, days int) ([][]domain.Point, error) {
	if err := validateDays(days); err != nil {
		return nil, fmt.Errorf("partition sweep: %w", err)
	}

	buckets := make([][]domain.Point, days)
	n := len(points)
	if n == 0 {
		return buckets, nil
	}

	center := domain.Centroid(points)
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b domain.Point) int {
		ba := bearing(center, a)
		bb := bearing(center, b)
		if ba < bb {
			return -1
		}
		if ba > bb {
			return 1
		}
		return 0
	})

	// Ceiling division: distribute points as evenly as possible across days.
	chunkSize := (n + days - 1) / days

	for di := 0; di < days; di++ {
		start := di * chunkSize
		if start >= n {
			break
		}

		end := start + chunkSize
		if end > n {
			end = n
		}
		buckets[di] = append(buckets[di], sorted[start:end]...)
	}

	return buckets, nil
}

// bearing returns the planar angle of p around center in [0, 2π).
func bearing(center, p domain.Point) float64 {
	a := math.Atan2(p.Lat-center.Lat, p.Lng-center.Lng)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
