package services

import "globetrotter/internal/domain"

// OrderStops returns a visiting order for one day's points as a permutation
// of their indices.
//
// The path starts at the point closest to the day's centroid, is built with
// nearest-neighbor construction and then refined with 2-opt. The path is
// open: the return leg to the overnight location is left to the routing
// provider.
func OrderStops(points []domain.Point) []int {
	n := len(points)
	if n == 0 {
		return []int{}
	}
	if n == 1 {
		return []int{0}
	}

	m := BuildDistanceMatrix(points)
	start := nearestToCentroid(points)

	order := NearestNeighborOrder(m, start)
	return TwoOpt(order, m)
}

// OrderPlaces returns the points reordered by OrderStops.
func OrderPlaces(points []domain.Point) []domain.Point {
	order := OrderStops(points)
	out := make([]domain.Point, 0, len(order))
	for _, idx := range order {
		out = append(out, points[idx])
	}
	return out
}

// nearestToCentroid picks the first point with minimum distance to the centroid.
func nearestToCentroid(points []domain.Point) int {
	center := domain.Centroid(points)

	start := 0
	best := domain.DistanceKm(points[0], center)
	for i := 1; i < len(points); i++ {
		if d := domain.DistanceKm(points[i], center); d < best {
			best = d
			start = i
		}
	}

	return start
}
