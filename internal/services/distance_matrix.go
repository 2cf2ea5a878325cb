package services

import "globetrotter/internal/domain"

// DistanceMatrix holds pairwise great-circle distances in kilometers.
// It is symmetric with a zero diagonal and is rebuilt for every day.
type DistanceMatrix [][]float64

// BuildDistanceMatrix computes all pairwise distances for points in O(n²).
// An empty input yields an empty matrix.
func BuildDistanceMatrix(points []domain.Point) DistanceMatrix {
	n := len(points)
	m := make(DistanceMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := domain.DistanceKm(points[i], points[j])
			m[i][j] = d
			m[j][i] = d
		}
	}

	return m
}

// PathLength sums consecutive edges of order without a closing edge.
func (m DistanceMatrix) PathLength(order []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		total += m[order[i]][order[i+1]]
	}
	return total
}
