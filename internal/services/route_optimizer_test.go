package services

import (
	"math/rand"
	"slices"
	"testing"

	"globetrotter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStopsDegenerate(t *testing.T) {
	assert.Equal(t, []int{}, OrderStops(nil))
	assert.Equal(t, []int{0}, OrderStops([]domain.Point{{Lat: 1, Lng: 1}}))
}

func TestOrderStopsSquarePerimeter(t *testing.T) {
	points := []domain.Point{
		{Name: "A", Lat: 0, Lng: 0},
		{Name: "B", Lat: 0, Lng: 1},
		{Name: "C", Lat: 1, Lng: 1},
		{Name: "D", Lat: 1, Lng: 0},
	}

	order := OrderStops(points)
	requirePermutation(t, order, len(points))

	m := BuildDistanceMatrix(points)
	tour := m.PathLength(order) + m[order[len(order)-1]][order[0]]
	assert.InDelta(t, 4*111.19, tour, 0.5)
}

func TestTwoOptUncrossesPath(t *testing.T) {
	points := []domain.Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 0, Lng: 2},
		{Lat: 0, Lng: 3},
	}
	m := BuildDistanceMatrix(points)

	got := TwoOpt([]int{0, 2, 1, 3}, m)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestTwoOptNeverWorseThanNearestNeighbor(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(20)
		points := make([]domain.Point, n)
		for i := range points {
			points[i] = domain.Point{Lat: 48 + rng.Float64(), Lng: 2 + rng.Float64()}
		}
		m := BuildDistanceMatrix(points)

		seed := NearestNeighborOrder(m, rng.Intn(n))
		before := m.PathLength(seed)
		after := m.PathLength(TwoOpt(slices.Clone(seed), m))

		require.LessOrEqual(t, after, before+1e-9, "trial %d", trial)
	}
}

func TestOrderStopsStartsNearCentroid(t *testing.T) {
	points := []domain.Point{
		{Name: "far-west", Lat: 0, Lng: -2},
		{Name: "middle", Lat: 0, Lng: 0.1},
		{Name: "far-east", Lat: 0, Lng: 2},
	}

	// Start is fixed at the centroid-nearest point; with three stops 2-opt
	// has no interior edge pair to swap.
	assert.Equal(t, []int{1, 2, 0}, OrderStops(points))
}

func TestNearestNeighborTiesPickFirst(t *testing.T) {
	points := []domain.Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 0, Lng: -1},
	}
	m := BuildDistanceMatrix(points)

	assert.Equal(t, []int{0, 1, 2}, NearestNeighborOrder(m, 0))
}

func TestBuildDistanceMatrix(t *testing.T) {
	assert.Empty(t, BuildDistanceMatrix(nil))

	points := []domain.Point{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}}
	m := BuildDistanceMatrix(points)
	for i := range m {
		assert.Zero(t, m[i][i])
		for j := range m {
			assert.Equal(t, m[i][j], m[j][i])
		}
	}
}

func requirePermutation(t *testing.T, order []int, n int) {
	t.Helper()
	require.Len(t, order, n)
	sorted := slices.Clone(order)
	slices.Sort(sorted)
	for i, v := range sorted {
		require.Equal(t, i, v)
	}
}
