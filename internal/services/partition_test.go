package services

import (
	"errors"
	"testing"

	"globetrotter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedPoints(names ...string) []domain.Point {
	out := make([]domain.Point, len(names))
	for i, n := range names {
		out[i] = domain.Point{Name: n, Lat: float64(i), Lng: float64(i % 3), PlaceID: n}
	}
	return out
}

func TestPartitionRoundRobinFiveIntoTwo(t *testing.T) {
	buckets, err := PartitionRoundRobin(namedPoints("a", "b", "c", "d", "e"), 2)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, []string{"a", "c", "e"}, names(buckets[0]))
	assert.Equal(t, []string{"b", "d"}, names(buckets[1]))
}

func TestPartitionSizesWithinFloorAndCeil(t *testing.T) {
	for n := 0; n <= 13; n++ {
		for days := 1; days <= 6; days++ {
			points := make([]domain.Point, n)
			buckets, err := PartitionRoundRobin(points, days)
			require.NoError(t, err)
			require.Len(t, buckets, days)

			total := 0
			for _, b := range buckets {
				assert.GreaterOrEqual(t, len(b), n/days)
				assert.LessOrEqual(t, len(b), (n+days-1)/days)
				total += len(b)
			}
			assert.Equal(t, n, total)
		}
	}
}

func TestPartitionMoreDaysThanPoints(t *testing.T) {
	buckets, err := PartitionRoundRobin(namedPoints("a", "b"), 4)
	require.NoError(t, err)
	assert.Len(t, buckets[0], 1)
	assert.Len(t, buckets[1], 1)
	assert.Empty(t, buckets[2])
	assert.Empty(t, buckets[3])
}

func TestPartitionRejectsNonPositiveDays(t *testing.T) {
	for _, p := range []Partitioner{PartitionRoundRobin, PartitionSweep} {
		_, err := p(namedPoints("a"), 0)
		var ve *domain.ValidationError
		assert.True(t, errors.As(err, &ve))
	}
}

func TestPartitionSweepCoversInput(t *testing.T) {
	input := namedPoints("a", "b", "c", "d", "e", "f", "g")
	buckets, err := PartitionSweep(input, 3)
	require.NoError(t, err)
	require.Len(t, buckets, 3)

	var got []string
	for _, b := range buckets {
		assert.LessOrEqual(t, len(b), 3)
		got = append(got, names(b)...)
	}
	assert.ElementsMatch(t, names(input), got)
}

func names(points []domain.Point) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.Name)
	}
	return out
}
