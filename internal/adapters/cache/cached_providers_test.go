package cache

import (
	"context"
	"testing"
	"time"

	"globetrotter/internal/adapters/mock"
	"globetrotter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedHotelsServesRepeatLookupsFromCache(t *testing.T) {
	store, _ := newTestRedisCache(t)
	rating := 4.2
	next := mock.NewHotelProvider(domain.HotelCandidate{Name: "Inn", PlaceID: "i", Rating: &rating, Location: domain.Point{Lat: 1, Lng: 2}})

	c := &CachedHotels{Next: next, Cache: store, TTL: time.Hour}
	center := domain.Point{Lat: 1.000001, Lng: 2}

	first, err := c.NearbyHotels(context.Background(), center, 7000)
	require.NoError(t, err)
	second, err := c.NearbyHotels(context.Background(), center, 7000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.Calls())

	_, err = c.NearbyHotels(context.Background(), center, 8000)
	require.NoError(t, err)
	assert.Equal(t, 2, next.Calls(), "radius is part of the key")
}

func TestCachedHotelsDoesNotCacheFailures(t *testing.T) {
	store, _ := newTestRedisCache(t)
	next := mock.NewHotelProvider()
	next.FailOn = map[int]bool{1: true}

	c := &CachedHotels{Next: next, Cache: store, TTL: time.Hour}

	_, err := c.NearbyHotels(context.Background(), domain.Point{}, 7000)
	require.Error(t, err)
	_, err = c.NearbyHotels(context.Background(), domain.Point{}, 7000)
	require.NoError(t, err)
	assert.Equal(t, 2, next.Calls())
}

func TestCachedHotelsFallsThroughWhenCacheDown(t *testing.T) {
	store, mr := newTestRedisCache(t)
	mr.Close()
	next := mock.NewHotelProvider(domain.HotelCandidate{Name: "Inn"})

	c := &CachedHotels{Next: next, Cache: store, TTL: time.Hour}
	hotels, err := c.NearbyHotels(context.Background(), domain.Point{}, 7000)
	require.NoError(t, err)
	assert.Len(t, hotels, 1)
}

func TestCachedPlacesDetails(t *testing.T) {
	store, _ := newTestRedisCache(t)
	next := &mock.PlaceProvider{Details: map[string]domain.PlaceDetails{
		"p": {Name: "Louvre", Description: "Museum"},
	}}

	c := &CachedPlaces{Next: next, Cache: store, TTL: time.Hour}
	d, err := c.PlaceDetails(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "Louvre", d.Name)

	delete(next.Details, "p")
	d, err = c.PlaceDetails(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "Museum", d.Description)
}
