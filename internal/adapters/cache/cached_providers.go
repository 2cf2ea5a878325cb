package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"globetrotter/internal/domain"
	"globetrotter/internal/platform/metrics"
	"globetrotter/internal/ports"
)

// CachedHotels memoizes hotel lookups. Cache failures are logged and the
// call falls through to Next.
type CachedHotels struct {
	Next  ports.HotelProvider
	Cache ports.LookupCache
	TTL   time.Duration
}

func (c *CachedHotels) NearbyHotels(ctx context.Context, center domain.Point, radiusMeters int) ([]domain.HotelCandidate, error) {
	// Round to ~1 m so repeated plans of the same day share an entry.
	key := fmt.Sprintf("hotels:%.5f,%.5f:%d", center.Lat, center.Lng, radiusMeters)

	var cached []domain.HotelCandidate
	if lookup(ctx, c.Cache, "nearby_hotels", key, &cached) {
		return cached, nil
	}

	hotels, err := c.Next.NearbyHotels(ctx, center, radiusMeters)
	if err != nil {
		return nil, err
	}

	store(ctx, c.Cache, key, hotels, c.TTL)
	return hotels, nil
}

// CachedPlaces memoizes place details. Searches are passed through since
// their results change with time and paging.
type CachedPlaces struct {
	Next  ports.PlaceProvider
	Cache ports.LookupCache
	TTL   time.Duration
}

func (c *CachedPlaces) SearchText(ctx context.Context, query string) ([]domain.PlaceSummary, error) {
	return c.Next.SearchText(ctx, query)
}

func (c *CachedPlaces) NearbyPlaces(ctx context.Context, center domain.Point, category string) ([]domain.PlaceSummary, string, error) {
	return c.Next.NearbyPlaces(ctx, center, category)
}

func (c *CachedPlaces) PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	key := "details:" + placeID

	var cached domain.PlaceDetails
	if lookup(ctx, c.Cache, "place_details", key, &cached) {
		return cached, nil
	}

	d, err := c.Next.PlaceDetails(ctx, placeID)
	if err != nil {
		return domain.PlaceDetails{}, err
	}

	store(ctx, c.Cache, key, d, c.TTL)
	return d, nil
}

func lookup(ctx context.Context, c ports.LookupCache, op, key string, out any) bool {
	b, ok, err := c.Get(ctx, key)
	if err != nil {
		log.Printf("lookup cache read failed: key=%s err=%v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		log.Printf("lookup cache decode failed: key=%s err=%v", key, err)
		return false
	}
	metrics.ProviderCalls.WithLabelValues("cache", op, "cache_hit").Inc()
	return true
}

func store(ctx context.Context, c ports.LookupCache, key string, v any, ttl time.Duration) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("lookup cache encode failed: key=%s err=%v", key, err)
		return
	}
	if err := c.Put(ctx, key, b, ttl); err != nil {
		log.Printf("lookup cache write failed: key=%s err=%v", key, err)
	}
}
