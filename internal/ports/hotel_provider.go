package ports

import (
	"context"
	"globetrotter/internal/domain"
)

// Contract for finding overnight options near a location.
type HotelProvider interface {
	// Return lodging candidates within radiusMeters of center, in provider order.
	NearbyHotels(ctx context.Context, center domain.Point, radiusMeters int) ([]domain.HotelCandidate, error)
}
