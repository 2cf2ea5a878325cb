package ports

import (
	"context"
	"io"

	"globetrotter/internal/domain"
)

// Contract for place search and enrichment. Nothing in planning depends on it.
type PlaceProvider interface {
	// Return places matching free text.
	SearchText(ctx context.Context, query string) ([]domain.PlaceSummary, error)
	// Return places of a category near center, plus a page token when more exist.
	NearbyPlaces(ctx context.Context, center domain.Point, category string) ([]domain.PlaceSummary, string, error)
	// Return decorative details for a single place.
	PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error)
}

// Contract for fetching place photos by provider reference.
type PhotoProvider interface {
	// Return the image body and its content type. The caller closes the body.
	Photo(ctx context.Context, ref string) (io.ReadCloser, string, error)
}
