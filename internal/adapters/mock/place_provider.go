package mock

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"globetrotter/internal/domain"
)

// PlaceProvider serves canned search results and details keyed by place id.
type PlaceProvider struct {
	Results   []domain.PlaceSummary
	NextToken string
	Details   map[string]domain.PlaceDetails
	Photos    map[string][]byte
	Err       error
}

func (p *PlaceProvider) SearchText(ctx context.Context, query string) ([]domain.PlaceSummary, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Results, nil
}

func (p *PlaceProvider) NearbyPlaces(ctx context.Context, center domain.Point, category string) ([]domain.PlaceSummary, string, error) {
	if p.Err != nil {
		return nil, "", p.Err
	}
	return p.Results, p.NextToken, nil
}

func (p *PlaceProvider) PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	if p.Err != nil {
		return domain.PlaceDetails{}, p.Err
	}
	d, ok := p.Details[placeID]
	if !ok {
		return domain.PlaceDetails{}, fmt.Errorf("mock places: unknown place %q", placeID)
	}
	return d, nil
}

// Photo serves Photos[ref] as a JPEG.
func (p *PlaceProvider) Photo(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	if p.Err != nil {
		return nil, "", p.Err
	}
	b, ok := p.Photos[ref]
	if !ok {
		return nil, "", fmt.Errorf("mock places: unknown photo %q", ref)
	}
	return io.NopCloser(bytes.NewReader(b)), "image/jpeg", nil
}
