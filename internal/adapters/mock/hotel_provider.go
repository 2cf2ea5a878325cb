package mock

import (
	"context"
	"fmt"
	"sync"

	"globetrotter/internal/domain"
)

// HotelProvider returns a fixed candidate list for every lookup.
// Lookups whose call number (1-based) is listed in FailOn fail instead.
// It records centers it was asked about and is safe for concurrent use.
type HotelProvider struct {
	Candidates []domain.HotelCandidate
	FailOn     map[int]bool
	// FailNear fails any lookup whose center is within 1 m of one of these points.
	FailNear []domain.Point

	mu      sync.Mutex
	calls   int
	centers []domain.Point
}

func NewHotelProvider(candidates ...domain.HotelCandidate) *HotelProvider {
	return &HotelProvider{Candidates: candidates}
}

func (p *HotelProvider) NearbyHotels(ctx context.Context, center domain.Point, radiusMeters int) ([]domain.HotelCandidate, error) {
	p.mu.Lock()
	p.calls++
	n := p.calls
	p.centers = append(p.centers, center)
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.FailOn[n] {
		return nil, fmt.Errorf("mock hotels: call %d failed", n)
	}
	for _, f := range p.FailNear {
		if domain.DistanceKm(f, center) < 0.001 {
			return nil, fmt.Errorf("mock hotels: lookup near %s failed", center.LatLng())
		}
	}

	out := make([]domain.HotelCandidate, len(p.Candidates))
	copy(out, p.Candidates)
	return out, nil
}

// Calls returns how many lookups were made.
func (p *HotelProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// Centers returns the lookup centers in call order.
func (p *HotelProvider) Centers() []domain.Point {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Point, len(p.centers))
	copy(out, p.centers)
	return out
}
