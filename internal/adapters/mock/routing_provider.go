package mock

import (
	"context"
	"math"
	"sync"

	"globetrotter/internal/domain"
	"globetrotter/internal/ports"
)

// RoutingProvider answers with Result, or with Err when set.
// When Result has no legs and Err is nil it synthesizes a route from
// straight-line distances at SpeedKmh, visiting waypoints in input order.
type RoutingProvider struct {
	Result   ports.RouteResult
	Err      error
	SpeedKmh float64

	mu       sync.Mutex
	requests []ports.RouteRequest
}

func NewStraightLineRouter(speedKmh float64) *RoutingProvider {
	return &RoutingProvider{SpeedKmh: speedKmh}
}

func (p *RoutingProvider) Route(ctx context.Context, req ports.RouteRequest) (ports.RouteResult, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ports.RouteResult{}, err
	}
	if p.Err != nil {
		return ports.RouteResult{}, p.Err
	}
	if len(p.Result.Legs) > 0 {
		return p.Result, nil
	}

	return p.straightLine(req), nil
}

func (p *RoutingProvider) straightLine(req ports.RouteRequest) ports.RouteResult {
	speed := p.SpeedKmh
	if speed <= 0 {
		speed = 30
	}

	stops := make([]domain.Point, 0, len(req.Waypoints)+2)
	stops = append(stops, req.Origin)
	stops = append(stops, req.Waypoints...)
	stops = append(stops, req.Destination)

	res := ports.RouteResult{WaypointOrder: make([]int, len(req.Waypoints))}
	for i := range res.WaypointOrder {
		res.WaypointOrder[i] = i
	}
	for i := 1; i < len(stops); i++ {
		km := domain.DistanceKm(stops[i-1], stops[i])
		res.Legs = append(res.Legs, ports.RouteLeg{
			DistanceMeters:  int(math.Round(km * 1000)),
			DurationSeconds: int(math.Round(km / speed * 3600)),
			Steps: []ports.RouteLegStep{{
				Instruction: "Head to <b>" + stops[i].Name + "</b>",
			}},
		})
	}
	return res
}

// Requests returns the routing requests received so far.
func (p *RoutingProvider) Requests() []ports.RouteRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.RouteRequest, len(p.requests))
	copy(out, p.requests)
	return out
}
