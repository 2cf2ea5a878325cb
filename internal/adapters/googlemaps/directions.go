package googlemaps

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"globetrotter/internal/domain"
	"globetrotter/internal/platform/obs"
	"globetrotter/internal/ports"
)

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		WaypointOrder []int `json:"waypoint_order"`
		Legs          []struct {
			Distance textValue `json:"distance"`
			Duration textValue `json:"duration"`
			Steps    []struct {
				HTMLInstructions string    `json:"html_instructions"`
				Distance         textValue `json:"distance"`
				Duration         textValue `json:"duration"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route requests a multi-stop route from the Directions API.
// ZERO_RESULTS and NOT_FOUND map to ports.ErrNoRoute.
func (c *Client) Route(ctx context.Context, req ports.RouteRequest) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "google.Route")(&err)

	q := url.Values{}
	q.Set("origin", req.Origin.LatLng())
	q.Set("destination", req.Destination.LatLng())
	q.Set("mode", string(req.Mode.OrDefault()))
	if len(req.Waypoints) > 0 {
		q.Set("waypoints", waypointsParam(req.Waypoints, req.OptimizeWaypoints))
	}

	var resp directionsResponse
	if err := c.getJSON(ctx, "directions", "/directions/json", q, &resp, "ZERO_RESULTS", "NOT_FOUND"); err != nil {
		return ports.RouteResult{}, err
	}
	if resp.Status != "OK" || len(resp.Routes) == 0 {
		return ports.RouteResult{}, &domain.ProviderError{Provider: providerName, Op: "directions", Err: ports.ErrNoRoute}
	}

	route := resp.Routes[0]
	out := ports.RouteResult{
		Legs:          make([]ports.RouteLeg, 0, len(route.Legs)),
		WaypointOrder: route.WaypointOrder,
	}
	for _, l := range route.Legs {
		leg := ports.RouteLeg{
			DistanceMeters:  l.Distance.Value,
			DurationSeconds: l.Duration.Value,
		}
		for _, s := range l.Steps {
			leg.Steps = append(leg.Steps, ports.RouteLegStep{
				Instruction:  s.HTMLInstructions,
				DistanceText: s.Distance.Text,
				DurationText: s.Duration.Text,
			})
		}
		out.Legs = append(out.Legs, leg)
	}
	if len(out.Legs) == 0 {
		return ports.RouteResult{}, &domain.ProviderError{Provider: providerName, Op: "directions", Err: errors.New("route has no legs")}
	}

	return out, nil
}

func waypointsParam(points []domain.Point, optimize bool) string {
	parts := make([]string, 0, len(points)+1)
	if optimize {
		parts = append(parts, "optimize:true")
	}
	for _, p := range points {
		parts = append(parts, p.LatLng())
	}
	return strings.Join(parts, "|")
}
