package api

import (
	"context"
	"net/http"

	"globetrotter/internal/api/dto"
	"globetrotter/internal/api/handlers"
	"globetrotter/internal/domain"
	"globetrotter/internal/platform/metrics"
	"globetrotter/internal/ports"
	"globetrotter/internal/services"
)

// Deps are the collaborators the HTTP API needs. Hotels, Places and Photos
// may be nil, in which case their lookup endpoints are not mounted.
type Deps struct {
	Planner           *services.Planner
	Finalizer         *services.RouteFinalizer
	Hotels            ports.HotelProvider
	Places            ports.PlaceProvider
	Photos            ports.PhotoProvider
	HotelRadiusMeters int
	DefaultMode       domain.TravelMode
	AllowedOrigins    []string
	HealthChecks      map[string]func(context.Context) error
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Checks: d.HealthChecks}
	planHandler := &handlers.PlanHandler{Planner: d.Planner, HotelRadiusMeters: d.HotelRadiusMeters}
	finalizeHandler := &handlers.FinalizeHandler{Finalizer: d.Finalizer, DefaultMode: d.DefaultMode, AllowedOrigins: d.AllowedOrigins}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/api/plan", planHandler.Plan)
	mux.HandleFunc("/api/finalize", finalizeHandler.Finalize)
	mux.HandleFunc("/api/finalize/stream", finalizeHandler.Stream)

	if d.Hotels != nil {
		hotelHandler := &handlers.HotelHandler{Hotels: d.Hotels}
		mux.HandleFunc("/api/hotels", hotelHandler.Nearby)
	}
	if d.Places != nil {
		placeHandler := &handlers.PlaceHandler{Places: d.Places, Photos: d.Photos}
		mux.HandleFunc("/api/geocode", placeHandler.Geocode)
		mux.HandleFunc("/api/places", placeHandler.Nearby)
		mux.HandleFunc("/api/details", placeHandler.Details)
		if d.Photos != nil {
			mux.HandleFunc(dto.PhotoPath, placeHandler.Photo)
		}
	}

	return requestIDMiddleware(loggingMiddleware(mux))
}
