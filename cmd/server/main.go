package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"globetrotter/internal/adapters/cache"
	"globetrotter/internal/adapters/googlemaps"
	"globetrotter/internal/api"
	"globetrotter/internal/config"
	"globetrotter/internal/domain"
	"globetrotter/internal/platform/db"
	"globetrotter/internal/platform/graceful"
	"globetrotter/internal/platform/metrics"
	"globetrotter/internal/ports"
	"globetrotter/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Google Maps, optional lookup caches) behind
// ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatal("GOOGLE_API_KEY is required")
	}

	mode, err := domain.ParseTravelMode(cfg.TravelMode)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	metrics.RegisterDefault()

	gm, err := googlemaps.New(cfg.GoogleAPIKey, googlemaps.WithRateLimit(cfg.ProviderRPS))
	if err != nil {
		log.Fatal(err)
	}

	var hotels ports.HotelProvider = gm
	var places ports.PlaceProvider = gm
	checks := map[string]func(context.Context) error{}

	// Lookup caches are optional; Redis wins when both are configured.
	lookup, closeLookup, err := openLookupCache(ctx, cfg, checks)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLookup()
	if lookup != nil {
		hotels = &cache.CachedHotels{Next: gm, Cache: lookup, TTL: cfg.LookupCacheTTL}
		places = &cache.CachedPlaces{Next: gm, Cache: lookup, TTL: cfg.LookupCacheTTL}
	}

	planner := services.NewPlanner(hotels)
	planner.HotelRadiusMeters = cfg.HotelRadiusM

	router := api.NewRouter(api.Deps{
		Planner:           planner,
		Finalizer:         services.NewRouteFinalizer(gm, cfg.RoutePause),
		Hotels:            hotels,
		Places:            places,
		Photos:            gm,
		HotelRadiusMeters: cfg.HotelRadiusM,
		DefaultMode:       mode,
		AllowedOrigins:    cfg.AllowedOrigins,
		HealthChecks:      checks,
	})

	// Timeouts are tuned for multi-day finalization (one routing call per day plus pauses).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 15*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Server listening addr=:%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}

func openLookupCache(ctx context.Context, cfg config.Config, checks map[string]func(context.Context) error) (ports.LookupCache, func(), error) {
	switch {
	case cfg.RedisURL != "":
		client, err := cache.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, func() {}, err
		}
		checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		log.Println("lookup cache: redis")
		return cache.NewRedisLookupCache(client), func() { _ = client.Close() }, nil

	case cfg.DatabaseURL != "":
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, func() {}, err
		}
		checks["postgres"] = conn.PingContext
		log.Println("lookup cache: postgres")
		return cache.NewSQLLookupCache(conn), func() { _ = conn.Close() }, nil

	default:
		log.Println("lookup cache: disabled")
		return nil, func() {}, nil
	}
}
