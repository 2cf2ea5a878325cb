package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"globetrotter/internal/adapters/googlemaps"
	"globetrotter/internal/adapters/mock"
	"globetrotter/internal/api/dto"
	"globetrotter/internal/config"
	"globetrotter/internal/domain"
	"globetrotter/internal/platform/graceful"
	"globetrotter/internal/ports"
	"globetrotter/internal/services"
)

// planner plans and finalizes an itinerary from a JSON file of attractions
// ([{"name","lat","lng","place_id"}]) and prints a report. Suggested hotels
// are accepted automatically.
func main() {
	in := flag.String("in", "-", "attractions JSON file, - for stdin")
	days := flag.Int("days", 1, "number of days")
	mode := flag.String("mode", "", "travel mode: driving, walking, bicycling, transit")
	sweep := flag.Bool("sweep", false, "group days by direction around the centre instead of round robin")
	offline := flag.Bool("offline", false, "skip Google; no hotels and straight-line routes")
	proceed := flag.Bool("proceed-without-hotel", true, "route days without a hotel from their first stop")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *mode == "" {
		*mode = cfg.TravelMode
	}
	travelMode, err := domain.ParseTravelMode(*mode)
	if err != nil {
		log.Fatal(err)
	}

	attractions, err := readAttractions(*in)
	if err != nil {
		log.Fatal(err)
	}

	var hotels ports.HotelProvider
	var routing ports.RoutingProvider
	if *offline {
		routing = mock.NewStraightLineRouter(30)
	} else {
		if cfg.GoogleAPIKey == "" {
			log.Fatal("GOOGLE_API_KEY is required (or use -offline)")
		}
		gm, err := googlemaps.New(cfg.GoogleAPIKey, googlemaps.WithRateLimit(cfg.ProviderRPS))
		if err != nil {
			log.Fatal(err)
		}
		hotels, routing = gm, gm
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	planner := services.NewPlanner(hotels)
	planner.HotelRadiusMeters = cfg.HotelRadiusM
	sess := services.NewSession(planner, services.NewRouteFinalizer(routing, cfg.RoutePause))

	added := sess.AddAttractions(attractions...)
	if skipped := len(attractions) - added; skipped > 0 {
		log.Printf("skipped %d duplicate attractions", skipped)
	}

	var partition services.Partitioner
	if *sweep {
		partition = services.PartitionSweep
	}

	it, err := sess.Plan(ctx, *days, partition)
	if err != nil {
		log.Fatal(err)
	}
	if it.Dropped > 0 {
		log.Printf("dropped %d attractions with invalid coordinates", it.Dropped)
	}
	for _, f := range it.Failures {
		log.Printf("day %d: %s lookup failed, no hotel suggested: %v", f.Day, f.Stage, f.Err)
	}

	results, err := sess.Finalize(ctx, travelMode, *proceed)
	if werr := services.WriteReport(os.Stdout, results); werr != nil {
		log.Fatal(werr)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func readAttractions(path string) ([]domain.Point, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read attractions: %w", err)
		}
		defer f.Close()
		r = f
	}

	var raw []dto.AttractionRequest
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("read attractions: decode: %w", err)
	}

	out := make([]domain.Point, 0, len(raw))
	for _, a := range raw {
		out = append(out, a.ToDomain())
	}
	return out, nil
}
