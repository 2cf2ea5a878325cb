package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"globetrotter/internal/domain"
	"globetrotter/internal/platform/metrics"
	"globetrotter/internal/platform/obs"
	"globetrotter/internal/ports"
)

const (
	// DefaultHotelRadiusMeters bounds the hotel search around a day's centroid.
	DefaultHotelRadiusMeters = 7000
	// MaxDays is the largest day count accepted by the planner.
	MaxDays = 30

	defaultHotelConcurrency = 4
)

type PlanRequest struct {
	Attractions       []domain.Point
	Days              int
	HotelRadiusMeters int
	// Partitioner defaults to PartitionRoundRobin.
	Partitioner Partitioner
}

// Planner turns a list of attractions into a multi-day itinerary.
type Planner struct {
	Hotels ports.HotelProvider
	// HotelRadiusMeters applies when a request leaves its radius unset.
	HotelRadiusMeters int
	// Concurrency caps in-flight hotel lookups; defaults to 4.
	Concurrency int
}

func NewPlanner(hotels ports.HotelProvider) *Planner {
	return &Planner{Hotels: hotels, Concurrency: defaultHotelConcurrency}
}

type dayResult struct {
	plan    domain.DayPlan
	failure *domain.DayFailure
}

// Plan validates the request, partitions attractions into days, orders each
// day and suggests a hotel per day.
//
// Attractions with invalid coordinates are dropped and counted in
// Itinerary.Dropped. A failed hotel lookup degrades only its own day and is
// recorded in Itinerary.Failures; it is never returned as an error.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (it *domain.Itinerary, err error) {
	ctx, done := obs.Start(ctx, "plan_itinerary")
	defer done(&err)

	if req.Days < 1 {
		return nil, &domain.ValidationError{Field: "days", Msg: "must be at least 1"}
	}
	if req.Days > MaxDays {
		return nil, &domain.ValidationError{Field: "days", Msg: fmt.Sprintf("must be at most %d", MaxDays)}
	}

	valid := make([]domain.Point, 0, len(req.Attractions))
	for _, a := range req.Attractions {
		if a.Valid() {
			valid = append(valid, a)
		}
	}
	if len(valid) == 0 {
		return nil, &domain.ValidationError{Field: "attractions", Msg: "no attractions with valid coordinates"}
	}

	partition := req.Partitioner
	if partition == nil {
		partition = PartitionRoundRobin
	}
	radius := req.HotelRadiusMeters
	if radius <= 0 {
		radius = p.HotelRadiusMeters
	}
	if radius <= 0 {
		radius = DefaultHotelRadiusMeters
	}

	buckets, err := partition(valid, req.Days)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: partition: %w", err)
	}

	limit := p.Concurrency
	if limit <= 0 {
		limit = defaultHotelConcurrency
	}

	// Each goroutine owns results[i]; nothing else is shared.
	results := make([]dayResult, len(buckets))
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, bucket := range buckets {
		wg.Add(1)
		go func(idx int, places []domain.Point) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = p.planDay(ctx, idx+1, places, radius)
		}(i, bucket)
	}
	wg.Wait()

	it = &domain.Itinerary{
		Days:     make([]domain.DayPlan, 0, len(results)),
		Dropped:  len(req.Attractions) - len(valid),
		Failures: []domain.DayFailure{},
	}
	for _, r := range results {
		it.Days = append(it.Days, r.plan)
		if r.failure != nil {
			it.Failures = append(it.Failures, *r.failure)
		}
	}

	return it, nil
}

func (p *Planner) planDay(ctx context.Context, day int, places []domain.Point, radius int) dayResult {
	plan := domain.DayPlan{
		Day:               day,
		Places:            []domain.Point{},
		HotelAlternatives: []domain.HotelCandidate{},
	}
	if len(places) == 0 {
		return dayResult{plan: plan}
	}

	plan.Places = OrderPlaces(places)

	if p.Hotels == nil {
		return dayResult{plan: plan}
	}

	center := domain.Centroid(places)
	candidates, err := p.Hotels.NearbyHotels(ctx, center, radius)
	if err != nil {
		metrics.HotelLookupFailures.Inc()
		log.Printf("req_id=%s op=plan_itinerary day=%d stage=hotels err=%v", obs.RequestID(ctx), day, err)
		return dayResult{
			plan:    plan,
			failure: &domain.DayFailure{Day: day, Stage: "hotels", Err: err},
		}
	}

	suggested, alts, err := SuggestHotels(plan.Places, candidates)
	if err != nil {
		// Unreachable for a non-empty day.
		return dayResult{plan: plan, failure: &domain.DayFailure{Day: day, Stage: "hotels", Err: err}}
	}
	plan.SuggestedHotel = suggested
	plan.HotelAlternatives = alts

	return dayResult{plan: plan}
}
