package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"globetrotter/internal/api/dto"
	"globetrotter/internal/domain"
	"globetrotter/internal/services"
)

type PlanHandler struct {
	Planner           *services.Planner
	HotelRadiusMeters int
}

// Plan partitions attractions into days, orders each day and suggests hotels.
// Attractions with unusable coordinates are dropped and counted, not rejected.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.Attractions) == 0 {
		writeError(w, r, http.StatusBadRequest, "attractions required")
		return
	}

	days := req.Days
	if days == 0 {
		days = 1
	}
	if days < 1 || days > services.MaxDays {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("days must be between 1 and %d", services.MaxDays))
		return
	}

	partition, ok := partitioners[strings.ToLower(strings.TrimSpace(req.Partitioner))]
	if !ok {
		writeError(w, r, http.StatusBadRequest, "partitioner must be round_robin or sweep")
		return
	}

	points := make([]domain.Point, 0, len(req.Attractions))
	for _, a := range req.Attractions {
		points = append(points, a.ToDomain())
	}

	it, err := h.Planner.Plan(r.Context(), services.PlanRequest{
		Attractions:       points,
		Days:              days,
		HotelRadiusMeters: h.HotelRadiusMeters,
		Partitioner:       partition,
	})
	if err != nil {
		writeServiceError(w, r, http.StatusInternalServerError, "plan itinerary", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PlanFromDomain(it))
}

var partitioners = map[string]services.Partitioner{
	"":            services.PartitionRoundRobin,
	"round_robin": services.PartitionRoundRobin,
	"sweep":       services.PartitionSweep,
}
