package handlers

import (
	"net/http"
	"strconv"

	"globetrotter/internal/api/dto"
	"globetrotter/internal/ports"
)

// DefaultLookupRadiusMeters applies to hotel lookups without a radius.
const DefaultLookupRadiusMeters = 8000

type HotelHandler struct {
	Hotels ports.HotelProvider
}

func (h *HotelHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	center, ok := queryPoint(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "lat,lng required")
		return
	}

	radius := DefaultLookupRadiusMeters
	if v := r.URL.Query().Get("radius"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, r, http.StatusBadRequest, "radius must be a positive integer")
			return
		}
		radius = n
	}

	hotels, err := h.Hotels.NearbyHotels(r.Context(), center, radius)
	if err != nil {
		writeServiceError(w, r, http.StatusBadGateway, "nearby hotels", err)
		return
	}

	res := dto.HotelsResponse{Results: make([]dto.HotelResponse, 0, len(hotels))}
	for _, hc := range hotels {
		res.Results = append(res.Results, dto.HotelFromDomain(hc))
	}
	writeJSON(w, r, http.StatusOK, res)
}
