package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"globetrotter/internal/api/dto"
	"globetrotter/internal/platform/obs"
	"globetrotter/internal/ports"
)

// PlaceHandler serves search and enrichment lookups. None of them affect planning.
type PlaceHandler struct {
	Places ports.PlaceProvider
	Photos ports.PhotoProvider
}

func (h *PlaceHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, r, http.StatusOK, dto.GeocodeResponse{Results: []dto.PlaceSummaryResponse{}})
		return
	}

	places, err := h.Places.SearchText(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, http.StatusBadGateway, "text search", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.GeocodeResponse{Results: dto.PlaceSummariesFromDomain(places)})
}

func (h *PlaceHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	center, ok := queryPoint(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "lat,lng required")
		return
	}

	places, token, err := h.Places.NearbyPlaces(r.Context(), center, strings.TrimSpace(r.URL.Query().Get("type")))
	if err != nil {
		writeServiceError(w, r, http.StatusBadGateway, "nearby places", err)
		return
	}

	res := dto.PlacesResponse{Results: dto.PlaceSummariesFromDomain(places)}
	if token != "" {
		res.NextPageToken = &token
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlaceHandler) Details(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("place_id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "place_id required")
		return
	}

	d, err := h.Places.PlaceDetails(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, http.StatusBadGateway, "place details", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.DetailsFromDomain(d))
}

// Photo proxies a place photo so the provider key stays on the server.
func (h *PlaceHandler) Photo(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	ref := strings.TrimSpace(r.URL.Query().Get("ref"))
	if ref == "" {
		writeError(w, r, http.StatusBadRequest, "ref required")
		return
	}

	body, contentType, err := h.Photos.Photo(r.Context(), ref)
	if err != nil {
		writeServiceError(w, r, http.StatusBadGateway, "place photo", err)
		return
	}
	defer body.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		log.Printf("req_id=%s photo copy failed: %v", obs.RequestID(r.Context()), err)
	}
}
