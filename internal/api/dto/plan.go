package dto

import (
	"encoding/json"

	"globetrotter/internal/domain"
)

type AttractionRequest struct {
	Name    string      `json:"name"`
	Lat     *Coordinate `json:"lat"`
	Lng     *Coordinate `json:"lng"`
	PlaceID string      `json:"place_id,omitempty"`
}

type PlanRequest struct {
	Attractions []AttractionRequest `json:"attractions"`
	// Hotel is accepted for compatibility and ignored.
	Hotel       json.RawMessage `json:"hotel,omitempty"`
	Days        int             `json:"days"`
	Partitioner string          `json:"partitioner,omitempty"`
}

// ToDomain maps missing coordinates to NaN so validation drops them.
func (a AttractionRequest) ToDomain() domain.Point {
	return domain.Point{Name: a.Name, Lat: a.Lat.Float(), Lng: a.Lng.Float(), PlaceID: a.PlaceID}
}

type PlaceResponse struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	PlaceID string  `json:"place_id,omitempty"`
}

type HotelResponse struct {
	Name          string   `json:"name"`
	PlaceID       string   `json:"place_id"`
	Location      LatLng   `json:"location"`
	Vicinity      string   `json:"vicinity,omitempty"`
	Rating        *float64 `json:"rating"`
	PriceLevel    *int     `json:"price_level"`
	AvgDistanceKm float64  `json:"avg_distance_km"`
}

type DayPlanResponse struct {
	Day               int             `json:"day"`
	Places            []PlaceResponse `json:"places"`
	SuggestedHotel    *HotelResponse  `json:"suggested_hotel"`
	HotelAlternatives []HotelResponse `json:"hotel_alternatives"`
}

type FailureResponse struct {
	Day   int    `json:"day"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

type PlanResponse struct {
	Plan     []DayPlanResponse `json:"plan"`
	Dropped  int               `json:"dropped"`
	Failures []FailureResponse `json:"failures"`
}

func PlaceFromDomain(p domain.Point) PlaceResponse {
	return PlaceResponse{Name: p.Name, Lat: p.Lat, Lng: p.Lng, PlaceID: p.PlaceID}
}

func (p PlaceResponse) ToDomain() domain.Point {
	return domain.Point{Name: p.Name, Lat: p.Lat, Lng: p.Lng, PlaceID: p.PlaceID}
}

func HotelFromDomain(h domain.HotelCandidate) HotelResponse {
	return HotelResponse{
		Name:          h.Name,
		PlaceID:       h.PlaceID,
		Location:      LatLng{Lat: h.Location.Lat, Lng: h.Location.Lng},
		Vicinity:      h.Vicinity,
		Rating:        h.Rating,
		PriceLevel:    h.PriceLevel,
		AvgDistanceKm: h.AvgDistanceKm,
	}
}

func (h HotelResponse) ToDomain() domain.HotelCandidate {
	return domain.HotelCandidate{
		Name:          h.Name,
		PlaceID:       h.PlaceID,
		Location:      domain.Point{Name: h.Name, Lat: h.Location.Lat, Lng: h.Location.Lng, PlaceID: h.PlaceID},
		Vicinity:      h.Vicinity,
		Rating:        h.Rating,
		PriceLevel:    h.PriceLevel,
		AvgDistanceKm: h.AvgDistanceKm,
	}
}

func DayPlanFromDomain(d domain.DayPlan) DayPlanResponse {
	res := DayPlanResponse{
		Day:               d.Day,
		Places:            make([]PlaceResponse, 0, len(d.Places)),
		HotelAlternatives: make([]HotelResponse, 0, len(d.HotelAlternatives)),
	}
	for _, p := range d.Places {
		res.Places = append(res.Places, PlaceFromDomain(p))
	}
	if d.SuggestedHotel != nil {
		h := HotelFromDomain(*d.SuggestedHotel)
		res.SuggestedHotel = &h
	}
	for _, h := range d.HotelAlternatives {
		res.HotelAlternatives = append(res.HotelAlternatives, HotelFromDomain(h))
	}
	return res
}

func (d DayPlanResponse) ToDomain() domain.DayPlan {
	out := domain.DayPlan{
		Day:               d.Day,
		Places:            make([]domain.Point, 0, len(d.Places)),
		HotelAlternatives: make([]domain.HotelCandidate, 0, len(d.HotelAlternatives)),
	}
	for _, p := range d.Places {
		out.Places = append(out.Places, p.ToDomain())
	}
	if d.SuggestedHotel != nil {
		h := d.SuggestedHotel.ToDomain()
		out.SuggestedHotel = &h
	}
	for _, h := range d.HotelAlternatives {
		out.HotelAlternatives = append(out.HotelAlternatives, h.ToDomain())
	}
	return out
}

func PlanFromDomain(it *domain.Itinerary) PlanResponse {
	res := PlanResponse{
		Plan:     make([]DayPlanResponse, 0, len(it.Days)),
		Dropped:  it.Dropped,
		Failures: make([]FailureResponse, 0, len(it.Failures)),
	}
	for _, d := range it.Days {
		res.Plan = append(res.Plan, DayPlanFromDomain(d))
	}
	for _, f := range it.Failures {
		res.Failures = append(res.Failures, FailureResponse{Day: f.Day, Stage: f.Stage, Error: failureMessage(f.Stage)})
	}
	return res
}

// failureMessage is the client-facing text for a recovered failure. Provider
// error detail stays in the server log.
func failureMessage(stage string) string {
	switch stage {
	case "hotels":
		return "hotel lookup failed"
	default:
		return stage + " failed"
	}
}
