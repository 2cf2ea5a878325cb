package dto

import "globetrotter/internal/domain"

type FinalizeRequest struct {
	Plan []DayPlanResponse `json:"plan"`
	// SelectedHotels is keyed by 1-based day number.
	SelectedHotels      map[int]HotelResponse `json:"selected_hotels"`
	Mode                string                `json:"mode"`
	ProceedWithoutHotel bool                  `json:"proceed_without_hotel"`
}

type StopResponse struct {
	Label string `json:"label"`
	PlaceResponse
}

type StepResponse struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

type FinalDayResponse struct {
	Day           int            `json:"day"`
	State         string         `json:"state"`
	DurationHours *float64       `json:"duration_hours"`
	DistanceKm    float64        `json:"distance_km"`
	Stops         []StopResponse `json:"stops"`
	Steps         []StepResponse `json:"steps"`
	Hotel         *HotelResponse `json:"hotel"`
}

type FinalizeResponse struct {
	Days []FinalDayResponse `json:"days"`
}

func FinalDayFromDomain(r domain.FinalDayResult) FinalDayResponse {
	res := FinalDayResponse{
		Day:           r.Day,
		State:         r.State.String(),
		DurationHours: r.DurationHours,
		DistanceKm:    r.DistanceKm,
		Stops:         make([]StopResponse, 0, len(r.Stops)),
		Steps:         make([]StepResponse, 0, len(r.Steps)),
	}
	for _, s := range r.Stops {
		res.Stops = append(res.Stops, StopResponse{Label: s.Label, PlaceResponse: PlaceFromDomain(s.Place)})
	}
	for _, s := range r.Steps {
		res.Steps = append(res.Steps, StepResponse{Instruction: s.Instruction, Distance: s.Distance, Duration: s.Duration})
	}
	if r.Hotel != nil {
		h := HotelFromDomain(*r.Hotel)
		res.Hotel = &h
	}
	return res
}
