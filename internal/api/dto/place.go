package dto

import (
	"net/url"

	"globetrotter/internal/domain"
)

// PhotoPath is the API route that proxies place photos.
const PhotoPath = "/api/photo"

type HotelsResponse struct {
	Results []HotelResponse `json:"results"`
}

type PlaceSummaryResponse struct {
	Name     string   `json:"name"`
	PlaceID  string   `json:"place_id"`
	Address  string   `json:"address,omitempty"`
	Location LatLng   `json:"location"`
	Vicinity string   `json:"vicinity,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

type GeocodeResponse struct {
	Results []PlaceSummaryResponse `json:"results"`
}

type PlacesResponse struct {
	Results       []PlaceSummaryResponse `json:"results"`
	NextPageToken *string                `json:"next_page_token"`
}

type DetailsResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Photo       *string  `json:"photo"`
	Rating      *float64 `json:"rating"`
	Phone       *string  `json:"phone"`
}

func PlaceSummariesFromDomain(in []domain.PlaceSummary) []PlaceSummaryResponse {
	out := make([]PlaceSummaryResponse, 0, len(in))
	for _, p := range in {
		out = append(out, PlaceSummaryResponse{
			Name:     p.Place.Name,
			PlaceID:  p.Place.PlaceID,
			Address:  p.Address,
			Location: LatLng{Lat: p.Place.Lat, Lng: p.Place.Lng},
			Vicinity: p.Vicinity,
			Rating:   p.Rating,
		})
	}
	return out
}

func DetailsFromDomain(d domain.PlaceDetails) DetailsResponse {
	res := DetailsResponse{Name: d.Name, Description: d.Description, Rating: d.Rating}
	if d.PhotoRef != "" {
		photo := PhotoPath + "?ref=" + url.QueryEscape(d.PhotoRef)
		res.Photo = &photo
	}
	if d.Phone != "" {
		res.Phone = &d.Phone
	}
	return res
}
