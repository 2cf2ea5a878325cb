package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"globetrotter/internal/domain"
	"globetrotter/internal/platform/metrics"
	"globetrotter/internal/platform/obs"
)

const (
	// MaxTextResults caps text search results.
	MaxTextResults = 8
	// DiscoveryRadiusMeters bounds category discovery around a point.
	DiscoveryRadiusMeters = 50000
	// DefaultCategory is used when category discovery names no type.
	DefaultCategory = "tourist_attraction"

	photoMaxWidth = 400
	detailFields  = "name,editorial_summary,photos,rating,formatted_address,formatted_phone_number"
)

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type placeResult struct {
	Name             string   `json:"name"`
	PlaceID          string   `json:"place_id"`
	FormattedAddress string   `json:"formatted_address"`
	Vicinity         string   `json:"vicinity"`
	Rating           *float64 `json:"rating"`
	PriceLevel       *int     `json:"price_level"`
	Geometry         struct {
		Location latLng `json:"location"`
	} `json:"geometry"`
}

func (p placeResult) point() domain.Point {
	return domain.Point{
		Name:    p.Name,
		Lat:     p.Geometry.Location.Lat,
		Lng:     p.Geometry.Location.Lng,
		PlaceID: p.PlaceID,
	}
}

type searchResponse struct {
	Results       []placeResult `json:"results"`
	NextPageToken string        `json:"next_page_token"`
}

type detailsResponse struct {
	Result struct {
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Phone            string   `json:"formatted_phone_number"`
		Rating           *float64 `json:"rating"`
		EditorialSummary *struct {
			Overview string `json:"overview"`
		} `json:"editorial_summary"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"result"`
}

// NearbyHotels returns lodging within radiusMeters of center, in provider order.
func (c *Client) NearbyHotels(ctx context.Context, center domain.Point, radiusMeters int) (_ []domain.HotelCandidate, err error) {
	defer obs.Time(ctx, "google.NearbyHotels")(&err)

	q := url.Values{}
	q.Set("location", center.LatLng())
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("type", "lodging")

	var resp searchResponse
	if err := c.getJSON(ctx, "nearby_hotels", "/place/nearbysearch/json", q, &resp, "ZERO_RESULTS"); err != nil {
		return nil, err
	}

	out := make([]domain.HotelCandidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, domain.HotelCandidate{
			Name:       r.Name,
			PlaceID:    r.PlaceID,
			Location:   r.point(),
			Vicinity:   r.Vicinity,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
		})
	}
	return out, nil
}

// SearchText returns at most MaxTextResults places matching query.
func (c *Client) SearchText(ctx context.Context, query string) (_ []domain.PlaceSummary, err error) {
	defer obs.Time(ctx, "google.SearchText")(&err)

	if query == "" {
		return []domain.PlaceSummary{}, nil
	}

	q := url.Values{}
	q.Set("query", query)

	var resp searchResponse
	if err := c.getJSON(ctx, "text_search", "/place/textsearch/json", q, &resp, "ZERO_RESULTS"); err != nil {
		return nil, err
	}

	results := resp.Results
	if len(results) > MaxTextResults {
		results = results[:MaxTextResults]
	}
	return summaries(results), nil
}

// NearbyPlaces returns places of category within DiscoveryRadiusMeters of
// center and the token for the next page, if any.
func (c *Client) NearbyPlaces(ctx context.Context, center domain.Point, category string) (_ []domain.PlaceSummary, _ string, err error) {
	defer obs.Time(ctx, "google.NearbyPlaces")(&err)

	if category == "" {
		category = DefaultCategory
	}

	q := url.Values{}
	q.Set("location", center.LatLng())
	q.Set("radius", strconv.Itoa(DiscoveryRadiusMeters))
	q.Set("type", category)

	var resp searchResponse
	if err := c.getJSON(ctx, "nearby_places", "/place/nearbysearch/json", q, &resp, "ZERO_RESULTS"); err != nil {
		return nil, "", err
	}
	return summaries(resp.Results), resp.NextPageToken, nil
}

// PlaceDetails returns decorative details for placeID. The description falls
// back to the formatted address when no editorial summary exists.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (_ domain.PlaceDetails, err error) {
	defer obs.Time(ctx, "google.PlaceDetails")(&err)

	if placeID == "" {
		return domain.PlaceDetails{}, errors.New("place id is empty")
	}

	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", detailFields)

	var resp detailsResponse
	if err := c.getJSON(ctx, "place_details", "/place/details/json", q, &resp); err != nil {
		return domain.PlaceDetails{}, err
	}

	r := resp.Result
	d := domain.PlaceDetails{
		Name:        r.Name,
		Description: r.FormattedAddress,
		Rating:      r.Rating,
		Phone:       r.Phone,
	}
	if r.EditorialSummary != nil && r.EditorialSummary.Overview != "" {
		d.Description = r.EditorialSummary.Overview
	}
	if len(r.Photos) > 0 && r.Photos[0].PhotoReference != "" {
		d.PhotoRef = r.Photos[0].PhotoReference
	}
	return d, nil
}

// Photo fetches the image for a reference returned by PlaceDetails. The
// caller must close the body.
func (c *Client) Photo(ctx context.Context, ref string) (_ io.ReadCloser, contentType string, err error) {
	defer obs.Time(ctx, "google.Photo")(&err)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			err = &domain.ProviderError{Provider: providerName, Op: "place_photo", Err: err}
		}
		metrics.ProviderCalls.WithLabelValues(providerName, "place_photo", outcome).Inc()
	}()

	if ref == "" {
		return nil, "", errors.New("photo reference is empty")
	}

	q := url.Values{}
	q.Set("maxwidth", strconv.Itoa(photoMaxWidth))
	q.Set("photo_reference", ref)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, "/place/photo", cloneValues(q))
	})
	if err != nil {
		return nil, "", fmt.Errorf("execute request: %w", err)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func summaries(results []placeResult) []domain.PlaceSummary {
	out := make([]domain.PlaceSummary, 0, len(results))
	for _, r := range results {
		out = append(out, domain.PlaceSummary{
			Place:    r.point(),
			Address:  r.FormattedAddress,
			Vicinity: r.Vicinity,
			Rating:   r.Rating,
		})
	}
	return out
}
