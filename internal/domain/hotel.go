package domain

// Represents an overnight option returned by a hotel provider.
// AvgDistanceKm is the mean DistanceKm from Location to every stop of the
// owning day; it is the ranking key and is recomputed whenever a day's
// membership changes.
type HotelCandidate struct {
	Name          string
	PlaceID       string
	Location      Point
	Vicinity      string
	Rating        *float64
	PriceLevel    *int
	AvgDistanceKm float64
}
