package domain

// Summary of a place returned by text or category search.
type PlaceSummary struct {
	Place    Point
	Address  string
	Vicinity string
	Rating   *float64
}

// Decorative enrichment for a place; never used by planning logic.
type PlaceDetails struct {
	Name        string
	Description string
	// PhotoRef identifies the lead photo at the provider. It is served
	// through the API so provider credentials never reach clients.
	PhotoRef string
	Rating   *float64
	Phone    string
}
