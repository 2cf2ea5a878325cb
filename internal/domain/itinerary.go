package domain

// Represents the heuristic plan for a single day.
// Places are in visiting order. A day with no places never carries a hotel
// suggestion.
type DayPlan struct {
	Day               int
	Places            []Point
	SuggestedHotel    *HotelCandidate
	HotelAlternatives []HotelCandidate
}

// DayFailure records a recovered, per-day provider failure.
type DayFailure struct {
	Day   int
	Stage string
	Err   error
}

// Represents a full multi-day plan, one DayPlan per day 1..D.
// Across all days every accepted attraction appears exactly once.
// Dropped counts attractions removed by coordinate validation.
type Itinerary struct {
	Days     []DayPlan
	Dropped  int
	Failures []DayFailure
}

// Day returns the plan for the given 1-based day.
func (it *Itinerary) Day(day int) (DayPlan, bool) {
	if it == nil || day < 1 || day > len(it.Days) {
		return DayPlan{}, false
	}
	return it.Days[day-1], true
}
