package services

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"globetrotter/internal/domain"
)

// WriteReport renders finalized days as plain text. The first write error
// is returned.
func WriteReport(w io.Writer, results []domain.FinalDayResult) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		hours := "N/A"
		if r.DurationHours != nil {
			hours = strconv.FormatFloat(*r.DurationHours, 'f', 2, 64) + " h"
		}
		fmt.Fprintf(bw, "Day %d  duration=%s  distance=%.1f km  (%s)\n", r.Day, hours, r.DistanceKm, r.State)

		hotel := "none"
		if r.Hotel != nil {
			hotel = r.Hotel.Name
		}
		fmt.Fprintf(bw, "  Hotel: %s\n", hotel)

		for _, s := range r.Stops {
			fmt.Fprintf(bw, "  %s. %s\n", s.Label, s.Place.Name)
		}
		for _, s := range r.Steps {
			fmt.Fprintf(bw, "    - %s (%s, %s)\n", s.Instruction, s.Distance, s.Duration)
		}
		fmt.Fprintln(bw)
	}

	// bufio.Writer keeps the first error and reports it here.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
