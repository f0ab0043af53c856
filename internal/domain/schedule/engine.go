package schedule

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/packtrack/backend/internal/domain/belonging"
)

// minutesOfDay converts an HH:MM string to minutes since midnight.
// Malformed input maps to 0 so engine math stays total.
func minutesOfDay(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// Duration returns the event length in minutes, clamped to zero
func Duration(e Event) int {
	d := minutesOfDay(e.EndTime) - minutesOfDay(e.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// Occupancy returns the events overlapping the half-open slot
// [slotStart, slotStart+slotMinutes). An event touching the slot only at
// its boundary does not occupy it.
func Occupancy(events []Event, slotStart string, slotMinutes int) []Event {
	start := minutesOfDay(slotStart)
	end := start + slotMinutes

	var occupying []Event
	for _, e := range events {
		if minutesOfDay(e.StartTime) < end && minutesOfDay(e.EndTime) > start {
			occupying = append(occupying, e)
		}
	}
	return occupying
}

// SortChronological orders events by start time, in place. Start times are
// fixed-width HH:MM so string order is chronological order.
func SortChronological(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime < events[j].StartTime
	})
}

// AverageDuration returns the mean event length in minutes, 0 for no events
func AverageDuration(events []Event) float64 {
	if len(events) == 0 {
		return 0
	}
	total := 0
	for _, e := range events {
		total += Duration(e)
	}
	return float64(total) / float64(len(events))
}

// CompletionStats summarizes packing progress over a set of belongings
type CompletionStats struct {
	Completed  int  `json:"completed"`
	Total      int  `json:"total"`
	Percentage *int `json:"percentage"`
}

// Completion computes packing completion over the linked belongings.
// Percentage is nil when there is nothing to pack.
func Completion(linked []belonging.Belonging) CompletionStats {
	stats := CompletionStats{Total: len(linked)}
	for _, b := range linked {
		if b.IsPacked() {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		pct := Percentage(stats.Completed, stats.Total)
		stats.Percentage = &pct
	}
	return stats
}

// Percentage computes part/total as a whole percentage, rounding half up.
// A zero total yields 0.
func Percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
