package timeline

import "fmt"

const (
	MinutesPerDay      = 1440
	DefaultTickMinutes = 30
)

func clampMinute(minute int) int {
	return max(0, min(minute, MinutesPerDay))
}

// LeftFraction maps a minute-of-day onto [0,1] of a 24h lane.
// Out-of-range minutes are clamped to the lane edges.
func LeftFraction(minute int) float64 {
	return float64(clampMinute(minute)) / MinutesPerDay
}

// WidthFraction returns the lane fraction covered by [start,end].
// It is never negative: an inverted or empty range has zero width.
func WidthFraction(start, end int) float64 {
	width := clampMinute(end) - clampMinute(start)
	if width <= 0 {
		return 0
	}

	return float64(width) / MinutesPerDay
}

// FormatHHMM renders a minute-of-day as a zero padded 24h clock, e.g. 545 -> "09:05".
func FormatHHMM(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// TickMinutes returns every granularity boundary from 0 to 1440 inclusive.
// With the default 30 minute granularity that is 49 positions.
func TickMinutes(granularity int) []int {
	if granularity <= 0 {
		granularity = DefaultTickMinutes
	}

	ticks := make([]int, 0, MinutesPerDay/granularity+1)
	for m := 0; m <= MinutesPerDay; m += granularity {
		ticks = append(ticks, m)
	}

	return ticks
}
