package timeline

import (
	"sort"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
)

// BucketDay returns the intervals flown on day, ordered by start minute.
// Equal start minutes keep their input order. The input slice is not modified.
func BucketDay(intervals []dto.FlightInterval, day dto.DayOfWeek) []dto.FlightInterval {
	results := make([]dto.FlightInterval, 0, len(intervals))

	for _, interval := range intervals {
		if interval.Day != day {
			continue
		}

		results = append(results, interval)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StartMinute < results[j].StartMinute
	})

	return results
}
