package timeline

import (
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/utils"
)

// Detector finds ground time between legs of a day row.
//
// An interval carrying turnaroundMins uses the server value as-is and is
// never paired. Every other interval is paired with its immediate successor
// when the two legs belong to the same trip and pivot out of and back into
// the hub: HUB→X followed by X→HUB with a positive gap. Anything that does
// not fit is skipped silently.
type Detector struct {
	Hub string
}

func NewDetector(hub string) Detector {
	return Detector{Hub: hub}
}

// DetectTurnarounds scans a day bucket already sorted by BucketDay.
func (d Detector) DetectTurnarounds(day dto.DayOfWeek, sorted []dto.FlightInterval) []dto.TurnaroundGap {
	gaps := make([]dto.TurnaroundGap, 0)

	for i, a := range sorted {
		var next *dto.FlightInterval
		if i+1 < len(sorted) {
			next = &sorted[i+1]
		}

		if a.TurnaroundMins != nil {
			if *a.TurnaroundMins > 0 {
				gaps = append(gaps, serverTurnaround(day, a, next))
			}
			continue
		}

		if next == nil {
			continue
		}

		if gap, ok := d.derivedTurnaround(day, a, *next); ok {
			gaps = append(gaps, gap)
		}
	}

	return gaps
}

func serverTurnaround(day dto.DayOfWeek, a dto.FlightInterval, next *dto.FlightInterval) dto.TurnaroundGap {
	mins := *a.TurnaroundMins

	gap := dto.TurnaroundGap{
		Kind:            dto.PrimitiveTurnaround,
		Day:             day,
		LeftFraction:    LeftFraction(a.EndMinute),
		WidthFraction:   WidthFraction(a.EndMinute, a.EndMinute+mins),
		StartMinute:     a.EndMinute,
		DurationMinutes: mins,
		Caption:         utils.FormatDuration(mins),
		Source:          dto.TurnaroundServer,
		Arrival:         a,
	}

	if next != nil {
		departure := *next
		gap.Departure = &departure
	}

	return gap
}

func (d Detector) derivedTurnaround(day dto.DayOfWeek, a, b dto.FlightInterval) (dto.TurnaroundGap, bool) {
	aTrip, ok := a.Trip()
	if !ok {
		return dto.TurnaroundGap{}, false
	}

	bTrip, ok := b.Trip()
	if !ok || aTrip != bTrip {
		return dto.TurnaroundGap{}, false
	}

	outbound, ok := ParseRoute(a.Label)
	if !ok {
		return dto.TurnaroundGap{}, false
	}

	inbound, ok := ParseRoute(b.Label)
	if !ok {
		return dto.TurnaroundGap{}, false
	}

	if !d.isOutboundThenInbound(outbound, inbound) {
		return dto.TurnaroundGap{}, false
	}

	gapMinutes := b.StartMinute - a.EndMinute
	if gapMinutes <= 0 {
		return dto.TurnaroundGap{}, false
	}

	return dto.TurnaroundGap{
		Kind:            dto.PrimitiveTurnaround,
		Day:             day,
		LeftFraction:    LeftFraction(a.EndMinute),
		WidthFraction:   WidthFraction(0, gapMinutes),
		StartMinute:     a.EndMinute,
		DurationMinutes: gapMinutes,
		Caption:         utils.FormatDuration(gapMinutes),
		Source:          dto.TurnaroundDerived,
		Arrival:         a,
		Departure:       &b,
	}, true
}

// outbound leaves the hub for X, inbound leaves X for the hub
func (d Detector) isOutboundThenInbound(outbound, inbound dto.Route) bool {
	return outbound.Origin == d.Hub &&
		outbound.Destination != d.Hub &&
		inbound.Origin == outbound.Destination &&
		inbound.Destination == d.Hub
}
