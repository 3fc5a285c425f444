package timeline

import (
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
)

// DefaultHub is the home base used when none is configured.
const DefaultHub = "CMB"

// Engine lays out a week of intervals onto 24h lanes.
// It holds no state between calls; the same input always yields the same geometry.
type Engine struct {
	Hub         string
	TickMinutes int
}

func NewEngine(hub string, tickMinutes int) *Engine {
	if tickMinutes <= 0 {
		tickMinutes = DefaultTickMinutes
	}

	if hub == "" {
		hub = DefaultHub
	}

	return &Engine{
		Hub:         hub,
		TickMinutes: tickMinutes,
	}
}

// WithHub returns a copy of the engine pairing turnarounds around another hub.
// An empty hub keeps the current one.
func (e *Engine) WithHub(hub string) *Engine {
	if hub == "" || hub == e.Hub {
		return e
	}

	return &Engine{
		Hub:         hub,
		TickMinutes: e.TickMinutes,
	}
}

// Ruler returns the top ruler ticks. The closing 24:00 tick is kept for
// positioning but carries no label.
func (e *Engine) Ruler() []dto.GridTick {
	minutes := TickMinutes(e.TickMinutes)
	ticks := make([]dto.GridTick, len(minutes))

	for i, m := range minutes {
		ticks[i] = dto.GridTick{
			Minute:       m,
			LeftFraction: LeftFraction(m),
			Major:        m%60 == 0,
		}

		if m < MinutesPerDay {
			ticks[i].Label = FormatHHMM(m)
		}
	}

	return ticks
}

// gridlines are the in-row vertical lines; the 1440 tick would duplicate the row boundary
func (e *Engine) gridlines() []dto.GridTick {
	minutes := TickMinutes(e.TickMinutes)
	ticks := make([]dto.GridTick, 0, len(minutes))

	for _, m := range minutes {
		if m >= MinutesPerDay {
			continue
		}

		ticks = append(ticks, dto.GridTick{
			Minute:       m,
			LeftFraction: LeftFraction(m),
			Major:        m%60 == 0,
		})
	}

	return ticks
}

// RenderLane produces the drawable content of one day row from the full,
// unordered interval list of an aircraft.
func (e *Engine) RenderLane(day dto.DayOfWeek, intervals []dto.FlightInterval) dto.DayLane {
	dayIntervals := BucketDay(intervals, day)

	bars := make([]dto.FlightBar, len(dayIntervals))
	for i, interval := range dayIntervals {
		bars[i] = makeBar(interval)
	}

	return dto.DayLane{
		Day:         day,
		Label:       day.Label(),
		Gridlines:   e.gridlines(),
		Bars:        bars,
		Turnarounds: NewDetector(e.Hub).DetectTurnarounds(day, dayIntervals),
	}
}

func makeBar(interval dto.FlightInterval) dto.FlightBar {
	bar := dto.FlightBar{
		Kind:             dto.PrimitiveBar,
		LeftFraction:     LeftFraction(interval.StartMinute),
		WidthFraction:    WidthFraction(interval.StartMinute, interval.EndMinute),
		StartMinute:      interval.StartMinute,
		EndMinute:        interval.EndMinute,
		Label:            interval.Label,
		Caption:          barCaption(interval),
		TripID:           interval.TripID,
		Color:            interval.Color,
		ColorHex:         ColorHex(interval.Color),
		ContinuesNextDay: interval.ContinuesNextDay,
		ArrivalIsNextDay: interval.ArrivalIsNextDay,
	}

	if route, ok := ParseRoute(interval.Label); ok {
		bar.Route = &route
	}

	return bar
}

// e.g. "08:00-10:00" or "22:30-24:00+" for a flight continuing past midnight
func barCaption(interval dto.FlightInterval) string {
	start := clampMinute(interval.StartMinute)
	end := clampMinute(interval.EndMinute)

	caption := formatClock(start) + "-" + formatClock(end)
	if interval.ContinuesNextDay {
		caption += "+"
	}

	return caption
}

func formatClock(minute int) string {
	if minute == MinutesPerDay {
		return "24:00"
	}

	return FormatHHMM(minute)
}

// RenderAircraft lays out the seven day rows of one aircraft, Monday first.
func (e *Engine) RenderAircraft(aircraft dto.AircraftWeek) dto.AircraftTimetable {
	lanes := make([]dto.DayLane, len(dto.Week))
	for i, day := range dto.Week {
		lanes[i] = e.RenderLane(day, aircraft.Bars)
	}

	return dto.AircraftTimetable{
		AircraftID: aircraft.AircraftID,
		Tail:       aircraft.Tail,
		Hub:        e.Hub,
		Lanes:      lanes,
	}
}

// RenderWeek lays out every aircraft of a weekly schedule.
func (e *Engine) RenderWeek(schedule dto.WeeklySchedule) dto.TimetableResponse {
	aircraft := make([]dto.AircraftTimetable, len(schedule.Aircraft))
	metadata := dto.Metadata{TotalAircraft: len(schedule.Aircraft)}

	for i, a := range schedule.Aircraft {
		aircraft[i] = e.RenderAircraft(a)

		for _, lane := range aircraft[i].Lanes {
			metadata.TotalBars += len(lane.Bars)
			metadata.TotalTurnarounds += len(lane.Turnarounds)
		}
	}

	return dto.TimetableResponse{
		WeekStart:   schedule.WeekStart,
		WeekEnd:     schedule.WeekEnd,
		Hub:         e.Hub,
		TickMinutes: e.TickMinutes,
		Ruler:       e.Ruler(),
		Aircraft:    aircraft,
		Metadata:    metadata,
	}
}
