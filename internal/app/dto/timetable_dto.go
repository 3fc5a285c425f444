package dto

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/exception"
)

type PrimitiveKind string

const (
	PrimitiveTick       PrimitiveKind = "tick"
	PrimitiveBar        PrimitiveKind = "bar"
	PrimitiveTurnaround PrimitiveKind = "turnaround"
)

type TurnaroundSource string

const (
	// TurnaroundServer is ground time supplied by the scheduling service.
	TurnaroundServer TurnaroundSource = "server"
	// TurnaroundDerived is ground time derived from an outbound/inbound pair at the hub.
	TurnaroundDerived TurnaroundSource = "derived"
)

type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type GridTick struct {
	Minute       int     `json:"minute"`
	LeftFraction float64 `json:"left_fraction"`
	Label        string  `json:"label,omitempty"`
	Major        bool    `json:"major"`
}

type FlightBar struct {
	Kind             PrimitiveKind `json:"kind"`
	LeftFraction     float64       `json:"left_fraction"`
	WidthFraction    float64       `json:"width_fraction"`
	StartMinute      int           `json:"start_minute"`
	EndMinute        int           `json:"end_minute"`
	Label            string        `json:"label"`
	Caption          string        `json:"caption"`
	Route            *Route        `json:"route,omitempty"`
	TripID           *TripID       `json:"trip_id,omitempty"`
	Color            TripColor     `json:"color"`
	ColorHex         string        `json:"color_hex"`
	ContinuesNextDay bool          `json:"continues_next_day"`
	ArrivalIsNextDay bool          `json:"arrival_is_next_day"`
}

type TurnaroundGap struct {
	Kind            PrimitiveKind    `json:"kind"`
	Day             DayOfWeek        `json:"day"`
	LeftFraction    float64          `json:"left_fraction"`
	WidthFraction   float64          `json:"width_fraction"`
	StartMinute     int              `json:"start_minute"`
	DurationMinutes int              `json:"duration_minutes"`
	Caption         string           `json:"caption"`
	Source          TurnaroundSource `json:"source"`
	Arrival         FlightInterval   `json:"arrival"`
	Departure       *FlightInterval  `json:"departure,omitempty"`
}

// Primitive is the flattened, surface-independent form of anything drawn on a lane.
type Primitive struct {
	Kind          PrimitiveKind
	LeftFraction  float64
	WidthFraction float64
	Color         TripColor
	Caption       string
	Continues     bool
}

type DayLane struct {
	Day         DayOfWeek       `json:"day"`
	Label       string          `json:"label"`
	Gridlines   []GridTick      `json:"gridlines"`
	Bars        []FlightBar     `json:"bars"`
	Turnarounds []TurnaroundGap `json:"turnarounds"`
}

// Primitives returns the lane content in draw order: gridlines, bars, then turnaround overlays.
func (l DayLane) Primitives() []Primitive {
	out := make([]Primitive, 0, len(l.Gridlines)+len(l.Bars)+len(l.Turnarounds))

	for _, tick := range l.Gridlines {
		out = append(out, Primitive{
			Kind:         PrimitiveTick,
			LeftFraction: tick.LeftFraction,
		})
	}

	for _, bar := range l.Bars {
		out = append(out, Primitive{
			Kind:          PrimitiveBar,
			LeftFraction:  bar.LeftFraction,
			WidthFraction: bar.WidthFraction,
			Color:         bar.Color,
			Caption:       bar.Label,
			Continues:     bar.ContinuesNextDay,
		})
	}

	for _, gap := range l.Turnarounds {
		out = append(out, Primitive{
			Kind:          PrimitiveTurnaround,
			LeftFraction:  gap.LeftFraction,
			WidthFraction: gap.WidthFraction,
			Caption:       gap.Caption,
		})
	}

	return out
}

type AircraftTimetable struct {
	AircraftID int64     `json:"aircraft_id"`
	Tail       string    `json:"tail"`
	Hub        string    `json:"hub"`
	Lanes      []DayLane `json:"lanes"`
}

type Metadata struct {
	TotalAircraft    int  `json:"total_aircraft"`
	TotalBars        int  `json:"total_bars"`
	TotalTurnarounds int  `json:"total_turnarounds"`
	RenderTimeMs     int  `json:"render_time_ms"`
	CacheHit         bool `json:"cache_hit"`
}

// TimetableResponse is the response struct for the weekly timetable endpoint
type TimetableResponse struct {
	WeekStart   string              `json:"week_start"`
	WeekEnd     string              `json:"week_end"`
	Hub         string              `json:"hub"`
	TickMinutes int                 `json:"tick_minutes"`
	Ruler       []GridTick          `json:"ruler"`
	Aircraft    []AircraftTimetable `json:"aircraft"`
	Metadata    Metadata            `json:"metadata"`
}

type TimetableRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Hub  string `json:"hub,omitempty" validate:"omitempty,airport"`
}

func (t *TimetableRequest) Validate() error {
	if err := ValidateSingleError(t); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type AircraftTimetableRequest struct {
	TimetableRequest
	AircraftID int64 `json:"aircraft_id" validate:"required,gt=0"`
}

func (a *AircraftTimetableRequest) Validate() error {
	if err := ValidateSingleError(a); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// LayoutRequest lays out caller supplied intervals without asking the scheduling service.
type LayoutRequest struct {
	Hub        string           `json:"hub,omitempty" validate:"omitempty,airport"`
	AircraftID int64            `json:"aircraft_id,omitempty"`
	Tail       string           `json:"tail,omitempty"`
	Bars       []FlightInterval `json:"bars" validate:"required"`
}

func (l *LayoutRequest) Bind(r *http.Request) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (l *LayoutRequest) Validate() error {
	if err := ValidateSingleError(l); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// PDFDocument carries a rendered chart back to the transport layer.
type PDFDocument struct {
	Filename string
	Content  []byte
}
