package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Types in this file mirror the weekly gantt payload of the scheduling
// service, so they keep its camelCase field names.

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// Week lists the days in display order, Monday first.
var Week = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayLabels = map[DayOfWeek]string{
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
	Saturday:  "Sat",
	Sunday:    "Sun",
}

// Label returns the short row label, e.g. "Wed". Unknown days return an empty string.
func (d DayOfWeek) Label() string {
	return dayLabels[d]
}

func (d DayOfWeek) Valid() bool {
	_, ok := dayLabels[d]
	return ok
}

type TripColor string

const (
	ColorBlue   TripColor = "BLUE"
	ColorGreen  TripColor = "GREEN"
	ColorOrange TripColor = "ORANGE"
	ColorPurple TripColor = "PURPLE"
	ColorTeal   TripColor = "TEAL"
	ColorPink   TripColor = "PINK"
	ColorBrown  TripColor = "BROWN"
	ColorCyan   TripColor = "CYAN"
	ColorLime   TripColor = "LIME"
	ColorRed    TripColor = "RED"
)

// TripID identifies the round trip a leg belongs to. Upstream sends it either
// as a JSON number or as a string; both decode to the same textual form.
type TripID string

func (t *TripID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("trip id: %w", err)
		}
		*t = TripID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("trip id: %w", err)
	}

	if i, err := n.Int64(); err == nil {
		*t = TripID(strconv.FormatInt(i, 10))
		return nil
	}

	*t = TripID(n.String())
	return nil
}

// FlightInterval is one bar of a day row as produced by the scheduling
// service. Minutes are minute-of-day; a flight running past midnight is
// truncated at 1440 and flagged with ContinuesNextDay.
type FlightInterval struct {
	Day              DayOfWeek `json:"day"`
	StartMinute      int       `json:"startMinute"`
	EndMinute        int       `json:"endMinute"`
	Label            string    `json:"label"`
	TripID           *TripID   `json:"tripId,omitempty"`
	Color            TripColor `json:"color"`
	ContinuesNextDay bool      `json:"continuesNextDay"`
	ArrivalIsNextDay bool      `json:"arrivalIsNextDay"`
	TurnaroundMins   *int      `json:"turnaroundMins,omitempty"`
}

// Trip returns the trip id, reporting false when it is absent or blank.
func (f FlightInterval) Trip() (TripID, bool) {
	if f.TripID == nil || *f.TripID == "" {
		return "", false
	}

	return *f.TripID, true
}

// AircraftWeek is the unordered list of intervals for one aircraft.
type AircraftWeek struct {
	AircraftID int64            `json:"aircraftId"`
	Tail       string           `json:"tail"`
	Bars       []FlightInterval `json:"bars"`
}

// WeeklySchedule is the upstream response for one week.
type WeeklySchedule struct {
	Aircraft  []AircraftWeek `json:"aircraft"`
	WeekStart string         `json:"weekStart"`
	WeekEnd   string         `json:"weekEnd"`
}
