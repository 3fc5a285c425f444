package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripID(id string) *dto.TripID {
	t := dto.TripID(id)
	return &t
}

func sampleWeek() dto.TimetableResponse {
	trip := tripID("7")
	late := dto.FlightInterval{Day: dto.Friday, StartMinute: 1350, EndMinute: 1440,
		Label: "CMB → LHR", Color: dto.ColorRed, ContinuesNextDay: true}

	return timeline.NewEngine("CMB", 30).RenderWeek(dto.WeeklySchedule{
		WeekStart: "2025-01-06",
		WeekEnd:   "2025-01-12",
		Aircraft: []dto.AircraftWeek{
			{AircraftID: 3, Tail: "4R-ABC", Bars: []dto.FlightInterval{
				{Day: dto.Wednesday, StartMinute: 480, EndMinute: 600, Label: "CMB → DXB", TripID: trip, Color: dto.ColorBlue},
				{Day: dto.Wednesday, StartMinute: 660, EndMinute: 780, Label: "DXB → CMB", TripID: trip, Color: dto.ColorBlue},
				late,
			}},
			{AircraftID: 4, Tail: "4R-XYZ"},
		},
	})
}

func TestSpan_Closure(t *testing.T) {
	spanRequest := func(left, width float64, cells, wantStart, wantEnd int) func(t *testing.T) {
		return func(t *testing.T) {
			start, end := span(left, width, cells)
			assert.Equal(t, []int{wantStart, wantEnd}, []int{start, end})
		}
	}

	t.Run("aligned", spanRequest(0.5, 0.25, 96, 48, 72))
	t.Run("partial_cells_round_outward", spanRequest(0.015, 0.01, 100, 1, 3))
	t.Run("thin_bar_keeps_one_cell", spanRequest(0.5, 0.0001, 96, 48, 49))
	t.Run("zero_width", spanRequest(0.5, 0, 96, 48, 48))
	t.Run("clamped_left", spanRequest(-0.1, 0.2, 10, 0, 1))
	t.Run("full_day", spanRequest(0, 1, 96, 0, 96))
}

func TestTextLane(t *testing.T) {
	week := sampleWeek()
	lanes := week.Aircraft[0].Lanes

	t.Run("bars_turnaround_and_ticks", func(t *testing.T) {
		row := TextLane(lanes[2], 144)
		require.True(t, strings.HasPrefix(row, "Wed |"))

		cells := []rune(strings.TrimSuffix(strings.TrimPrefix(row, "Wed |"), "|"))
		require.Len(t, cells, 144)

		assert.Equal(t, "CMB → DXB", string(cells[48:57]))
		assert.Equal(t, "===", string(cells[57:60]))
		assert.Equal(t, "~~~~~~", string(cells[60:66]))
		assert.Equal(t, "DXB → CMB", string(cells[66:75]))
		assert.Equal(t, '.', cells[0])
		assert.Equal(t, '.', cells[3])
	})

	t.Run("continuation_marker", func(t *testing.T) {
		row := TextLane(lanes[4], 96)
		assert.True(t, strings.HasSuffix(row, "=====>|"))
	})

	t.Run("empty_day_only_ticks", func(t *testing.T) {
		row := TextLane(lanes[0], 96)
		assert.NotContains(t, row, "=")
		assert.NotContains(t, row, "~")
		assert.Equal(t, 48, strings.Count(row, "."))
	})
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, sampleWeek(), 0))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Week 2025-01-06 to 2025-01-12, hub CMB\n"))
	assert.Contains(t, out, "4R-ABC (#3)")
	assert.Contains(t, out, "4R-XYZ (#4)")
	assert.Contains(t, out, "    00:00")
	assert.Equal(t, 14, strings.Count(out, "|\n"))

	buf.Reset()
	require.NoError(t, RenderText(&buf, dto.TimetableResponse{WeekStart: "2025-01-06"}, 96))
	assert.Contains(t, buf.String(), "No aircraft assigned for this week")
}

func TestRenderPDF(t *testing.T) {
	t.Run("fleet", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderPDF(&buf, sampleWeek()))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		assert.True(t, bytes.Contains(buf.Bytes(), []byte("%%EOF")))
	})

	t.Run("empty_fleet", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderPDF(&buf, dto.TimetableResponse{WeekStart: "2025-01-06"}))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})
}
