package timeline

import (
	"testing"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripID(id string) *dto.TripID {
	t := dto.TripID(id)
	return &t
}

func ptrMinutes(m int) *int {
	return &m
}

func leg(label string, start, end int, trip *dto.TripID) dto.FlightInterval {
	return dto.FlightInterval{
		Day:         dto.Wednesday,
		StartMinute: start,
		EndMinute:   end,
		Label:       label,
		TripID:      trip,
		Color:       dto.ColorBlue,
	}
}

func TestDetector_DetectTurnarounds_Derived(t *testing.T) {
	type gapWant struct {
		left     float64
		width    float64
		duration int
	}

	detectRequest := func(hub string, sorted []dto.FlightInterval, want []gapWant) func(t *testing.T) {
		return func(t *testing.T) {
			got := NewDetector(hub).DetectTurnarounds(dto.Wednesday, sorted)
			require.Len(t, got, len(want))

			for i, w := range want {
				assert.Equal(t, w.left, got[i].LeftFraction)
				assert.Equal(t, w.width, got[i].WidthFraction)
				assert.Equal(t, w.duration, got[i].DurationMinutes)
				assert.Equal(t, dto.TurnaroundDerived, got[i].Source)
				assert.Equal(t, dto.PrimitiveTurnaround, got[i].Kind)
				assert.Equal(t, dto.Wednesday, got[i].Day)
			}
		}
	}

	trip7 := tripID("7")

	t.Run("outbound_then_inbound", detectRequest("CMB", []dto.FlightInterval{
		leg("CMB → DXB", 480, 600, trip7),
		leg("DXB → CMB", 660, 780, trip7),
	}, []gapWant{{left: 600.0 / 1440, width: 60.0 / 1440, duration: 60}}))

	t.Run("reversed_direction", detectRequest("CMB", []dto.FlightInterval{
		leg("DXB → CMB", 480, 600, trip7),
		leg("CMB → DXB", 660, 780, trip7),
	}, nil))

	t.Run("different_trips", detectRequest("CMB", []dto.FlightInterval{
		leg("CMB → DXB", 480, 600, tripID("7")),
		leg("DXB → CMB", 660, 780, tripID("8")),
	}, nil))

	t.Run("missing_trip_id", detectRequest("CMB", []dto.FlightInterval{
		leg("CMB → DXB", 480, 600, nil),
		leg("DXB → CMB", 660, 780, nil),
	}, nil))

	t.Run("blank_trip_id", detectRequest("CMB", []dto.FlightInterval{
		leg("CMB → DXB", 480, 600, tripID("")),
		leg("DXB → CMB", 660, 780, tripID("")),
	}, nil))

	t.Run("unparseable_label", detectRequest("CMB", []dto.FlightInterval{
		leg("8D821", 480, 600, trip7),
		leg("DXB → CMB", 660, 780, trip7),
	}, nil))

	t.Run("inbound_from_other_station", detectRequest("CMB", []dto.FlightInterval{
		leg("CMB → DXB", 480, 600, trip7),
		leg("MLE → CMB", 660, 780, trip7),
	}, nil))

	t.Run("hub_to_hub", detectRequest("CMB", []dto.FlightInterval{
		leg("CMB → CMB", 480, 600, trip7),
		leg("CMB → CMB", 660, 780, trip7),
	}, nil))

	t.Run("zero_gap", detectRequest("CMB", []dto.FlightInterval{
		leg("CMB → DXB", 480, 600, trip7),
		leg("DXB → CMB", 600, 780, trip7),
	}, nil))

	t.Run("overlapping_legs", detectRequest("CMB", []dto.FlightInterval{
		leg("CMB → DXB", 480, 700, trip7),
		leg("DXB → CMB", 660, 780, trip7),
	}, nil))

	t.Run("other_hub_configured", detectRequest("DXB", []dto.FlightInterval{
		leg("CMB → DXB", 480, 600, trip7),
		leg("DXB → CMB", 660, 780, trip7),
	}, nil))

	t.Run("non_adjacent_legs", detectRequest("CMB", []dto.FlightInterval{
		leg("CMB → DXB", 480, 600, trip7),
		leg("DXB → MLE", 620, 640, tripID("9")),
		leg("DXB → CMB", 660, 780, trip7),
	}, nil))

	t.Run("two_round_trips", detectRequest("CMB", []dto.FlightInterval{
		leg("CMB → DXB", 60, 300, tripID("1")),
		leg("DXB → CMB", 360, 600, tripID("1")),
		leg("CMB → MLE", 700, 790, tripID("2")),
		leg("MLE → CMB", 835, 925, tripID("2")),
	}, []gapWant{
		{left: 300.0 / 1440, width: 60.0 / 1440, duration: 60},
		{left: 790.0 / 1440, width: 45.0 / 1440, duration: 45},
	}))

	t.Run("empty_day", detectRequest("CMB", nil, nil))
	t.Run("single_leg", detectRequest("CMB", []dto.FlightInterval{leg("CMB → DXB", 480, 600, trip7)}, nil))
}

func TestDetector_DetectTurnarounds_Server(t *testing.T) {
	trip7 := tripID("7")

	t.Run("last_interval_of_day", func(t *testing.T) {
		a := leg("8D821", 480, 600, nil)
		a.TurnaroundMins = ptrMinutes(45)

		got := NewDetector("CMB").DetectTurnarounds(dto.Wednesday, []dto.FlightInterval{a})
		require.Len(t, got, 1)
		assert.Equal(t, 45, got[0].DurationMinutes)
		assert.Equal(t, 600.0/1440, got[0].LeftFraction)
		assert.Equal(t, 45.0/1440, got[0].WidthFraction)
		assert.Equal(t, 600, got[0].StartMinute)
		assert.Equal(t, "45m", got[0].Caption)
		assert.Equal(t, dto.TurnaroundServer, got[0].Source)
		assert.Nil(t, got[0].Departure)
	})

	t.Run("ignores_next_interval_identity", func(t *testing.T) {
		a := leg("DXB → CMB", 480, 600, trip7)
		a.TurnaroundMins = ptrMinutes(45)
		b := leg("BKK → SIN", 610, 700, tripID("99"))

		got := NewDetector("CMB").DetectTurnarounds(dto.Wednesday, []dto.FlightInterval{a, b})
		require.Len(t, got, 1)
		assert.Equal(t, 45, got[0].DurationMinutes)
		require.NotNil(t, got[0].Departure)
		assert.Equal(t, "BKK → SIN", got[0].Departure.Label)
	})

	t.Run("takes_precedence_over_hub_pairing", func(t *testing.T) {
		a := leg("CMB → DXB", 480, 600, trip7)
		a.TurnaroundMins = ptrMinutes(30)
		b := leg("DXB → CMB", 660, 780, trip7)

		got := NewDetector("CMB").DetectTurnarounds(dto.Wednesday, []dto.FlightInterval{a, b})
		require.Len(t, got, 1)
		assert.Equal(t, 30, got[0].DurationMinutes)
		assert.Equal(t, dto.TurnaroundServer, got[0].Source)
	})

	t.Run("zero_disables_pairing", func(t *testing.T) {
		a := leg("CMB → DXB", 480, 600, trip7)
		a.TurnaroundMins = ptrMinutes(0)
		b := leg("DXB → CMB", 660, 780, trip7)

		got := NewDetector("CMB").DetectTurnarounds(dto.Wednesday, []dto.FlightInterval{a, b})
		assert.Empty(t, got)
	})

	t.Run("clipped_at_lane_end", func(t *testing.T) {
		a := leg("8D821", 1300, 1420, nil)
		a.TurnaroundMins = ptrMinutes(90)

		got := NewDetector("CMB").DetectTurnarounds(dto.Wednesday, []dto.FlightInterval{a})
		require.Len(t, got, 1)
		assert.Equal(t, 90, got[0].DurationMinutes)
		assert.Equal(t, 20.0/1440, got[0].WidthFraction)
		assert.Equal(t, "1h 30m", got[0].Caption)
	})
}

func TestDetector_DetectTurnarounds_DoesNotMutateInput(t *testing.T) {
	trip7 := tripID("7")
	sorted := []dto.FlightInterval{
		leg("CMB → DXB", 480, 600, trip7),
		leg("DXB → CMB", 660, 780, trip7),
	}

	got := NewDetector("CMB").DetectTurnarounds(dto.Wednesday, sorted)
	require.Len(t, got, 1)
	got[0].Departure.Label = "changed"

	assert.Equal(t, "DXB → CMB", sorted[1].Label)
}
