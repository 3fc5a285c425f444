package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
)

const (
	DefaultTextWidth = 96
	minTextWidth     = 24
	cellEpsilon      = 1e-9

	tickCell       = '.'
	barCell        = '='
	turnaroundCell = '~'
	continueCell   = '>'
)

// span converts a fraction range into [start, end) cell indexes. Any visible
// width occupies at least one cell.
func span(left, width float64, cells int) (int, int) {
	start := int(math.Floor(left*float64(cells) + cellEpsilon))
	end := int(math.Ceil((left+width)*float64(cells) - cellEpsilon))

	start = min(max(start, 0), cells-1)
	end = min(end, cells)
	if width > 0 && end <= start {
		end = start + 1
	}

	return start, end
}

// TextLane renders one lane as a row of width cells.
func TextLane(lane dto.DayLane, width int) string {
	cells := []rune(strings.Repeat(" ", width))

	for _, p := range lane.Primitives() {
		start, end := span(p.LeftFraction, p.WidthFraction, width)

		switch p.Kind {
		case dto.PrimitiveTick:
			if cells[start] == ' ' {
				cells[start] = tickCell
			}
		case dto.PrimitiveBar:
			for i := start; i < end; i++ {
				cells[i] = barCell
			}

			caption := []rune(p.Caption)
			if len(caption) <= end-start {
				copy(cells[start:], caption)
			}

			if p.Continues && end > start {
				cells[end-1] = continueCell
			}
		case dto.PrimitiveTurnaround:
			for i := start; i < end; i++ {
				if cells[i] == ' ' || cells[i] == tickCell {
					cells[i] = turnaroundCell
				}
			}
		}
	}

	return fmt.Sprintf("%-4s|%s|", lane.Label, string(cells))
}

func textRuler(ruler []dto.GridTick, width int) string {
	cells := []rune(strings.Repeat(" ", width+1))

	for _, tick := range ruler {
		if !tick.Major || tick.Minute%360 != 0 || tick.Label == "" {
			continue
		}

		start, _ := span(tick.LeftFraction, 0, width+1)
		copy(cells[start:], []rune(tick.Label))
	}

	return "    " + strings.TrimRight(string(cells), " ")
}

// RenderText writes the weekly timetable as fixed-width text, one block per
// aircraft. Bars are drawn with '=', ground time with '~', and a trailing '>'
// marks a flight landing the next day.
func RenderText(w io.Writer, timetable dto.TimetableResponse, width int) error {
	if width < minTextWidth {
		width = DefaultTextWidth
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Week %s to %s, hub %s\n", timetable.WeekStart, timetable.WeekEnd, timetable.Hub)

	if len(timetable.Aircraft) == 0 {
		b.WriteString("No aircraft assigned for this week\n")
	}

	for _, aircraft := range timetable.Aircraft {
		fmt.Fprintf(&b, "\n%s (#%d)\n", aircraft.Tail, aircraft.AircraftID)
		b.WriteString(textRuler(timetable.Ruler, width))
		b.WriteByte('\n')

		for _, lane := range aircraft.Lanes {
			b.WriteString(TextLane(lane, width))
			b.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write timetable: %w", err)
	}

	return nil
}
