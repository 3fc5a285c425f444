package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/timeline"
	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin  = 10.0
	headerSpace = 12.0
	labelWidth  = 14.0
	rulerHeight = 6.0
	rowHeight   = 10.0
	barInset    = 1.5
)

// core fonts are cp1252, which has no arrows
var arrowReplacer = strings.NewReplacer("→", ">", "➔", ">", "➝", ">", "⟶", ">", "⇒", ">")

// LaneGrid maps lane fractions and row numbers onto PDF space (mm). The grid's
// top-left corner sits at (OffsetU, OffsetV); day labels are drawn left of it.
type LaneGrid struct {
	*gofpdf.Fpdf

	OffsetU, OffsetV float64
	W, RowH          float64

	translate func(string) string
}

// U maps a lane fraction in [0,1] to a page x coordinate.
func (g LaneGrid) U(fraction float64) float64 {
	return g.OffsetU + fraction*g.W
}

// V is the top edge of a lane row.
func (g LaneGrid) V(row int) float64 {
	return g.OffsetV + float64(row)*g.RowH
}

func (g LaneGrid) text(x, y float64, s string) {
	g.Text(x, y, g.translate(arrowReplacer.Replace(s)))
}

// DrawRuler labels the major ticks above the first row.
func (g LaneGrid) DrawRuler(ruler []dto.GridTick) {
	g.SetFont("Helvetica", "", 6)
	g.SetTextColor(0x40, 0x40, 0x40)

	for _, tick := range ruler {
		if tick.Label == "" || !tick.Major {
			continue
		}

		w := g.GetStringWidth(tick.Label)
		g.text(g.U(tick.LeftFraction)-w/2, g.OffsetV-1.5, tick.Label)
	}
}

// DrawLane draws one day row from its primitives, in order.
func (g LaneGrid) DrawLane(row int, lane dto.DayLane) {
	top := g.V(row)

	g.SetFont("Helvetica", "B", 8)
	g.SetTextColor(0, 0, 0)
	g.text(g.OffsetU-labelWidth+1, top+g.RowH/2+1, lane.Label)

	g.SetLineWidth(0.1)
	g.SetDrawColor(0xc0, 0xc0, 0xc0)
	g.Rect(g.OffsetU, top, g.W, g.RowH, "D")

	for _, p := range lane.Primitives() {
		switch p.Kind {
		case dto.PrimitiveTick:
			g.drawTick(top, p)
		case dto.PrimitiveBar:
			g.drawBar(top, p)
		case dto.PrimitiveTurnaround:
			g.drawTurnaround(top, p)
		}
	}
}

func (g LaneGrid) drawTick(top float64, p dto.Primitive) {
	g.SetLineWidth(0.05)
	g.SetDrawColor(0xe0, 0xe0, 0xe0)
	x := g.U(p.LeftFraction)
	g.Line(x, top, x, top+g.RowH)
}

func (g LaneGrid) drawBar(top float64, p dto.Primitive) {
	x, w := g.U(p.LeftFraction), p.WidthFraction*g.W
	y, h := top+barInset, g.RowH-2*barInset

	r, gr, b := timeline.ColorRGB(p.Color)
	g.SetFillColor(r, gr, b)
	g.Rect(x, y, w, h, "F")

	g.SetFont("Helvetica", "", 6)
	g.SetTextColor(0xff, 0xff, 0xff)

	caption := arrowReplacer.Replace(p.Caption)
	if g.GetStringWidth(caption) < w-1 {
		g.text(x+0.5, y+h/2+1, caption)
	}

	if p.Continues {
		// chevron at the right edge, the flight lands tomorrow
		g.SetDrawColor(0xff, 0xff, 0xff)
		g.SetLineWidth(0.3)
		right := x + w
		g.Line(right-1.5, y+1, right-0.5, y+h/2)
		g.Line(right-0.5, y+h/2, right-1.5, y+h-1)
	}
}

func (g LaneGrid) drawTurnaround(top float64, p dto.Primitive) {
	x, w := g.U(p.LeftFraction), p.WidthFraction*g.W
	y, h := top+barInset, g.RowH-2*barInset

	g.SetLineWidth(0.2)
	g.SetDrawColor(0x60, 0x60, 0x60)
	g.SetDashPattern([]float64{0.6, 0.6}, 0)
	g.Rect(x, y, w, h, "D")
	g.SetDashPattern([]float64{}, 0)

	g.SetFont("Helvetica", "I", 5)
	g.SetTextColor(0x40, 0x40, 0x40)
	if cw := g.GetStringWidth(p.Caption); cw < w-0.5 {
		g.text(x+(w-cw)/2, y+h/2+1, p.Caption)
	}
}

// RenderPDF writes the weekly timetable as a landscape A4 document, one page per aircraft.
func RenderPDF(w io.Writer, timetable dto.TimetableResponse) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Fleet timetable %s", timetable.WeekStart), true)
	pdf.SetAutoPageBreak(false, 0)

	pageW, _ := pdf.GetPageSize()
	grid := LaneGrid{
		Fpdf:      pdf,
		OffsetU:   pageMargin + labelWidth,
		OffsetV:   pageMargin + headerSpace + rulerHeight,
		W:         pageW - 2*pageMargin - labelWidth,
		RowH:      rowHeight,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}

	if len(timetable.Aircraft) == 0 {
		pdf.AddPage()
		grid.drawHeader(timetable, "No aircraft assigned for this week")
	}

	for _, aircraft := range timetable.Aircraft {
		pdf.AddPage()
		grid.drawHeader(timetable, fmt.Sprintf("%s (#%d)", aircraft.Tail, aircraft.AircraftID))
		grid.DrawRuler(timetable.Ruler)

		for row, lane := range aircraft.Lanes {
			grid.DrawLane(row, lane)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	return nil
}

func (g LaneGrid) drawHeader(timetable dto.TimetableResponse, title string) {
	g.SetFont("Helvetica", "B", 12)
	g.SetTextColor(0, 0, 0)
	g.text(pageMargin, pageMargin+4, title)

	g.SetFont("Helvetica", "", 8)
	g.text(pageMargin, pageMargin+9, fmt.Sprintf("Week %s to %s, hub %s",
		timetable.WeekStart, timetable.WeekEnd, timetable.Hub))
}
