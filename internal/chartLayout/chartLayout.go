// Package chartLayout lays out the proportional donut chart and draws it as SVG.
//
// Angles are in radians, 0 points right and angles grow clockwise (screen coordinates,
// y axis pointing down), so the first segment starts at 12 o'clock (-π/2).
package chartLayout

import (
	"fmt"
	"math"

	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/shopspring/decimal"
)

const (
	FullCircle = 2 * math.Pi
	StartAngle = -math.Pi / 2
	// Gap is cut from both ends of every drawn arc, half on each side.
	Gap = math.Pi / 180 * 2

	DefaultSize = 360
	MinSize     = 120
	MaxSize     = 1600

	ringRatio        = 0.09
	radiusRatio      = 0.36
	labelOffsetRatio = 1.10
)

type Segment struct {
	Symbol   string
	Color    string
	Fraction float64
	// Start and Span are the ungapped slice of the circle owned by the row.
	Start float64
	Span  float64
	// DrawStart and DrawEnd are the gap adjusted arc, valid when Drawn.
	DrawStart float64
	DrawEnd   float64
	Drawn     bool
	Label     string
	LabelX    float64
	LabelY    float64
}

type Donut struct {
	Size     float64
	CX       float64
	CY       float64
	Radius   float64
	Ring     float64
	Segments []Segment
}

func ClampSize(size float64) float64 {
	if math.IsNaN(size) || size <= 0 {
		return DefaultSize
	}
	return math.Max(MinSize, math.Min(MaxSize, size))
}

// Layout computes one segment per row, in row order, proportional to row values.
// A zero total gives zero spans and nothing drawn.
func Layout(rows []model.ReportRow, size float64) Donut {
	size = ClampSize(size)

	donut := Donut{
		Size:     size,
		CX:       size / 2,
		CY:       size / 2,
		Radius:   size * radiusRatio,
		Ring:     size * ringRatio,
		Segments: make([]Segment, 0, len(rows)),
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Value)
	}

	labelRadius := donut.Radius + donut.Ring*labelOffsetRatio
	angle := StartAngle

	for _, r := range rows {
		frac := 0.0
		if total.IsPositive() {
			frac = r.Value.Div(total).InexactFloat64()
		}
		span := frac * FullCircle

		seg := Segment{
			Symbol:    r.Symbol,
			Color:     r.Color,
			Fraction:  frac,
			Start:     angle,
			Span:      span,
			DrawStart: angle + Gap/2,
			DrawEnd:   angle + span - Gap/2,
		}

		if seg.DrawEnd > seg.DrawStart {
			seg.Drawn = true
			mid := (seg.DrawStart + seg.DrawEnd) / 2
			seg.LabelX = donut.CX + math.Cos(mid)*labelRadius
			seg.LabelY = donut.CY + math.Sin(mid)*labelRadius
			seg.Label = fmt.Sprintf("%s %.1f%%", r.Symbol, frac*100)
		}

		donut.Segments = append(donut.Segments, seg)
		angle += span
	}

	return donut
}

func (d Donut) Drawn() []Segment {
	res := make([]Segment, 0, len(d.Segments))
	for _, s := range d.Segments {
		if s.Drawn {
			res = append(res, s)
		}
	}
	return res
}

// TotalSpan is the sum of ungapped spans: 2π for any positive total, 0 otherwise.
func (d Donut) TotalSpan() float64 {
	sum := 0.0
	for _, s := range d.Segments {
		sum += s.Span
	}
	return sum
}
