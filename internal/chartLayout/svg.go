package chartLayout

import (
	"fmt"
	"html"
	"math"
	"strings"
)

const (
	backgroundStroke = "rgba(255,255,255,.10)"
	labelFill        = "rgba(232,238,246,.92)"
	labelFont        = "700 14px system-ui, -apple-system, Segoe UI, Roboto, Arial"
)

// RenderSVG draws the background ring, every drawn arc and its label.
func RenderSVG(d Donut) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(d.Size), num(d.Size), num(d.Size), num(d.Size))
	sb.WriteString(`<defs><filter id="labelShadow" x="-50%" y="-50%" width="200%" height="200%">` +
		`<feDropShadow dx="0" dy="0" stdDeviation="5" flood-color="rgba(0,0,0,.60)"/></filter></defs>`)

	fmt.Fprintf(&sb, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
		num(d.CX), num(d.CY), num(d.Radius), backgroundStroke, num(d.Ring))

	for _, s := range d.Drawn() {
		fmt.Fprintf(&sb, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`,
			arcPath(d.CX, d.CY, d.Radius, s.DrawStart, s.DrawEnd), html.EscapeString(s.Color), num(d.Ring))
	}

	for _, s := range d.Drawn() {
		fmt.Fprintf(&sb, `<text x="%s" y="%s" fill="%s" style="font: %s" text-anchor="middle" dominant-baseline="middle" filter="url(#labelShadow)">%s</text>`,
			num(s.LabelX), num(s.LabelY), labelFill, labelFont, html.EscapeString(s.Label))
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// arcPath is a clockwise circular arc from a0 to a1.
func arcPath(cx, cy, r, a0, a1 float64) string {
	x0, y0 := cx+math.Cos(a0)*r, cy+math.Sin(a0)*r
	x1, y1 := cx+math.Cos(a1)*r, cy+math.Sin(a1)*r

	largeArc := 0
	if a1-a0 > math.Pi {
		largeArc = 1
	}

	return fmt.Sprintf("M %s %s A %s %s 0 %d 1 %s %s", num(x0), num(y0), num(r), num(r), largeArc, num(x1), num(y1))
}

func num(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
