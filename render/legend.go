package render

import (
	"math"

	"flowpaint/geometry"
	"flowpaint/scene"
	"flowpaint/style"
)

// legendBox is the placed legend: its frame and one swatch per entry.
type legendBox struct {
	frame    geometry.Rect
	swatches []geometry.Rect
	labels   []geometry.Point // left-center of each label
	title    geometry.Point
}

// legendGrid holds legend dimensions in canvas units.
type legendGrid struct {
	cols, rows      int
	cellW, rowH     float64
	swatchW, swatch float64
	gap, colGap     float64
	pad, titleH     float64
}

func (m *metrics) legendGrid(l scene.Legend) legendGrid {
	size := m.opts.LegendSize
	em := size / 72
	g := legendGrid{
		cols:    l.Columns,
		rowH:    1.6 * em,
		swatchW: 2 * em,
		swatch:  0.8 * em,
		gap:     0.5 * em,
		colGap:  1.5 * em,
		pad:     0.6 * em,
	}
	n := len(l.Entries)
	if n == 0 {
		return g
	}
	if g.cols < 1 {
		g.cols = 1
	}
	if g.cols > n {
		g.cols = n
	}
	g.rows = (n + g.cols - 1) / g.cols

	face := m.face(regular, size)
	var labelW float64
	for _, e := range l.Entries {
		labelW = math.Max(labelW, textWidth(face, e.Label)/m.opts.DPI)
	}
	g.cellW = g.swatchW + g.gap + labelW
	if l.Title != "" {
		g.titleH = g.rowH
	}
	return g
}

// legendSize returns the frame width and height.
func (m *metrics) legendSize(l scene.Legend) geometry.Point {
	g := m.legendGrid(l)
	w := float64(g.cols)*g.cellW + float64(g.cols-1)*g.colGap + 2*g.pad
	if l.Title != "" {
		tw := textWidth(m.face(bold, m.opts.LegendSize), l.Title) / m.opts.DPI
		w = math.Max(w, tw+2*g.pad)
	}
	h := float64(g.rows)*g.rowH + g.titleH + 2*g.pad
	return geometry.Pt(w, h)
}

// legendLayout places entries row by row, left to right, below the title.
func (m *metrics) legendLayout(l scene.Legend, topLeft geometry.Point) legendBox {
	g := m.legendGrid(l)
	size := m.legendSize(l)
	box := legendBox{
		frame: geometry.Rect{
			Min: geometry.Pt(topLeft.X, topLeft.Y-size.Y),
			Max: geometry.Pt(topLeft.X+size.X, topLeft.Y),
		},
		title: geometry.Pt(topLeft.X+size.X/2, topLeft.Y-g.pad-g.titleH/2),
	}
	top := topLeft.Y - g.pad - g.titleH
	for i := range l.Entries {
		row, col := i/g.cols, i%g.cols
		x := topLeft.X + g.pad + float64(col)*(g.cellW+g.colGap)
		y := top - (float64(row)+0.5)*g.rowH
		box.swatches = append(box.swatches, geometry.Rect{
			Min: geometry.Pt(x, y-g.swatch/2),
			Max: geometry.Pt(x+g.swatchW, y+g.swatch/2),
		})
		box.labels = append(box.labels, geometry.Pt(x+g.swatchW+g.gap, y))
	}
	return box
}

func (p *painter) legend(l scene.Legend, box legendBox) {
	p.roundedRect(box.frame, p.opts.LegendSize*0.4/72)
	p.fillAndStroke(style.Style{Fill: colorPatch, Stroke: colorFooter, StrokeWidth: 0.8})

	size := p.opts.LegendSize
	if l.Title != "" {
		p.lines([]string{l.Title}, box.title, bold, size, colorInk)
	}
	p.dc.SetFontFace(p.face(regular, size))
	for i, e := range l.Entries {
		st := e.Style
		if st.Fill == nil && st.Stroke == nil {
			st.Stroke = colorInk
		}
		if st.StrokeWidth <= 0 {
			st.StrokeWidth = 1
		}
		p.roundedRect(box.swatches[i], 0)
		p.fillAndStroke(st)

		x, y := p.tf.apply(box.labels[i])
		p.dc.SetColor(colorInk)
		p.dc.DrawStringAnchored(e.Label, x, y, 0, 0.5)
	}
}
