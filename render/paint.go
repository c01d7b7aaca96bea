package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"flowpaint/connector"
	"flowpaint/geometry"
	"flowpaint/scene"
	"flowpaint/shape"
	"flowpaint/style"
)

// arrowSpread is the half-angle of an arrowhead, a head twice as long as it
// is half wide.
var arrowSpread = math.Atan(0.5)

// metrics measures text in canvas units for one render.
type metrics struct {
	opts  Options
	faces *faceCache
}

func (m *metrics) face(v variant, size float64) font.Face {
	return m.faces.face(v, size)
}

// lineHeight of a font size in canvas units.
func (m *metrics) lineHeight(size float64) float64 {
	return size * m.opts.LineSpacing / 72
}

// patchPad is the margin of a label patch around its text.
func (m *metrics) patchPad(size float64) float64 {
	return 0.3 * size / 72
}

func (m *metrics) blockSize(lines []string, v variant, size float64) (float64, float64) {
	face := m.face(v, size)
	var w float64
	for _, l := range lines {
		w = math.Max(w, textWidth(face, l))
	}
	return w / m.opts.DPI, float64(len(lines)) * m.lineHeight(size)
}

// blockCenter converts an aligned anchor to the center of a block of height h.
func blockCenter(at geometry.Point, h float64, align scene.VAlign) geometry.Point {
	switch align {
	case scene.AlignTop:
		return geometry.Pt(at.X, at.Y-h/2)
	case scene.AlignBottom:
		return geometry.Pt(at.X, at.Y+h/2)
	default:
		return at
	}
}

func (m *metrics) blockRect(lines []string, v variant, size float64, at geometry.Point, align scene.VAlign) geometry.Rect {
	w, h := m.blockSize(lines, v, size)
	return geometry.RectAround(blockCenter(at, h, align), w, h)
}

func (m *metrics) shapeSize(s shape.Shape) float64 {
	if s.FontSize > 0 {
		return s.FontSize
	}
	return m.opts.LabelSize
}

func (m *metrics) shapeVariant(s shape.Shape) variant {
	return pickVariant(s.Bold, false, false)
}

func (m *metrics) titleSize(s shape.Shape) float64 {
	return m.shapeSize(s) + 2
}

// titleCenter is the center of the title block, whose top sits on the
// shape's title anchor.
func (m *metrics) titleCenter(s shape.Shape) geometry.Point {
	_, h := m.blockSize(shape.SplitLabel(s.Title), bold, m.titleSize(s))
	return blockCenter(s.TitleAnchor(), h, scene.AlignTop)
}

func (m *metrics) titlePatchRect(s shape.Shape) geometry.Rect {
	size := m.titleSize(s)
	r := m.blockRect(shape.SplitLabel(s.Title), bold, size, s.TitleAnchor(), scene.AlignTop)
	return r.Inset(m.patchPad(size))
}

func (m *metrics) edgeSize(c connector.Connector) float64 {
	if c.FontSize > 0 {
		return c.FontSize
	}
	return m.opts.EdgeLabelSize
}

// edgeInk is the area a connector's stroke and arrowhead cover.
func (m *metrics) edgeInk(c connector.Connector, st style.Style, path connector.Path) geometry.Rect {
	width := st.StrokeWidth
	if width <= 0 {
		width = defaultEdgeStyle.StrokeWidth
	}
	r := path.Bounds()
	if c.Head != connector.HeadNone && path.Head().Dir != (geometry.Point{}) {
		a, b := connector.Barbs(path.Head(), m.opts.ArrowSize/72, arrowSpread)
		r = r.Union(geometry.BoundsOf(a, b))
	}
	return r.Inset(width / 2 / 72)
}

func (m *metrics) edgeLabelRect(c connector.Connector, path connector.Path) geometry.Rect {
	size := m.edgeSize(c)
	r := m.blockRect(c.Label, pickVariant(false, c.Italic, false), size, path.LabelAnchor(c.Offset()), scene.AlignMiddle)
	return r.Inset(m.patchPad(size))
}

func (m *metrics) textSize(t scene.Text) float64 {
	if t.FontSize > 0 {
		return t.FontSize
	}
	return m.opts.LabelSize
}

func (m *metrics) textRect(t scene.Text) geometry.Rect {
	size := m.textSize(t)
	r := m.blockRect(t.Lines, pickVariant(t.Bold, t.Italic, t.Mono), size, t.At, t.VAlign)
	if t.Patch {
		r = r.Inset(m.patchPad(size))
	}
	return r
}

// painter draws onto one gg context.
type painter struct {
	*metrics
	dc *gg.Context
	tf transform
}

// px converts canvas units to pixels.
func (p *painter) px(v float64) float64 {
	return v * p.opts.DPI
}

// pt converts points to pixels.
func (p *painter) pt(v float64) float64 {
	return v * p.opts.DPI / 72
}

func (p *painter) moveTo(pt geometry.Point) {
	x, y := p.tf.apply(pt)
	p.dc.MoveTo(x, y)
}

func (p *painter) lineTo(pt geometry.Point) {
	x, y := p.tf.apply(pt)
	p.dc.LineTo(x, y)
}

// polygon traces a closed outline. A repeated last vertex is harmless.
func (p *painter) polygon(pts []geometry.Point) {
	p.dc.NewSubPath()
	for i, v := range pts {
		if i == 0 {
			p.moveTo(v)
		} else {
			p.lineTo(v)
		}
	}
	p.dc.ClosePath()
}

// roundedRect traces r with rounded corners; radius is in canvas units.
func (p *painter) roundedRect(r geometry.Rect, radius float64) {
	x, y := p.tf.apply(geometry.Pt(r.Min.X, r.Max.Y))
	if radius <= 0 {
		p.dc.DrawRectangle(x, y, p.px(r.Width()), p.px(r.Height()))
		return
	}
	p.dc.DrawRoundedRectangle(x, y, p.px(r.Width()), p.px(r.Height()), p.px(radius))
}

func (p *painter) outline(o shape.Outline) {
	switch o.Kind {
	case shape.OutlineEllipse:
		x, y := p.tf.apply(o.Center)
		p.dc.DrawEllipse(x, y, p.px(o.RadiusX), p.px(o.RadiusY))
	case shape.OutlineRoundedRect:
		p.roundedRect(o.Bounds(), o.CornerRadius)
	default:
		p.polygon(o.Vertices)
	}
}

// fillAndStroke paints the current path and clears it.
func (p *painter) fillAndStroke(st style.Style) {
	if c := st.FillColor(); c != nil {
		p.dc.SetColor(c)
		p.dc.FillPreserve()
	}
	if c := st.StrokeColor(); c != nil && st.StrokeWidth > 0 {
		p.dc.SetColor(c)
		p.dc.SetLineWidth(p.pt(st.StrokeWidth))
		p.dc.StrokePreserve()
	}
	p.dc.ClearPath()
}

// lines draws a centered multi-line block around center.
func (p *painter) lines(lines []string, center geometry.Point, v variant, size float64, c color.Color) {
	p.dc.SetFontFace(p.face(v, size))
	p.dc.SetColor(c)
	for i, pos := range shape.LinePositions(center, len(lines), p.lineHeight(size)) {
		x, y := p.tf.apply(pos)
		p.dc.DrawStringAnchored(lines[i], x, y, 0.5, 0.5)
	}
}

// patch paints an opaque rounded background.
func (p *painter) patch(r geometry.Rect, size float64) {
	p.roundedRect(r, p.patchPad(size))
	p.dc.SetColor(colorPatch)
	p.dc.Fill()
}

func (p *painter) shape(s shape.Shape) {
	st, _ := p.styleFor(s.Style, s.Category, defaultShapeStyle)
	p.outline(s.Outline())
	p.fillAndStroke(st)

	if s.Title != "" {
		size := p.titleSize(s)
		p.patch(p.titlePatchRect(s), size)
		p.lines(shape.SplitLabel(s.Title), p.titleCenter(s), bold, size, st.TextColor())
	}
	if len(s.Label) > 0 {
		p.lines(s.Label, s.TextAnchor(), p.shapeVariant(s), p.shapeSize(s), st.TextColor())
	}
}

func (p *painter) connector(c connector.Connector, path connector.Path) {
	st, _ := p.styleFor(c.Style, c.Category, defaultEdgeStyle)
	ink := st.StrokeColor()
	if ink == nil {
		ink = colorInk
	}
	width := st.StrokeWidth
	if width <= 0 {
		width = defaultEdgeStyle.StrokeWidth
	}

	p.dc.SetColor(ink)
	p.dc.SetLineWidth(p.pt(width))
	p.dc.SetLineCap(gg.LineCapRound)
	p.moveTo(path.Start)
	if path.Straight() {
		p.lineTo(path.End)
	} else {
		cx, cy := p.tf.apply(path.Control)
		ex, ey := p.tf.apply(path.End)
		p.dc.QuadraticTo(cx, cy, ex, ey)
	}
	p.dc.Stroke()
	p.arrowhead(path.Head(), c.Head, ink)
	p.dc.SetLineCap(gg.LineCapButt)
}

// edgeLabel paints a connector label on its patch.
func (p *painter) edgeLabel(c connector.Connector, path connector.Path) {
	size := p.edgeSize(c)
	p.patch(p.edgeLabelRect(c, path), size)
	p.lines(c.Label, path.LabelAnchor(c.Offset()), pickVariant(false, c.Italic, false), size, colorInk)
}

// arrowhead draws the head at the target end. Barbs are computed in pixel
// space, where y grows downwards.
func (p *painter) arrowhead(pose connector.Pose, head connector.Head, ink color.Color) {
	if head == connector.HeadNone || pose.Dir == (geometry.Point{}) {
		return
	}
	tx, ty := p.tf.apply(pose.Tip)
	tip := geometry.Pt(tx, ty)
	a, b := connector.Barbs(connector.Pose{Tip: tip, Dir: geometry.Pt(pose.Dir.X, -pose.Dir.Y)}, p.pt(p.opts.ArrowSize), arrowSpread)

	p.dc.SetColor(ink)
	p.dc.NewSubPath()
	p.dc.MoveTo(a.X, a.Y)
	p.dc.LineTo(tip.X, tip.Y)
	p.dc.LineTo(b.X, b.Y)
	if head == connector.HeadFilled {
		p.dc.ClosePath()
		p.dc.Fill()
		return
	}
	p.dc.Stroke()
}

func (p *painter) text(t scene.Text) {
	if len(t.Lines) == 0 {
		return
	}
	size := p.textSize(t)
	v := pickVariant(t.Bold, t.Italic, t.Mono)
	_, h := p.blockSize(t.Lines, v, size)
	if t.Patch {
		p.patch(p.textRect(t), size)
	}
	c := t.Color
	if c == nil {
		c = color.Black
	}
	p.lines(t.Lines, blockCenter(t.At, h, t.VAlign), v, size, c)
}
