package shape

import (
	"math"

	"flowpaint/geometry"
)

// OutlineKind tells the renderer which drawing primitive an outline maps to.
type OutlineKind int

const (
	OutlinePolygon OutlineKind = iota
	OutlineRoundedRect
	OutlineEllipse
)

// Outline is the paintable geometry of a shape in canvas units.
type Outline struct {
	Kind OutlineKind
	// Vertices of a polygon, or the four corners of a rounded rectangle.
	// Unused for ellipses.
	Vertices []geometry.Point
	// Closed is set when the last vertex repeats the first.
	Closed       bool
	Center       geometry.Point
	RadiusX      float64
	RadiusY      float64
	CornerRadius float64
}

// Bounds returns the bounding box of the outline.
func (o Outline) Bounds() geometry.Rect {
	if o.Kind == OutlineEllipse {
		return geometry.RectAround(o.Center, 2*o.RadiusX, 2*o.RadiusY)
	}
	return geometry.BoundsOf(o.Vertices...)
}

const arcSegments = 8

// Polygon approximates the outline by straight segments. Polygons are
// returned as is; curves are sampled.
func (o Outline) Polygon() []geometry.Point {
	switch o.Kind {
	case OutlineEllipse:
		n := 4 * arcSegments * 2
		pts := make([]geometry.Point, n)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = geometry.Pt(o.Center.X+o.RadiusX*math.Cos(a), o.Center.Y+o.RadiusY*math.Sin(a))
		}
		return pts
	case OutlineRoundedRect:
		if o.CornerRadius == 0 {
			return o.Vertices
		}
		b := o.Bounds()
		r := o.CornerRadius
		centers := []geometry.Point{
			{X: b.Max.X - r, Y: b.Min.Y + r},
			{X: b.Max.X - r, Y: b.Max.Y - r},
			{X: b.Min.X + r, Y: b.Max.Y - r},
			{X: b.Min.X + r, Y: b.Min.Y + r},
		}
		pts := make([]geometry.Point, 0, 4*(arcSegments+1))
		for i, c := range centers {
			start := -math.Pi/2 + float64(i)*math.Pi/2
			for j := 0; j <= arcSegments; j++ {
				a := start + math.Pi/2*float64(j)/arcSegments
				pts = append(pts, geometry.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a)))
			}
		}
		return pts
	default:
		return o.Vertices
	}
}

// Outline computes the shape's geometry. The shape is assumed to be valid.
func (s Shape) Outline() Outline {
	c := s.Center
	hw, hh := s.Width/2, s.Height/2
	switch s.Kind {
	case KindRoundedBox:
		return Outline{
			Kind:         OutlineRoundedRect,
			Vertices:     rectVertices(c, hw, hh),
			Center:       c,
			CornerRadius: s.CornerRadius,
		}
	case KindDiamond:
		pts := make([]geometry.Point, 4)
		for k := range pts {
			a := s.Rotation + math.Pi/4 + float64(k)*math.Pi/2
			pts[k] = geometry.Pt(c.X+s.Radius*math.Cos(a), c.Y+s.Radius*math.Sin(a))
		}
		return Outline{Kind: OutlinePolygon, Vertices: pts, Center: c}
	case KindEllipse:
		return Outline{Kind: OutlineEllipse, Center: c, RadiusX: hw, RadiusY: hh}
	case KindOpenStore:
		left, right := c.X-hw, c.X+hw
		bottom, top := c.Y-hh, c.Y+hh
		return Outline{
			Kind: OutlinePolygon,
			Vertices: []geometry.Point{
				{X: left, Y: bottom},
				{X: right, Y: bottom},
				{X: right, Y: top},
				{X: left, Y: top},
				{X: left, Y: top - StoreInset},
				{X: left + s.Notch, Y: top - StoreInset},
				{X: left + s.Notch, Y: bottom + StoreInset},
				{X: left, Y: bottom + StoreInset},
				{X: left, Y: bottom},
			},
			Closed: true,
			Center: c,
		}
	case KindParallelogram:
		return Outline{
			Kind: OutlinePolygon,
			Vertices: []geometry.Point{
				{X: c.X - hw + s.Skew, Y: c.Y - hh},
				{X: c.X + hw, Y: c.Y - hh},
				{X: c.X + hw - s.Skew, Y: c.Y + hh},
				{X: c.X - hw, Y: c.Y + hh},
			},
			Center: c,
		}
	default:
		return Outline{Kind: OutlinePolygon, Vertices: rectVertices(c, hw, hh), Center: c}
	}
}

func rectVertices(c geometry.Point, hw, hh float64) []geometry.Point {
	return []geometry.Point{
		{X: c.X - hw, Y: c.Y - hh},
		{X: c.X + hw, Y: c.Y - hh},
		{X: c.X + hw, Y: c.Y + hh},
		{X: c.X - hw, Y: c.Y + hh},
	}
}

// Bounds returns the bounding box of the shape outline.
func (s Shape) Bounds() geometry.Rect {
	return s.Outline().Bounds()
}
