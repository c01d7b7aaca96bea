package shape

import (
	"math"

	"flowpaint/geometry"
)

// Anchor names a point on a shape's boundary used as a connector endpoint.
type Anchor int

const (
	Center Anchor = iota
	Top
	Bottom
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

func (a Anchor) String() string {
	switch a {
	case Center:
		return "center"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// direction returns the ray cast from the center for a, scaled by the half
// extents so corner anchors aim at the bounding box corners.
func (a Anchor) direction(hw, hh float64) geometry.Point {
	switch a {
	case Top:
		return geometry.Pt(0, 1)
	case Bottom:
		return geometry.Pt(0, -1)
	case Left:
		return geometry.Pt(-1, 0)
	case Right:
		return geometry.Pt(1, 0)
	case TopLeft:
		return geometry.Pt(-hw, hh)
	case TopRight:
		return geometry.Pt(hw, hh)
	case BottomLeft:
		return geometry.Pt(-hw, -hh)
	case BottomRight:
		return geometry.Pt(hw, -hh)
	default:
		return geometry.Point{}
	}
}

// Anchor returns the boundary point of s in the direction of a. The point is
// where a ray from the center first crosses the outline, so notched and
// slanted edges are honoured.
func (s Shape) Anchor(a Anchor) geometry.Point {
	if a == Center {
		return s.Center
	}
	o := s.Outline()
	b := o.Bounds()
	d := a.direction(b.Width()/2, b.Height()/2)
	c := s.Center

	if o.Kind == OutlineEllipse {
		t := 1 / math.Hypot(d.X/o.RadiusX, d.Y/o.RadiusY)
		return c.Add(d.Scale(t))
	}
	if o.Kind == OutlineRoundedRect && (d.X == 0 || d.Y == 0) {
		// edge midpoints are never on a rounded corner
		return rayHit(c, d, o.Vertices)
	}
	return rayHit(c, d, o.Polygon())
}

// rayHit returns the first intersection of the ray c + t*d (t > 0) with the
// closed polygon pts. It falls back to c if nothing is hit.
func rayHit(c, d geometry.Point, pts []geometry.Point) geometry.Point {
	best := math.Inf(1)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		e := b.Sub(a)
		den := cross(d, e)
		if den == 0 {
			continue
		}
		w := a.Sub(c)
		t := cross(w, e) / den
		u := cross(w, d) / den
		if t > 1e-12 && u >= -1e-12 && u <= 1+1e-12 && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return c
	}
	return c.Add(d.Scale(best))
}

func cross(a, b geometry.Point) float64 {
	return a.X*b.Y - a.Y*b.X
}
