package connector

import (
	"math"

	"flowpaint/geometry"
)

// Path is the routed geometry of a connector: a straight segment or a
// quadratic Bézier curve in canvas units.
type Path struct {
	Start, End geometry.Point
	// Control is the Bézier handle. For straight paths it is the midpoint.
	Control geometry.Point
	// Via is the point the curve passes through at t = 1/2.
	Via  geometry.Point
	Bend float64
}

// Route computes the path between two points. bend follows the arc3
// convention: the handle sits at mid + bend*(dy, -dx), so a positive bend
// bows to the right of the travel direction. bend = 0 gives a straight line.
func Route(from, to geometry.Point, bend float64) Path {
	mid := from.Mid(to)
	d := to.Sub(from)
	normal := geometry.Pt(d.Y, -d.X)
	return Path{
		Start:   from,
		End:     to,
		Control: mid.Add(normal.Scale(bend)),
		Via:     mid.Add(normal.Scale(bend / 2)),
		Bend:    bend,
	}
}

// Straight reports whether the path is a line segment.
func (p Path) Straight() bool {
	return p.Bend == 0
}

// Point returns the point at parameter t in [0, 1].
func (p Path) Point(t float64) geometry.Point {
	u := 1 - t
	return p.Start.Scale(u * u).
		Add(p.Control.Scale(2 * u * t)).
		Add(p.End.Scale(t * t))
}

// Tangent returns the (unnormalized) derivative at t.
func (p Path) Tangent(t float64) geometry.Point {
	if p.Straight() {
		return p.End.Sub(p.Start)
	}
	return p.Control.Sub(p.Start).Scale(2 * (1 - t)).
		Add(p.End.Sub(p.Control).Scale(2 * t))
}

const lengthSteps = 256

// Length returns the arc length. Straight paths return the exact Euclidean
// distance between the endpoints.
func (p Path) Length() float64 {
	if p.Straight() {
		return p.Start.Dist(p.End)
	}
	var l float64
	prev := p.Start
	for i := 1; i <= lengthSteps; i++ {
		cur := p.Point(float64(i) / lengthSteps)
		l += prev.Dist(cur)
		prev = cur
	}
	return l
}

// Flatten samples the path into n segments (n+1 points).
func (p Path) Flatten(n int) []geometry.Point {
	if p.Straight() || n < 1 {
		return []geometry.Point{p.Start, p.End}
	}
	pts := make([]geometry.Point, n+1)
	for i := range pts {
		pts[i] = p.Point(float64(i) / float64(n))
	}
	pts[0], pts[n] = p.Start, p.End
	return pts
}

// Bounds returns the exact bounding box of the path.
func (p Path) Bounds() geometry.Rect {
	pts := []geometry.Point{p.Start, p.End}
	if !p.Straight() {
		for _, t := range []float64{
			extremum(p.Start.X, p.Control.X, p.End.X),
			extremum(p.Start.Y, p.Control.Y, p.End.Y),
		} {
			if t > 0 && t < 1 {
				pts = append(pts, p.Point(t))
			}
		}
	}
	return geometry.BoundsOf(pts...)
}

// extremum returns the parameter of the quadratic's turning point on one
// axis, or -1 when it has none.
func extremum(a, b, c float64) float64 {
	den := a - 2*b + c
	if den == 0 {
		return -1
	}
	return (a - b) / den
}

// Pose is where and which way an arrowhead points.
type Pose struct {
	Tip geometry.Point
	// Dir is the unit tangent at the tip.
	Dir geometry.Point
}

// Head returns the arrowhead pose at the target end.
func (p Path) Head() Pose {
	return Pose{Tip: p.End, Dir: p.Tangent(1).Unit()}
}

// LabelAnchor returns the path midpoint displaced by offset.
func (p Path) LabelAnchor(offset geometry.Point) geometry.Point {
	return p.Via.Add(offset)
}

// Barbs returns the two back corners of an arrowhead of the given length
// whose sides open by halfAngle radians around the pose direction. The pose
// may be expressed in any coordinate space; the result is in the same one.
func Barbs(pose Pose, length, halfAngle float64) (geometry.Point, geometry.Point) {
	back := pose.Dir.Scale(-length)
	sin, cos := math.Sincos(halfAngle)
	left := geometry.Pt(back.X*cos-back.Y*sin, back.X*sin+back.Y*cos)
	right := geometry.Pt(back.X*cos+back.Y*sin, -back.X*sin+back.Y*cos)
	return pose.Tip.Add(left), pose.Tip.Add(right)
}
