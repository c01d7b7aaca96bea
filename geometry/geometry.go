// Package geometry contains the coordinate types shared by every other flowpaint package.
//
// Canvas units are abstract floating point coordinates with the origin at the
// bottom-left and y growing upwards. One canvas unit is rendered as one inch, so
// the export DPI decides how many pixels a unit covers.
package geometry

import "math"

// Point represents a 2D coordinate in canvas units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Len returns the length of p taken as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

// Unit returns p scaled to length 1. The zero vector is returned unchanged.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

// Mid returns the point halfway between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Rect is an axis-aligned rectangle. Min is the bottom-left corner.
type Rect struct {
	Min, Max Point
}

// RectAround returns the rectangle of size w×h centered on c.
func RectAround(c Point, w, h float64) Rect {
	return Rect{
		Min: Point{X: c.X - w/2, Y: c.Y - h/2},
		Max: Point{X: c.X + w/2, Y: c.Y + h/2},
	}
}

// BoundsOf returns the smallest rectangle containing every point.
// It returns the zero Rect when pts is empty.
func BoundsOf(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Mid(r.Max)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Union returns the smallest rectangle containing r and o.
// An empty operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	return BoundsOf(r.Min, r.Max, o.Min, o.Max)
}

// Inset grows the rectangle by d on every side (shrinks it when d is negative).
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// ContainsPoint checks if a point is within the rectangle, edges included.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Contains checks if o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return r.ContainsPoint(o.Min) && r.ContainsPoint(o.Max)
}

// Canvas is the logical drawing area of a diagram. Elements placed outside
// of it are still drawn, but usually indicate a layout mistake.
type Canvas struct {
	Origin        Point
	Width, Height float64
}

// NewCanvas returns a canvas anchored at the origin.
func NewCanvas(width, height float64) Canvas {
	return Canvas{Width: width, Height: height}
}

// Rect returns the canvas area as a rectangle.
func (c Canvas) Rect() Rect {
	return Rect{
		Min: c.Origin,
		Max: Point{X: c.Origin.X + c.Width, Y: c.Origin.Y + c.Height},
	}
}

// Contains reports whether r lies inside the canvas.
func (c Canvas) Contains(r Rect) bool {
	return c.Rect().Contains(r)
}
