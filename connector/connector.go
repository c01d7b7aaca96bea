// Package connector describes directed, optionally labeled edges between
// shapes and computes their paths, label anchors and arrowhead poses.
package connector

import (
	"flowpaint/geometry"
	"flowpaint/shape"
	"flowpaint/style"
)

// DefaultBend is the arc3 "rad" used by New: enough curvature that
// connectors sharing endpoints do not sit on top of each other.
const DefaultBend = 0.1

// DefaultLabelOffset keeps a label from sitting exactly on its line.
var DefaultLabelOffset = geometry.Pt(0.2, 0.2)

// Head selects how the target end of a connector is drawn.
type Head int

const (
	HeadOpen   Head = iota // "->"
	HeadFilled             // solid triangle
	HeadNone               // plain line, as in use-case diagrams
)

// Endpoint is either a raw canvas point or an anchor on a placed shape.
type Endpoint struct {
	Point  geometry.Point
	Ref    shape.Ref
	Anchor shape.Anchor
	// Anchored is set when Ref and Anchor are meaningful.
	Anchored bool
}

// At returns an endpoint at a raw canvas point.
func At(x, y float64) Endpoint {
	return Endpoint{Point: geometry.Pt(x, y)}
}

// AtPoint returns an endpoint at p.
func AtPoint(p geometry.Point) Endpoint {
	return Endpoint{Point: p}
}

// Of returns an endpoint on the given anchor of a placed shape.
func Of(ref shape.Ref, anchor shape.Anchor) Endpoint {
	return Endpoint{Ref: ref, Anchor: anchor, Anchored: true}
}

// Connector is a directed edge from From to To.
type Connector struct {
	From, To Endpoint
	Label    []string
	Bend     float64
	// LabelOffset overrides DefaultLabelOffset when set.
	LabelOffset *geometry.Point
	Head        Head
	Category    string
	Style       *style.Style
	FontSize    float64
	Italic      bool
}

// New returns a curved connector with an open arrowhead.
func New(from, to Endpoint) Connector {
	return Connector{From: from, To: to, Bend: DefaultBend}
}

// Straight returns a straight connector with an open arrowhead.
func Straight(from, to Endpoint) Connector {
	return Connector{From: from, To: to}
}

// Line returns a straight connector without an arrowhead.
func Line(from, to Endpoint) Connector {
	return Connector{From: from, To: to, Head: HeadNone}
}

func (c Connector) WithLabel(lines ...string) Connector {
	c.Label = lines
	return c
}

func (c Connector) WithBend(bend float64) Connector {
	c.Bend = bend
	return c
}

func (c Connector) WithLabelOffset(dx, dy float64) Connector {
	off := geometry.Pt(dx, dy)
	c.LabelOffset = &off
	return c
}

func (c Connector) WithHead(h Head) Connector {
	c.Head = h
	return c
}

func (c Connector) WithCategory(category string) Connector {
	c.Category = category
	return c
}

// WithFont sets the label font size in points and its slant.
func (c Connector) WithFont(size float64, italic bool) Connector {
	c.FontSize = size
	c.Italic = italic
	return c
}

// WithStyle overrides the category style.
func (c Connector) WithStyle(st style.Style) Connector {
	c.Style = &st
	return c
}

// Offset returns the label offset in effect.
func (c Connector) Offset() geometry.Point {
	if c.LabelOffset != nil {
		return *c.LabelOffset
	}
	return DefaultLabelOffset
}
