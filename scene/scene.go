// Package scene collects the shapes, connectors, free text and legend of one
// diagram. A Builder is append-only; Build freezes it into a Scene that the
// renderer paints in insertion order.
package scene

import (
	"errors"
	"fmt"
	"image/color"

	"flowpaint/connector"
	"flowpaint/geometry"
	"flowpaint/shape"
	"flowpaint/style"
)

var (
	ErrUnknownShape = errors.New("connector references unknown shape")
	ErrEmptyScene   = errors.New("scene has nothing to draw")
)

// ItemKind tells which field of an Item is set.
type ItemKind int

const (
	ItemShape ItemKind = iota
	ItemConnector
	ItemText
)

// Item is one drawable element, kept in insertion order.
type Item struct {
	Kind      ItemKind
	Shape     shape.Shape
	Connector connector.Connector
	Text      Text
}

// Text is a free-standing block of text, such as an annotation or a footer.
type Text struct {
	At    geometry.Point
	Lines []string
	// VAlign is where At sits on the block: AlignTop, AlignMiddle or AlignBottom.
	VAlign   VAlign
	FontSize float64
	Bold     bool
	Italic   bool
	Mono     bool
	Color    color.Color // nil means black
	// Patch paints an opaque background behind the block.
	Patch bool
}

// VAlign is the vertical alignment of a text block relative to its anchor.
type VAlign int

const (
	AlignMiddle VAlign = iota
	AlignTop
	AlignBottom
)

// Placement decides where the legend block goes.
type Placement int

const (
	LegendBottom  Placement = iota // centered under the content
	LegendTopLeft                  // inside the top-left corner of the canvas
	LegendNone
)

// Legend is the diagram key.
type Legend struct {
	Entries   []style.LegendEntry
	Title     string
	Columns   int
	Placement Placement
}

// Scene is the description of one diagram. Build hands out a snapshot that
// shares no slices with its builder. The exported fields are read-only by
// convention: renderers read them and never write, and callers that change a
// built scene own the result.
type Scene struct {
	Title  string
	Footer string
	Canvas geometry.Canvas
	Items  []Item
	Legend Legend
	shapes []shape.Shape
}

// Shape returns the shape behind a handle.
func (s *Scene) Shape(ref shape.Ref) (shape.Shape, bool) {
	if ref < 0 || int(ref) >= len(s.shapes) {
		return shape.Shape{}, false
	}
	return s.shapes[ref], true
}

// Resolve turns an endpoint into a canvas point.
func (s *Scene) Resolve(e connector.Endpoint) (geometry.Point, error) {
	if !e.Anchored {
		return e.Point, nil
	}
	sh, ok := s.Shape(e.Ref)
	if !ok {
		return geometry.Point{}, fmt.Errorf("%w: %d", ErrUnknownShape, e.Ref)
	}
	return sh.Anchor(e.Anchor), nil
}

// Path resolves both ends of c and routes it.
func (s *Scene) Path(c connector.Connector) (connector.Path, error) {
	from, err := s.Resolve(c.From)
	if err != nil {
		return connector.Path{}, err
	}
	to, err := s.Resolve(c.To)
	if err != nil {
		return connector.Path{}, err
	}
	return connector.Route(from, to, c.Bend), nil
}

// Shapes returns the number of placed shapes.
func (s *Scene) Shapes() int {
	return len(s.shapes)
}
