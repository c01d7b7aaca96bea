// Package shape holds the shape primitives flowpaint can place on a canvas.
//
// A Shape is a tagged value: the Kind decides which of the size fields are
// meaningful and how the outline is computed. Shapes know nothing about each
// other; connectors refer to them through anchor points.
package shape

import (
	"errors"
	"fmt"
	"math"

	"flowpaint/geometry"
	"flowpaint/style"
)

// Kind identifies a shape primitive.
type Kind int

const (
	KindBox Kind = iota
	KindRoundedBox
	KindDiamond
	KindEllipse
	KindOpenStore
	KindParallelogram
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindRoundedBox:
		return "rounded-box"
	case KindDiamond:
		return "diamond"
	case KindEllipse:
		return "ellipse"
	case KindOpenStore:
		return "open-store"
	case KindParallelogram:
		return "parallelogram"
	default:
		return "unknown"
	}
}

const (
	// DiamondRotation turns the base square onto its tips.
	DiamondRotation = math.Pi / 4
	// StoreInset is the vertical inset of the open store notch.
	StoreInset = 0.3
)

var ErrInvalidShape = errors.New("invalid shape")

// Ref is a handle to a shape placed in a scene. Handles are assigned in
// insertion order starting at zero.
type Ref int

// Shape is one placed primitive.
type Shape struct {
	Kind   Kind
	Center geometry.Point

	Width, Height float64 // box-like kinds
	Radius        float64 // diamond
	Rotation      float64 // diamond, radians
	CornerRadius  float64 // rounded box
	Notch         float64 // open store
	Skew          float64 // parallelogram

	Label []string
	// LabelOffset moves the label block away from the center.
	LabelOffset geometry.Point
	// Title is an optional heading drawn on its own patch near the top edge.
	Title    string
	Category string
	// Style overrides the registry style for Category when set.
	Style *style.Style
	// FontSize of the label in points; zero uses the renderer default.
	FontSize float64
	Bold     bool
}

// Box returns an axis-aligned rectangle centered on (x, y).
func Box(x, y, w, h float64) Shape {
	return Shape{Kind: KindBox, Center: geometry.Pt(x, y), Width: w, Height: h}
}

// RoundedBox returns a rectangle with uniformly rounded corners.
// A zero radius draws the same outline as Box.
func RoundedBox(x, y, w, h, r float64) Shape {
	return Shape{Kind: KindRoundedBox, Center: geometry.Pt(x, y), Width: w, Height: h, CornerRadius: r}
}

// Diamond returns a four sided regular polygon. Use DiamondRotation for the
// usual decision symbol.
func Diamond(x, y, radius, rotation float64) Shape {
	return Shape{Kind: KindDiamond, Center: geometry.Pt(x, y), Radius: radius, Rotation: rotation}
}

// Ellipse returns an ellipse with the given width and height.
func Ellipse(x, y, w, h float64) Shape {
	return Shape{Kind: KindEllipse, Center: geometry.Pt(x, y), Width: w, Height: h}
}

// OpenStore returns the open-ended data store symbol: a rectangle whose left
// edge is replaced by a notch notchWidth deep.
func OpenStore(x, y, w, h, notchWidth float64) Shape {
	return Shape{Kind: KindOpenStore, Center: geometry.Pt(x, y), Width: w, Height: h, Notch: notchWidth}
}

// Parallelogram returns a rectangle whose bottom edge is pushed right and
// top edge pushed left by skew.
func Parallelogram(x, y, w, h, skew float64) Shape {
	return Shape{Kind: KindParallelogram, Center: geometry.Pt(x, y), Width: w, Height: h, Skew: skew}
}

// WithLabel returns a copy of s with the given label lines.
func (s Shape) WithLabel(lines ...string) Shape {
	s.Label = lines
	return s
}

// WithCategory returns a copy of s in the given style category.
func (s Shape) WithCategory(category string) Shape {
	s.Category = category
	return s
}

// WithStyle returns a copy of s with an explicit style.
func (s Shape) WithStyle(st style.Style) Shape {
	s.Style = &st
	return s
}

// WithFont returns a copy of s with the label font size in points.
func (s Shape) WithFont(size float64, bold bool) Shape {
	s.FontSize = size
	s.Bold = bold
	return s
}

// WithTitle returns a copy of s with a heading near its top edge. Newlines
// split the heading into lines.
func (s Shape) WithTitle(title string) Shape {
	s.Title = title
	return s
}

// WithLabelOffset returns a copy of s whose label is moved by (dx, dy).
func (s Shape) WithLabelOffset(dx, dy float64) Shape {
	s.LabelOffset = geometry.Pt(dx, dy)
	return s
}

// TitleInset is the distance from the top edge to the top of the title.
const TitleInset = 0.4

// TextAnchor returns the point the label block is centered on.
func (s Shape) TextAnchor() geometry.Point {
	return s.Center.Add(s.LabelOffset)
}

// TitleAnchor returns the top-center point of the title.
func (s Shape) TitleAnchor() geometry.Point {
	return geometry.Pt(s.Center.X, s.Bounds().Max.Y-TitleInset)
}

// Validate rejects parameters that would draw something the caller did not
// ask for. Nothing is clamped.
func (s Shape) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidShape, s.Kind, fmt.Sprintf(format, args...))
	}
	switch s.Kind {
	case KindDiamond:
		if !(s.Radius > 0) {
			return bad("radius must be positive, got %g", s.Radius)
		}
		return nil
	case KindBox, KindRoundedBox, KindEllipse, KindOpenStore, KindParallelogram:
	default:
		return bad("unknown kind %d", int(s.Kind))
	}
	if !(s.Width > 0) || !(s.Height > 0) {
		return bad("size must be positive, got %gx%g", s.Width, s.Height)
	}
	switch s.Kind {
	case KindRoundedBox:
		if s.CornerRadius < 0 {
			return bad("corner radius must not be negative, got %g", s.CornerRadius)
		}
		if s.CornerRadius > math.Min(s.Width, s.Height)/2 {
			return bad("corner radius %g exceeds half of %gx%g", s.CornerRadius, s.Width, s.Height)
		}
	case KindOpenStore:
		if !(s.Notch > 0) || s.Notch >= s.Width {
			return bad("notch must be in (0, %g), got %g", s.Width, s.Notch)
		}
		if 2*StoreInset >= s.Height {
			return bad("height %g leaves no room for the %g inset", s.Height, StoreInset)
		}
	case KindParallelogram:
		if s.Skew < 0 || s.Skew >= s.Width {
			return bad("skew must be in [0, %g), got %g", s.Width, s.Skew)
		}
	}
	return nil
}
