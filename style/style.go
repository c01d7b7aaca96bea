// Package style maps semantic diagram categories (actor, process, decision,
// store, flow kinds...) to paint styles and derives legend entries from them.
package style

import (
	"errors"
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	ErrUnknownCategory   = errors.New("unknown style category")
	ErrDuplicateCategory = errors.New("duplicate style category")
	ErrInvalidColor      = errors.New("invalid color")
)

// Style describes how a shape or connector is painted.
type Style struct {
	Fill        color.Color // nil means unfilled
	Stroke      color.Color // nil means no outline
	StrokeWidth float64     // in points
	Opacity     float64     // applies to fill and stroke, in (0,1]; zero is treated as opaque
	Text        color.Color // label color, nil means black
}

// FillColor returns the fill with Opacity applied, or nil when unfilled.
func (s Style) FillColor() color.Color {
	if s.Fill == nil {
		return nil
	}
	return withAlpha(s.Fill, s.opacity())
}

// StrokeColor returns the outline with Opacity applied, or nil for no outline.
func (s Style) StrokeColor() color.Color {
	if s.Stroke == nil {
		return nil
	}
	return withAlpha(s.Stroke, s.opacity())
}

// TextColor returns the label color.
func (s Style) TextColor() color.Color {
	if s.Text == nil {
		return color.Black
	}
	return s.Text
}

// Faded returns a copy of s painted at the given opacity.
func (s Style) Faded(opacity float64) Style {
	s.Opacity = opacity
	return s
}

func (s Style) opacity() float64 {
	if s.Opacity <= 0 || s.Opacity > 1 {
		return 1
	}
	return s.Opacity
}

func withAlpha(c color.Color, a float64) color.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent input
		return c
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// Hex parses a "#RRGGBB" or "#RGB" color.
func Hex(s string) (color.Color, error) {
	c, err := colorful.Hex(expandShortHex(s))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustHex is like Hex but panics on malformed input. It is meant for color
// literals in diagram definitions.
func MustHex(s string) color.Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func expandShortHex(s string) string {
	if len(s) != 4 || s[0] != '#' {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}
