package render

import (
	"image/color"

	"github.com/rs/zerolog"

	"flowpaint/style"
)

// Options configures rendering. Sizes ending in "Size" are font sizes and
// ArrowSize/line widths are lengths, all in points (1/72 of a canvas unit).
type Options struct {
	// DPI is the number of pixels per canvas unit.
	DPI float64
	// Padding is the margin kept around the content, in canvas units.
	Padding float64
	// Styles resolves shape and connector categories.
	Styles *style.Registry

	LabelSize     float64
	EdgeLabelSize float64
	TitleSize     float64
	FooterSize    float64
	LegendSize    float64
	// LineSpacing is the label line height as a multiple of the font size.
	LineSpacing float64
	ArrowSize   float64

	Logger zerolog.Logger
}

// DefaultOptions returns sensible defaults for screen-sized output.
func DefaultOptions() Options {
	return Options{
		DPI:           100,
		Padding:       0.2,
		LabelSize:     9,
		EdgeLabelSize: 8,
		TitleSize:     18,
		FooterSize:    10,
		LegendSize:    10,
		LineSpacing:   1.3,
		ArrowSize:     9,
		Logger:        zerolog.Nop(),
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	for _, f := range []struct {
		v   *float64
		def float64
	}{
		{&o.LabelSize, d.LabelSize},
		{&o.EdgeLabelSize, d.EdgeLabelSize},
		{&o.TitleSize, d.TitleSize},
		{&o.FooterSize, d.FooterSize},
		{&o.LegendSize, d.LegendSize},
		{&o.LineSpacing, d.LineSpacing},
		{&o.ArrowSize, d.ArrowSize},
	} {
		if *f.v <= 0 {
			*f.v = f.def
		}
	}
	return o
}

// Colors used when neither the element nor its category defines a style.
var (
	colorBackground = color.White
	colorInk        = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF} // #333
	colorFooter     = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	colorPatch      = color.White

	defaultShapeStyle = style.Style{Fill: color.White, Stroke: color.Black, StrokeWidth: 1.5}
	defaultEdgeStyle  = style.Style{Stroke: colorInk, StrokeWidth: 1.8}
)
