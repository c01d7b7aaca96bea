// Package render paints scenes onto raster surfaces and exports them as PNG.
//
// Canvas units map to pixels through Options.DPI. The raster is sized to the
// content (shapes, connectors, text, title, legend and footer) plus padding,
// so diagrams of any aspect ratio are exported without clipping.
package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"flowpaint/connector"
	"flowpaint/geometry"
	"flowpaint/scene"
	"flowpaint/style"
)

// Renderer paints scenes. It holds only configuration and is safe for
// concurrent use; every Render call owns its surface and font faces.
type Renderer struct {
	opts Options
}

// New returns a renderer. Zero option fields take their defaults, except
// Padding: zero means the raster ends at the outer edge of the ink.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts.withDefaults()}
}

// Options returns the effective options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Surface is a painted diagram ready to be exported.
type Surface struct {
	dc *gg.Context
	// Bounds is the canvas area covered by the image, padding included.
	Bounds geometry.Rect
	DPI    float64
}

// Image returns the painted raster.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// Width returns the raster width in pixels.
func (s *Surface) Width() int {
	return s.dc.Width()
}

// Height returns the raster height in pixels.
func (s *Surface) Height() int {
	return s.dc.Height()
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Render paints the scene: background, items in insertion order, connector
// labels, then title, legend and footer. Connector labels go above every
// item so a later line never crosses an earlier label.
func (r *Renderer) Render(sc *scene.Scene) (*Surface, error) {
	if sc == nil {
		return nil, scene.ErrEmptyScene
	}
	fs, err := loadFonts()
	if err != nil {
		return nil, err
	}
	faces := newFaceCache(fs, r.opts.DPI)
	defer faces.close()
	m := &metrics{opts: r.opts, faces: faces}

	lay, err := m.layout(sc)
	if err != nil {
		return nil, err
	}

	bounds := lay.content.Inset(r.opts.Padding)
	w := r.pixels(bounds.Width())
	h := r.pixels(bounds.Height())

	dc := gg.NewContext(w, h)
	dc.SetColor(colorBackground)
	dc.Clear()

	p := &painter{
		metrics: m,
		dc:      dc,
		tf:      transform{left: bounds.Min.X, top: bounds.Max.Y, dpi: r.opts.DPI},
	}
	for i, it := range sc.Items {
		switch it.Kind {
		case scene.ItemShape:
			p.shape(it.Shape)
		case scene.ItemConnector:
			p.connector(it.Connector, lay.paths[i])
		case scene.ItemText:
			p.text(it.Text)
		}
	}
	for i, it := range sc.Items {
		if it.Kind == scene.ItemConnector && len(it.Connector.Label) > 0 {
			p.edgeLabel(it.Connector, lay.paths[i])
		}
	}
	if sc.Title != "" {
		p.text(lay.title)
	}
	if len(sc.Legend.Entries) > 0 && sc.Legend.Placement != scene.LegendNone {
		p.legend(sc.Legend, lay.legend)
	}
	if sc.Footer != "" {
		p.text(lay.footer)
	}

	r.opts.Logger.Debug().
		Int("width", w).
		Int("height", h).
		Int("items", len(sc.Items)).
		Msg("scene rendered")
	return &Surface{dc: dc, Bounds: bounds, DPI: r.opts.DPI}, nil
}

// pixels rounds a canvas length up to whole pixels, ignoring float noise.
func (r *Renderer) pixels(v float64) int {
	n := int(math.Ceil(v*r.opts.DPI - 1e-6))
	if n < 1 {
		return 1
	}
	return n
}

// layout holds everything computed before painting.
type layout struct {
	content geometry.Rect
	paths   map[int]connector.Path
	title   scene.Text
	footer  scene.Text
	legend  legendBox
}

func (m *metrics) layout(sc *scene.Scene) (*layout, error) {
	lay := &layout{paths: make(map[int]connector.Path)}
	log := m.opts.Logger
	canvas := sc.Canvas.Rect()
	checkCanvas := !canvas.Empty()

	for i, it := range sc.Items {
		// r is where the element sits, ink adds stroke and arrowhead overhang
		var r, ink geometry.Rect
		switch it.Kind {
		case scene.ItemShape:
			s := it.Shape
			st, err := m.styleFor(s.Style, s.Category, defaultShapeStyle)
			if err != nil {
				return nil, fmt.Errorf("shape %d: %w", i, err)
			}
			r = s.Bounds()
			ink = r
			if st.StrokeColor() != nil && st.StrokeWidth > 0 {
				ink = r.Inset(st.StrokeWidth / 2 / 72)
			}
			if len(s.Label) > 0 {
				r = r.Union(m.blockRect(s.Label, m.shapeVariant(s), m.shapeSize(s), s.TextAnchor(), scene.AlignMiddle))
			}
			if s.Title != "" {
				r = r.Union(m.titlePatchRect(s))
			}
			ink = ink.Union(r)
		case scene.ItemConnector:
			c := it.Connector
			st, err := m.styleFor(c.Style, c.Category, defaultEdgeStyle)
			if err != nil {
				return nil, fmt.Errorf("connector %d: %w", i, err)
			}
			path, err := sc.Path(c)
			if err != nil {
				return nil, fmt.Errorf("connector %d: %w", i, err)
			}
			lay.paths[i] = path
			r = path.Bounds()
			ink = m.edgeInk(c, st, path)
			if len(c.Label) > 0 {
				r = r.Union(m.edgeLabelRect(c, path))
				ink = ink.Union(r)
			}
		case scene.ItemText:
			t := it.Text
			r = m.textRect(t)
			ink = r
		}
		if checkCanvas && !canvas.Contains(r) {
			log.Warn().Int("item", i).
				Float64("min_x", r.Min.X).Float64("min_y", r.Min.Y).
				Float64("max_x", r.Max.X).Float64("max_y", r.Max.Y).
				Msg("element outside canvas")
		}
		lay.content = lay.content.Union(ink)
	}
	if len(sc.Items) == 0 {
		lay.content = canvas
	}

	centerX := lay.content.Center().X
	if checkCanvas {
		centerX = canvas.Center().X
	}
	const gap = 0.25

	if sc.Title != "" {
		lay.title = scene.Text{
			At:       geometry.Pt(centerX, lay.content.Max.Y+gap),
			Lines:    []string{sc.Title},
			VAlign:   scene.AlignBottom,
			FontSize: m.opts.TitleSize,
			Bold:     true,
		}
		lay.content = lay.content.Union(m.textRect(lay.title))
	}

	if len(sc.Legend.Entries) > 0 && sc.Legend.Placement != scene.LegendNone {
		var topLeft geometry.Point
		size := m.legendSize(sc.Legend)
		switch sc.Legend.Placement {
		case scene.LegendTopLeft:
			ref := lay.content
			if checkCanvas {
				ref = canvas
			}
			topLeft = geometry.Pt(ref.Min.X+0.1, ref.Max.Y-0.1)
		default:
			topLeft = geometry.Pt(centerX-size.X/2, lay.content.Min.Y-gap)
		}
		lay.legend = m.legendLayout(sc.Legend, topLeft)
		lay.content = lay.content.Union(lay.legend.frame)
	}

	if sc.Footer != "" {
		lay.footer = scene.Text{
			At:       geometry.Pt(centerX, lay.content.Min.Y-gap),
			Lines:    []string{sc.Footer},
			VAlign:   scene.AlignTop,
			FontSize: m.opts.FooterSize,
			Italic:   true,
			Color:    colorFooter,
		}
		lay.content = lay.content.Union(m.textRect(lay.footer))
	}
	return lay, nil
}

// styleFor picks the explicit style, then the category style, then the
// fallback for uncategorized elements.
func (m *metrics) styleFor(override *style.Style, category string, fallback style.Style) (style.Style, error) {
	if override != nil {
		return *override, nil
	}
	if category == "" {
		return fallback, nil
	}
	st, ok := m.opts.Styles.Lookup(category)
	if !ok {
		return style.Style{}, fmt.Errorf("%w: %q", style.ErrUnknownCategory, category)
	}
	return st, nil
}

// transform maps y-up canvas units to y-down pixels.
type transform struct {
	left, top, dpi float64
}

func (t transform) apply(p geometry.Point) (float64, float64) {
	return (p.X - t.left) * t.dpi, (t.top - p.Y) * t.dpi
}
