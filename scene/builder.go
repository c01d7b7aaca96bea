package scene

import (
	"fmt"

	"flowpaint/connector"
	"flowpaint/geometry"
	"flowpaint/shape"
	"flowpaint/style"
)

// Builder assembles a Scene. The first error is sticky: every later call is
// a no-op and Build returns it, so a half-built diagram is never rendered.
type Builder struct {
	scene Scene
	err   error
}

// NewBuilder starts an empty scene on the given canvas.
func NewBuilder(canvas geometry.Canvas) *Builder {
	return &Builder{scene: Scene{Canvas: canvas, Legend: Legend{Columns: 1}}}
}

// Err returns the first construction error, if any.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	return err
}

// SetTitle sets the heading drawn above the content.
func (b *Builder) SetTitle(title string) *Builder {
	b.scene.Title = title
	return b
}

// SetFooter sets the note drawn under the content.
func (b *Builder) SetFooter(footer string) *Builder {
	b.scene.Footer = footer
	return b
}

// AddShape validates and places a shape, returning its handle.
func (b *Builder) AddShape(s shape.Shape) (shape.Ref, error) {
	if b.err != nil {
		return -1, b.err
	}
	if err := s.Validate(); err != nil {
		return -1, b.fail(fmt.Errorf("add shape %d %q: %w", len(b.scene.shapes), labelOf(s), err))
	}
	s.Label = append([]string(nil), s.Label...)
	if s.Style != nil {
		st := *s.Style
		s.Style = &st
	}
	ref := shape.Ref(len(b.scene.shapes))
	b.scene.shapes = append(b.scene.shapes, s)
	b.scene.Items = append(b.scene.Items, Item{Kind: ItemShape, Shape: s})
	return ref, nil
}

// Place is AddShape for literal diagram definitions: the error stays
// recorded on the builder and surfaces from Build.
func (b *Builder) Place(s shape.Shape) shape.Ref {
	ref, _ := b.AddShape(s)
	return ref
}

// AddConnector appends a connector. Anchored endpoints must refer to shapes
// added earlier; raw points are taken as is.
func (b *Builder) AddConnector(c connector.Connector) error {
	if b.err != nil {
		return b.err
	}
	for _, e := range []connector.Endpoint{c.From, c.To} {
		if _, err := b.scene.Resolve(e); err != nil {
			return b.fail(fmt.Errorf("add connector %q: %w", labelOf(c), err))
		}
	}
	c.Label = append([]string(nil), c.Label...)
	if c.Style != nil {
		st := *c.Style
		c.Style = &st
	}
	if c.LabelOffset != nil {
		off := *c.LabelOffset
		c.LabelOffset = &off
	}
	b.scene.Items = append(b.scene.Items, Item{Kind: ItemConnector, Connector: c})
	return nil
}

// Connect is AddConnector for literal diagram definitions; see Place.
func (b *Builder) Connect(c connector.Connector) *Builder {
	_ = b.AddConnector(c)
	return b
}

// AddText appends a free-standing text block.
func (b *Builder) AddText(t Text) error {
	if b.err != nil {
		return b.err
	}
	t.Lines = append([]string(nil), t.Lines...)
	b.scene.Items = append(b.scene.Items, Item{Kind: ItemText, Text: t})
	return nil
}

// Annotate is AddText for literal diagram definitions; see Place.
func (b *Builder) Annotate(t Text) *Builder {
	_ = b.AddText(t)
	return b
}

// AddLegendEntry appends one entry to the legend.
func (b *Builder) AddLegendEntry(e style.LegendEntry) *Builder {
	b.scene.Legend.Entries = append(b.scene.Legend.Entries, e)
	return b
}

// AddLegendEntries appends the registry entries for names, in that order.
func (b *Builder) AddLegendEntries(r *style.Registry, names ...string) error {
	if b.err != nil {
		return b.err
	}
	entries, err := r.LegendEntriesFor(names...)
	if err != nil {
		return b.fail(fmt.Errorf("legend: %w", err))
	}
	b.scene.Legend.Entries = append(b.scene.Legend.Entries, entries...)
	return nil
}

// SetLegendLayout configures where the legend goes and how many columns it has.
func (b *Builder) SetLegendLayout(p Placement, columns int, title string) *Builder {
	if columns < 1 {
		columns = 1
	}
	b.scene.Legend.Placement = p
	b.scene.Legend.Columns = columns
	b.scene.Legend.Title = title
	return b
}

// Build returns a snapshot of the scene. Later builder calls do not change
// scenes already built.
func (b *Builder) Build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.scene.Items) == 0 && b.scene.Title == "" {
		return nil, ErrEmptyScene
	}
	s := b.scene
	s.Items = append([]Item(nil), s.Items...)
	s.shapes = append([]shape.Shape(nil), s.shapes...)
	s.Legend.Entries = append([]style.LegendEntry(nil), s.Legend.Entries...)
	return &s, nil
}

func labelOf(v any) string {
	switch x := v.(type) {
	case shape.Shape:
		if len(x.Label) > 0 {
			return x.Label[0]
		}
		return x.Title
	case connector.Connector:
		if len(x.Label) > 0 {
			return x.Label[0]
		}
	}
	return ""
}
