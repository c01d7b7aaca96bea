package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowpaint/connector"
	"flowpaint/geometry"
	"flowpaint/shape"
	"flowpaint/style"
)

func TestBuilderKeepsInsertionOrder(t *testing.T) {
	b := NewBuilder(geometry.NewCanvas(12, 4))
	b.SetTitle("two boxes").SetFooter("footer")

	a, err := b.AddShape(shape.Box(1, 2, 2, 1).WithLabel("A"))
	require.NoError(t, err)
	c, err := b.AddShape(shape.Box(10, 2, 2, 1).WithLabel("B"))
	require.NoError(t, err)
	require.NoError(t, b.AddConnector(connector.Straight(
		connector.Of(a, shape.Right), connector.Of(c, shape.Left))))
	require.NoError(t, b.AddText(Text{At: geometry.Pt(6, 0.5), Lines: []string{"note"}}))

	s, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "two boxes", s.Title)
	assert.Equal(t, "footer", s.Footer)
	require.Len(t, s.Items, 4)
	assert.Equal(t, ItemShape, s.Items[0].Kind)
	assert.Equal(t, []string{"A"}, s.Items[0].Shape.Label)
	assert.Equal(t, ItemShape, s.Items[1].Kind)
	assert.Equal(t, ItemConnector, s.Items[2].Kind)
	assert.Equal(t, ItemText, s.Items[3].Kind)
	assert.Equal(t, 2, s.Shapes())
	assert.Equal(t, shape.Ref(0), a)
	assert.Equal(t, shape.Ref(1), c)
}

func TestResolveAnchoredEndpoints(t *testing.T) {
	b := NewBuilder(geometry.NewCanvas(12, 4))
	a := b.Place(shape.Box(0, 0, 2, 1))
	c := b.Place(shape.Box(10, 0, 2, 1))
	require.NoError(t, b.AddConnector(connector.Straight(connector.Of(a, shape.Right), connector.Of(c, shape.Left))))
	s, err := b.Build()
	require.NoError(t, err)

	p, err := s.Path(s.Items[2].Connector)
	require.NoError(t, err)
	assert.Equal(t, geometry.Pt(1, 0), p.Start)
	assert.Equal(t, geometry.Pt(9, 0), p.End)
	assert.Equal(t, geometry.Pt(1, 0), p.Head().Dir)

	raw, err := s.Resolve(connector.At(3, 4))
	require.NoError(t, err)
	assert.Equal(t, geometry.Pt(3, 4), raw)

	_, err = s.Resolve(connector.Of(shape.Ref(7), shape.Top))
	assert.True(t, errors.Is(err, ErrUnknownShape))
}

func TestInvalidShapeIsReportedAndSticky(t *testing.T) {
	b := NewBuilder(geometry.NewCanvas(10, 10))
	_, err := b.AddShape(shape.Box(1, 1, 0, 1).WithLabel("broken"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, shape.ErrInvalidShape))
	assert.Contains(t, err.Error(), "broken")

	_, err = b.AddShape(shape.Box(1, 1, 1, 1))
	assert.True(t, errors.Is(err, shape.ErrInvalidShape))
	assert.True(t, errors.Is(b.AddText(Text{}), shape.ErrInvalidShape))

	s, err := b.Build()
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, shape.ErrInvalidShape))
}

func TestConnectorBeforeShapeIsRejected(t *testing.T) {
	b := NewBuilder(geometry.NewCanvas(10, 10))
	err := b.AddConnector(connector.New(connector.Of(0, shape.Right), connector.At(5, 5)))
	assert.True(t, errors.Is(err, ErrUnknownShape))
	_, err = b.Build()
	assert.True(t, errors.Is(err, ErrUnknownShape))
}

func TestBuildEmpty(t *testing.T) {
	_, err := NewBuilder(geometry.NewCanvas(1, 1)).Build()
	assert.True(t, errors.Is(err, ErrEmptyScene))

	s, err := NewBuilder(geometry.NewCanvas(1, 1)).SetTitle("only a title").Build()
	require.NoError(t, err)
	assert.Empty(t, s.Items)
}

func TestSceneIsDetachedFromCaller(t *testing.T) {
	label := []string{"Guest"}
	st := style.Style{StrokeWidth: 2}
	b := NewBuilder(geometry.NewCanvas(10, 10))
	b.Place(shape.RoundedBox(2, 2, 2, 1, 0.1).WithLabel(label...).WithStyle(st))
	s, err := b.Build()
	require.NoError(t, err)

	label[0] = "changed"
	b.Place(shape.Box(5, 5, 1, 1))
	assert.Equal(t, "Guest", s.Items[0].Shape.Label[0])
	assert.Len(t, s.Items, 1)
	assert.Equal(t, 2.0, s.Items[0].Shape.Style.StrokeWidth)
}

func TestLegend(t *testing.T) {
	reg, err := style.NewRegistry(
		style.Category{Name: "terminal", Label: "Start/End"},
		style.Category{Name: "process", Label: "Process"},
	)
	require.NoError(t, err)

	b := NewBuilder(geometry.NewCanvas(10, 10)).SetTitle("legend")
	require.NoError(t, b.AddLegendEntries(reg, "terminal", "process"))
	b.SetLegendLayout(LegendTopLeft, 0, "Flowchart Symbols")
	b.AddLegendEntry(style.LegendEntry{Category: "extra", Label: "Extra"})
	s, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, LegendTopLeft, s.Legend.Placement)
	assert.Equal(t, 1, s.Legend.Columns)
	assert.Equal(t, "Flowchart Symbols", s.Legend.Title)
	require.Len(t, s.Legend.Entries, 3)
	assert.Equal(t, "Start/End", s.Legend.Entries[0].Label)
	assert.Equal(t, "Extra", s.Legend.Entries[2].Label)

	b = NewBuilder(geometry.NewCanvas(10, 10))
	assert.True(t, errors.Is(b.AddLegendEntries(reg, "nope"), style.ErrUnknownCategory))
}

func TestBuildReturnsIndependentSnapshots(t *testing.T) {
	b := NewBuilder(geometry.NewCanvas(10, 10))
	b.Place(shape.Box(2, 2, 2, 1).WithLabel("A"))
	b.AddLegendEntry(style.LegendEntry{Category: "box", Label: "Box"})
	first, err := b.Build()
	require.NoError(t, err)

	b.Place(shape.Box(5, 5, 1, 1))
	b.AddLegendEntry(style.LegendEntry{Category: "other", Label: "Other"})
	second, err := b.Build()
	require.NoError(t, err)

	first.Items[0].Shape.Center = geometry.Pt(9, 9)
	first.Legend.Entries[0].Label = "changed"

	assert.Len(t, first.Items, 1)
	assert.Len(t, first.Legend.Entries, 1)
	require.Len(t, second.Items, 2)
	assert.Equal(t, geometry.Pt(2, 2), second.Items[0].Shape.Center)
	assert.Equal(t, "Box", second.Legend.Entries[0].Label)
}
