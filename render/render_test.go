package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowpaint/connector"
	"flowpaint/geometry"
	"flowpaint/scene"
	"flowpaint/shape"
	"flowpaint/style"
)

// inkBounds returns the bounding box of all non-white pixels.
func inkBounds(img image.Image) image.Rectangle {
	var out image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !isInk(img, x, y, 0xF000) {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if out.Empty() {
				out = px
			} else {
				out = out.Union(px)
			}
		}
	}
	return out
}

// isInk reports whether any channel of the pixel is darker than limit.
func isInk(img image.Image, x, y int, limit uint32) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r < limit || g < limit || b < limit
}

func countInk(img image.Image, area image.Rectangle) int {
	n := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if isInk(img, x, y, 0xC000) {
				n++
			}
		}
	}
	return n
}

func build(t *testing.T, fn func(b *scene.Builder)) *scene.Scene {
	t.Helper()
	b := scene.NewBuilder(geometry.NewCanvas(10, 10))
	fn(b)
	s, err := b.Build()
	require.NoError(t, err)
	return s
}

func TestRenderSingleRoundedBox(t *testing.T) {
	sc := build(t, func(b *scene.Builder) {
		b.Place(shape.RoundedBox(5, 5, 2, 1, 0.1).WithLabel("START"))
	})

	s, err := New(DefaultOptions()).Render(sc)
	require.NoError(t, err)
	// 2x1 box, 1.5pt stroke overhang on each side, 0.2 padding
	stroke := 0.75 / 72
	assert.Equal(t, 243, s.Width())
	assert.Equal(t, 143, s.Height())
	assert.InDelta(t, 3.8-stroke, s.Bounds.Min.X, 1e-9)
	assert.InDelta(t, 5.7+stroke, s.Bounds.Max.Y, 1e-9)

	ink := inkBounds(s.Image())
	assert.InDelta(t, 20, ink.Min.X, 3)
	assert.InDelta(t, 20, ink.Min.Y, 3)
	assert.InDelta(t, 220, ink.Max.X, 3)
	assert.InDelta(t, 120, ink.Max.Y, 3)

	// the label sits in the middle of the box
	assert.Positive(t, countInk(s.Image(), image.Rect(100, 60, 140, 80)))
}

func TestRenderArrowTouchesFacingEdges(t *testing.T) {
	sc := build(t, func(b *scene.Builder) {
		a := b.Place(shape.Box(2, 5, 2, 1))
		c := b.Place(shape.Box(8, 5, 2, 1))
		require.NoError(t, b.AddConnector(connector.Straight(
			connector.Of(a, shape.Right), connector.Of(c, shape.Left))))
	})

	s, err := New(DefaultOptions()).Render(sc)
	require.NoError(t, err)
	img := s.Image()

	// content spans x 1..9, y 4.5..5.5 plus stroke; tip lands at (7, 5) -> pixel (621, 71)
	assert.Equal(t, 843, s.Width())
	assert.Positive(t, countInk(img, image.Rect(415, 68, 425, 73)), "shaft")
	assert.Positive(t, countInk(img, image.Rect(600, 60, 616, 67)), "upper barb")
	assert.Positive(t, countInk(img, image.Rect(600, 74, 616, 81)), "lower barb")
	assert.Zero(t, countInk(img, image.Rect(400, 40, 440, 55)), "nothing above the shaft")
}

func TestRenderHeadNoneDrawsNoBarbs(t *testing.T) {
	sc := build(t, func(b *scene.Builder) {
		a := b.Place(shape.Box(2, 5, 2, 1))
		c := b.Place(shape.Box(8, 5, 2, 1))
		require.NoError(t, b.AddConnector(connector.Line(
			connector.Of(a, shape.Right), connector.Of(c, shape.Left))))
	})

	s, err := New(DefaultOptions()).Render(sc)
	require.NoError(t, err)
	assert.Zero(t, countInk(s.Image(), image.Rect(600, 60, 616, 66)))
}

func TestRenderZeroPaddingKeepsWholeStroke(t *testing.T) {
	st := style.Style{Fill: color.White, Stroke: color.Black, StrokeWidth: 8}
	sc := build(t, func(b *scene.Builder) {
		b.Place(shape.Box(5, 5, 2, 1).WithStyle(st))
	})

	s, err := New(Options{}).Render(sc)
	require.NoError(t, err)
	half := 4.0 / 72
	assert.InDelta(t, 4-half, s.Bounds.Min.X, 1e-9)
	assert.InDelta(t, 5.5+half, s.Bounds.Max.Y, 1e-9)
	assert.Equal(t, 212, s.Width())

	// an 8pt stroke at 100 dpi is about 11 pixels wide, all of it on the raster
	img := s.Image()
	row := s.Height() / 2
	assert.InDelta(t, 11, countInk(img, image.Rect(0, row, 30, row+1)), 1)
	assert.InDelta(t, 11, countInk(img, image.Rect(s.Width()-30, row, s.Width(), row+1)), 1)
	assert.Equal(t, 0, inkBounds(img).Min.X)
}

func TestRenderArrowheadInsideRaster(t *testing.T) {
	sc := build(t, func(b *scene.Builder) {
		require.NoError(t, b.AddConnector(connector.Straight(connector.At(2, 5), connector.At(2, 8))))
	})

	s, err := New(Options{}).Render(sc)
	require.NoError(t, err)
	// the shaft alone is 3px wide; the barbs widen the raster to about 14px
	assert.GreaterOrEqual(t, s.Width(), 13)
	img := s.Image()
	h := s.Height()
	assert.Positive(t, countInk(img, image.Rect(0, 0, 4, h)), "left barb")
	assert.Positive(t, countInk(img, image.Rect(s.Width()-4, 0, s.Width(), h)), "right barb")
}

func TestEdgeLabelsStayAboveLaterLines(t *testing.T) {
	labeled := connector.Line(connector.At(2, 5), connector.At(8, 5)).
		WithLabel("AB        CD").
		WithLabelOffset(0, 0)
	crossing := connector.Line(connector.At(5, 3), connector.At(5, 7))

	sc := build(t, func(b *scene.Builder) {
		require.NoError(t, b.AddConnector(labeled))
		require.NoError(t, b.AddConnector(crossing))
	})
	s, err := New(DefaultOptions()).Render(sc)
	require.NoError(t, err)
	img := s.Image()

	cx := int((5 - s.Bounds.Min.X) * s.DPI)
	cy := int((s.Bounds.Max.Y - 5) * s.DPI)
	assert.Zero(t, countInk(img, image.Rect(cx-1, cy-5, cx+2, cy+5)), "label patch covers the crossing line")
	assert.Positive(t, countInk(img, image.Rect(cx-1, cy+30, cx+2, cy+35)), "crossing line outside the patch")
}

func TestRenderIsDeterministic(t *testing.T) {
	reg, err := style.NewRegistry(style.Category{
		Name:  "process",
		Style: style.Style{Fill: style.MustHex("#E6F3FF"), Stroke: style.MustHex("#2c5aa0"), StrokeWidth: 2},
	})
	require.NoError(t, err)
	sc := build(t, func(b *scene.Builder) {
		b.SetTitle("Deterministic").SetFooter("footer")
		a := b.Place(shape.Ellipse(3, 5, 2, 1).WithLabel("one", "two").WithCategory("process"))
		c := b.Place(shape.Diamond(7, 5, 1, shape.DiamondRotation).WithLabel("?"))
		require.NoError(t, b.AddConnector(connector.New(
			connector.Of(a, shape.Right), connector.Of(c, shape.Left)).WithLabel("flow")))
		require.NoError(t, b.AddLegendEntries(reg, "process"))
	})

	r := New(Options{Styles: reg})
	encode := func() []byte {
		s, err := r.Render(sc)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, s.EncodePNG(&buf))
		return buf.Bytes()
	}
	assert.Equal(t, encode(), encode())
}

func TestRenderDecorationsGrowTheImage(t *testing.T) {
	plain := build(t, func(b *scene.Builder) {
		b.Place(shape.Box(5, 5, 2, 1))
	})
	decorated := build(t, func(b *scene.Builder) {
		b.SetTitle("Title").SetFooter("Generated")
		b.Place(shape.Box(5, 5, 2, 1))
		b.AddLegendEntry(style.LegendEntry{Category: "box", Label: "Box", Style: style.Style{Fill: style.MustHex("#FFE5B4")}})
	})

	r := New(DefaultOptions())
	p, err := r.Render(plain)
	require.NoError(t, err)
	d, err := r.Render(decorated)
	require.NoError(t, err)
	assert.Greater(t, d.Height(), p.Height())
	assert.Greater(t, d.Bounds.Max.Y, p.Bounds.Max.Y)
	assert.Less(t, d.Bounds.Min.Y, p.Bounds.Min.Y)
}

func TestRenderUnknownCategory(t *testing.T) {
	sc := build(t, func(b *scene.Builder) {
		b.Place(shape.Box(5, 5, 2, 1).WithCategory("bogus"))
	})
	_, err := New(DefaultOptions()).Render(sc)
	assert.True(t, errors.Is(err, style.ErrUnknownCategory))

	_, err = New(DefaultOptions()).Render(nil)
	assert.True(t, errors.Is(err, scene.ErrEmptyScene))
}

func TestRenderWarnsOutsideCanvas(t *testing.T) {
	sc := build(t, func(b *scene.Builder) {
		b.Place(shape.Box(5, 5, 2, 1))
		b.Place(shape.Box(11, 5, 2, 1))
	})

	var logs bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = zerolog.New(&logs)
	s, err := New(opts).Render(sc)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "element outside canvas")
	assert.Contains(t, logs.String(), `"item":1`)
	assert.NotContains(t, logs.String(), `"item":0`)

	// drawn anyway, the raster covers both boxes
	assert.InDelta(t, 12.2+0.75/72, s.Bounds.Max.X, 1e-9)
}

func TestExport(t *testing.T) {
	sc := build(t, func(b *scene.Builder) {
		b.Place(shape.OpenStore(5, 5, 2, 1, 0.2).WithLabel("D1", "Store"))
	})
	s, err := New(DefaultOptions()).Render(sc)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "store.png")
	require.NoError(t, Export(s, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, s.Width(), img.Bounds().Dx())
	assert.Equal(t, s.Height(), img.Bounds().Dy())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestExportMissingDirectory(t *testing.T) {
	sc := build(t, func(b *scene.Builder) {
		b.Place(shape.Box(5, 5, 2, 1))
	})
	s, err := New(DefaultOptions()).Render(sc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "missing", "out.png")
	err = Export(s, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist))
	_, statErr = os.Stat(filepath.Dir(path))
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "export never creates directories")
}

func TestRenderFile(t *testing.T) {
	sc := build(t, func(b *scene.Builder) {
		b.Place(shape.Parallelogram(5, 5, 2, 1, 0.2).WithLabel("Input"))
	})
	path := filepath.Join(t.TempDir(), "input.png")
	require.NoError(t, New(DefaultOptions()).RenderFile(sc, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
