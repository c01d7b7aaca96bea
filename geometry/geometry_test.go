package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectAround(t *testing.T) {
	r := RectAround(Pt(5, 5), 2, 1)
	assert.Equal(t, Pt(4, 4.5), r.Min)
	assert.Equal(t, Pt(6, 5.5), r.Max)
	assert.Equal(t, 2.0, r.Width())
	assert.Equal(t, 1.0, r.Height())
	assert.Equal(t, Pt(5, 5), r.Center())
}

func TestBoundsOf(t *testing.T) {
	r := BoundsOf(Pt(1, 3), Pt(-2, 4), Pt(0, -1))
	assert.Equal(t, Rect{Min: Pt(-2, -1), Max: Pt(1, 4)}, r)
	assert.Equal(t, Rect{}, BoundsOf())
}

func TestRectUnionIgnoresZero(t *testing.T) {
	a := Rect{Min: Pt(0, 0), Max: Pt(1, 1)}
	b := Rect{Min: Pt(2, -1), Max: Pt(3, 0.5)}

	assert.Equal(t, a, Rect{}.Union(a))
	assert.Equal(t, a, a.Union(Rect{}))
	assert.Equal(t, Rect{Min: Pt(0, -1), Max: Pt(3, 1)}, a.Union(b))
}

func TestRectInsetAndContains(t *testing.T) {
	r := Rect{Min: Pt(0, 0), Max: Pt(2, 2)}
	grown := r.Inset(0.5)
	assert.Equal(t, Pt(-0.5, -0.5), grown.Min)
	assert.True(t, grown.Contains(r))
	assert.False(t, r.Contains(grown))
	assert.True(t, r.ContainsPoint(Pt(2, 2)))
}

func TestCanvasContains(t *testing.T) {
	c := NewCanvas(22, 16)
	assert.True(t, c.Contains(RectAround(Pt(2, 14), 2.5, 1.2)))
	assert.False(t, c.Contains(RectAround(Pt(21.5, 14), 2.5, 1.2)))
}

func TestPointVectorOps(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, 5.0, p.Len())
	assert.Equal(t, 5.0, Pt(0, 0).Dist(p))
	assert.InDelta(t, 1.0, p.Unit().Len(), 1e-12)
	assert.Equal(t, Point{}, Point{}.Unit())
	assert.Equal(t, Pt(1.5, 2), Point{}.Mid(p))
}
