package style

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FFE5B4", color.NRGBA{0xFF, 0xE5, 0xB4, 0xFF}},
		{"#2c5aa0", color.NRGBA{0x2C, 0x5A, 0xA0, 0xFF}},
		{"#333", color.NRGBA{0x33, 0x33, 0x33, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Hex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestHexInvalid(t *testing.T) {
	_, err := Hex("peach")
	assert.True(t, errors.Is(err, ErrInvalidColor))
	assert.Panics(t, func() { MustHex("#zzzzzz") })
}

func TestFillColorOpacity(t *testing.T) {
	s := Style{Fill: MustHex("#4A90E2"), Opacity: 0.8}
	c := s.FillColor().(color.NRGBA)
	assert.Equal(t, uint8(204), c.A)
	assert.Equal(t, uint8(0x4A), c.R)

	opaque := Style{Fill: MustHex("#4A90E2")}
	assert.Equal(t, uint8(255), opaque.FillColor().(color.NRGBA).A)

	faded := Style{Stroke: MustHex("#808080"), Opacity: 0.6}
	assert.Equal(t, uint8(153), faded.StrokeColor().(color.NRGBA).A)

	assert.Equal(t, uint8(153), opaque.Faded(0.6).FillColor().(color.NRGBA).A)
	assert.Equal(t, uint8(255), opaque.FillColor().(color.NRGBA).A)

	assert.Nil(t, Style{}.FillColor())
	assert.Nil(t, Style{}.StrokeColor())
	assert.Equal(t, color.Black, Style{}.TextColor())
}

func TestRegistryLegendOrder(t *testing.T) {
	r, err := NewRegistry(
		Category{Name: "external", Label: "External Entity"},
		Category{Name: "process", Label: "Process"},
		Category{Name: "store", Label: "Data Store"},
	)
	require.NoError(t, err)

	entries, err := r.LegendEntriesFor("store", "external", "process")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Data Store", entries[0].Label)
	assert.Equal(t, "External Entity", entries[1].Label)
	assert.Equal(t, "process", entries[2].Category)

	assert.Equal(t, []string{"external", "process", "store"}, r.Names())
}

func TestRegistryErrors(t *testing.T) {
	_, err := NewRegistry(Category{Name: "a"}, Category{Name: "a"})
	assert.True(t, errors.Is(err, ErrDuplicateCategory))

	r, err := NewRegistry(Category{Name: "a"})
	require.NoError(t, err)
	_, err = r.LegendEntriesFor("a", "missing")
	assert.True(t, errors.Is(err, ErrUnknownCategory))

	c, ok := r.Category("a")
	require.True(t, ok)
	assert.Equal(t, "a", c.Label)

	assert.NotPanics(t, func() { r.MustLookup("a") })
	assert.Panics(t, func() { r.MustLookup("b") })

	var nilRegistry *Registry
	_, ok = nilRegistry.Lookup("a")
	assert.False(t, ok)
}
