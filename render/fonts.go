package render

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

type variant int

const (
	regular variant = iota
	bold
	italic
	mono
)

type fontSet [4]*truetype.Font

var (
	fontsOnce sync.Once
	fonts     fontSet
	fontsErr  error
)

// loadFonts parses the embedded Go fonts once per process. Parsed fonts are
// read-only and shared; faces are not and live in a per-render faceCache.
func loadFonts() (*fontSet, error) {
	fontsOnce.Do(func() {
		for v, data := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gomono.TTF} {
			f, err := truetype.Parse(data)
			if err != nil {
				fontsErr = fmt.Errorf("failed to parse font: %v", err)
				return
			}
			fonts[v] = f
		}
	})
	return &fonts, fontsErr
}

type faceKey struct {
	v    variant
	size float64
}

// faceCache hands out faces at one DPI. It must not be shared between
// goroutines.
type faceCache struct {
	fonts *fontSet
	dpi   float64
	faces map[faceKey]font.Face
}

func newFaceCache(fs *fontSet, dpi float64) *faceCache {
	return &faceCache{fonts: fs, dpi: dpi, faces: make(map[faceKey]font.Face)}
}

func (c *faceCache) face(v variant, size float64) font.Face {
	k := faceKey{v: v, size: size}
	if f, ok := c.faces[k]; ok {
		return f
	}
	f := truetype.NewFace(c.fonts[v], &truetype.Options{
		Size:    size,
		DPI:     c.dpi,
		Hinting: font.HintingFull,
	})
	c.faces[k] = f
	return f
}

func (c *faceCache) close() {
	for _, f := range c.faces {
		f.Close()
	}
}

// textWidth returns the advance of s in pixels.
func textWidth(face font.Face, s string) float64 {
	return fixedToFloat(font.MeasureString(face, s))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func pickVariant(isBold, isItalic, isMono bool) variant {
	switch {
	case isMono:
		return mono
	case isBold:
		return bold
	case isItalic:
		return italic
	default:
		return regular
	}
}
