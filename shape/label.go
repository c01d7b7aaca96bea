package shape

import (
	"strings"

	"flowpaint/geometry"
)

// SplitLabel splits a label on newlines, the way labels are written in
// diagram definitions.
func SplitLabel(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// LineOffsets returns the vertical offset from the block center of each of n
// lines of height h. Line i sits at (n-1-2i)/2*h, so the first line is the
// highest and the offsets sum to zero.
func LineOffsets(n int, h float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(n-1-2*i) / 2 * h
	}
	return out
}

// LinePositions places each line of a label centered on anchor, in canvas
// units (y grows upwards).
func LinePositions(anchor geometry.Point, n int, h float64) []geometry.Point {
	offsets := LineOffsets(n, h)
	out := make([]geometry.Point, len(offsets))
	for i, dy := range offsets {
		out[i] = geometry.Pt(anchor.X, anchor.Y+dy)
	}
	return out
}
