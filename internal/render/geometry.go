// Package render draws an assembled chart annotation as raster (PNG,
// JPEG) or vector (PDF) documents. Renderers are stateless: each call
// consumes one freshly assembled annotation.
package render

import "github.com/mrsinham/dentalforge/internal/chart"

// Point is a 2-D anchor in chart units. Each arch is drawn in its own
// box spanning x in [-8.5, 8.5] and y in [-1.5, 1.5].
type Point struct {
	X float64
	Y float64
}

// Anchor positions for every tooth, keyed by Universal number. The
// maxillary row runs 1..16 left to right; the mandibular row runs
// 32..17 at a half-unit horizontal offset. Bridge bars connect the X
// coordinates of their endpoint anchors, so these values are part of
// the output contract.
var (
	maxillaryAnchors = map[int]Point{
		1: {-7, 0}, 2: {-6, 0}, 3: {-5, 0}, 4: {-4, 0},
		5: {-3, 0}, 6: {-2, 0}, 7: {-1, 0}, 8: {0, 0},
		9: {1, 0}, 10: {2, 0}, 11: {3, 0}, 12: {4, 0},
		13: {5, 0}, 14: {6, 0}, 15: {7, 0}, 16: {8, 0},
	}
	mandibularAnchors = map[int]Point{
		32: {-7.5, 0}, 31: {-6.5, 0}, 30: {-5.5, 0}, 29: {-4.5, 0},
		28: {-3.5, 0}, 27: {-2.5, 0}, 26: {-1.5, 0}, 25: {-0.5, 0},
		24: {0.5, 0}, 23: {1.5, 0}, 22: {2.5, 0}, 21: {3.5, 0},
		20: {4.5, 0}, 19: {5.5, 0}, 18: {6.5, 0}, 17: {7.5, 0},
	}
)

// Anchors returns the tooth anchor table for one arch.
func Anchors(jaw chart.Jaw) map[int]Point {
	if jaw == chart.JawMandibular {
		return mandibularAnchors
	}
	return maxillaryAnchors
}

// Chart-unit bounds of one arch box.
const (
	archXMin = -8.5
	archXMax = 8.5
	archYMin = -1.5
	archYMax = 1.5
)

// teethOutline is the tooth silhouette polyline, relative to the
// anchor point.
var teethOutline = []Point{
	{-0.3, 0}, {-0.2, 0.5}, {0, 0.7}, {0.2, 0.5}, {0.3, 0}, {0, -0.2}, {-0.3, 0},
}
