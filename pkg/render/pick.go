package render

import (
	"math"

	"github.com/pcbfab/panelview/pkg/les"
)

// PickRadiusPx is the canonical pick radius in screen pixels. Callers
// divide by the camera zoom to get the world radius PickPoint expects.
const PickRadiusPx = 5.0

// PickPoint returns the filter-visible point nearest to the world position,
// or nil when none lies strictly within radius (world units, Euclidean).
func PickPoint(doc *les.Document, f Filters, wx, wy, radius float64) *les.Point {
	var best *les.Point
	bestDist := radius
	for _, p := range doc.Points {
		if !f.PointVisible(p) {
			continue
		}
		d := math.Hypot(p.X-wx, p.Y-wy)
		if d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}
