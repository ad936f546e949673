// Package geom provides the 2D math shared by the LES and eMAP models:
// rotate+translate frame composition, angle and sweep helpers, and
// zoom-adaptive arc sampling. All coordinates are in millimeters.
// The sign conventions match a screen coordinate system where Y increases
// downward; they must stay identical between the drawing walk and the
// bounds walk or fit-to-view drifts from what is drawn.
package geom

import "math"

// Direction of an angular sweep, in the math convention (0° = +X axis,
// counter-clockwise positive).
type Direction string

const (
	CW  Direction = "cw"
	CCW Direction = "ccw"
)

// sweepEpsilon absorbs rounding at sweep boundaries so an arc's own
// endpoints always count as inside its sweep.
const sweepEpsilon = 1e-9

// RotateTranslate rotates (x, y) by angleRad around the origin and then
// translates by (offX, offY). Callers composing nested step frames negate
// their accumulated angle before passing it in; that sign convention keeps
// rotation visually clockwise on a screen-Y-down canvas.
func RotateTranslate(x, y, angleRad, offX, offY float64) (float64, float64) {
	cos := math.Cos(angleRad)
	sin := math.Sin(angleRad)
	xr := x*cos - y*sin + offX
	yr := y*cos + x*sin + offY
	return xr, yr
}

// NormalizeDeg wraps an angle in degrees into [0, 360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360.0)
	if a < 0 {
		a += 360.0
	}
	return a
}

// AngleDegMath returns the angle of the vector from (cx, cy) to (x, y) in
// degrees within [0, 360). Y is inverted so that 90° points up on a
// screen-Y-down frame.
func AngleDegMath(cx, cy, x, y float64) float64 {
	return NormalizeDeg(math.Atan2(cy-y, x-cx) * 180.0 / math.Pi)
}

// AngleInSweep reports whether angle a lies on the sweep from a0 to a1.
// The sweep always runs counter-clockwise; a clockwise direction swaps the
// endpoints first. All angles are degrees.
func AngleInSweep(a, a0, a1 float64, dir Direction) bool {
	a = NormalizeDeg(a)
	a0 = NormalizeDeg(a0)
	a1 = NormalizeDeg(a1)
	if dir == CW {
		a0, a1 = a1, a0
	}
	span := NormalizeDeg(a1 - a0)
	rel := NormalizeDeg(a - a0)
	return rel <= span+sweepEpsilon
}

// ArcPolyline samples the arc centered at (cx, cy) with radius r from
// startDeg to endDeg in the given direction. The segment count follows the
// on-screen arc length at the given zoom (one segment per ~3 pixels,
// clamped to [12, 512]) so smoothness adapts to magnification. The sweep
// delta is signed: positive counter-clockwise, negative clockwise. Sample Y
// is cy - r·sin(a), matching the screen-Y-down frame.
func ArcPolyline(cx, cy, r, startDeg, endDeg float64, dir Direction, zoom float64) []Position {
	var delta float64
	if dir == CCW {
		delta = NormalizeDeg(endDeg - startDeg)
	} else {
		delta = -NormalizeDeg(startDeg - endDeg)
	}

	arcLenPx := math.Abs(delta*math.Pi/180.0) * math.Max(r*zoom, 1.0)
	segments := int(arcLenPx / 3.0)
	if segments < 12 {
		segments = 12
	}
	if segments > 512 {
		segments = 512
	}

	step := delta * math.Pi / 180.0 / float64(segments)
	start := startDeg * math.Pi / 180.0
	pts := make([]Position, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := start + step*float64(i)
		pts = append(pts, Position{X: cx + r*math.Cos(a), Y: cy - r*math.Sin(a)})
	}
	return pts
}
