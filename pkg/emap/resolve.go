package emap

import (
	"math"
	"strings"

	"github.com/pcbfab/panelview/pkg/geom"
)

// maxRepeatDepth bounds recursion through repeat references so cyclic or
// degenerate repeat graphs terminate instead of descending forever.
const maxRepeatDepth = 50

// WalkOptions gates which element classes a walk visits. The zero value
// visits nothing.
type WalkOptions struct {
	Edges    bool
	Barcodes bool
	Repeats  bool // descend into repeat references
}

// ResolvedLine is a line edge in absolute world coordinates.
type ResolvedLine struct {
	Edge   *Edge
	X1, Y1 float64
	X2, Y2 float64
}

// ResolvedArc is an arc edge in absolute world coordinates: transformed
// center and endpoints, the radius recomputed from the transformed start to
// center distance, and math-convention angles and sweep direction ready for
// the geometry kernel.
type ResolvedArc struct {
	Edge      *Edge
	CX, CY    float64
	Radius    float64
	StartDeg  float64
	EndDeg    float64
	Direction geom.Direction
	X1, Y1    float64
	X2, Y2    float64
}

// Polyline samples the arc for display at the given zoom.
func (a ResolvedArc) Polyline(zoom float64) []geom.Position {
	return geom.ArcPolyline(a.CX, a.CY, a.Radius, a.StartDeg, a.EndDeg, a.Direction, zoom)
}

// ResolvedBarcode is a barcode label box with its anchor transformed into
// world coordinates. The box itself stays axis aligned.
type ResolvedBarcode struct {
	Barcode *Barcode
	X, Y    float64
}

// Visitor receives resolved primitives during a walk, in draw order. Nil
// callbacks are skipped. Each callback gets the step the primitive belongs
// to and the repeat nesting depth, 0 for the root step; the renderer keys
// its palette off both.
type Visitor struct {
	Line    func(l ResolvedLine, st *Step, depth int)
	Arc     func(a ResolvedArc, st *Step, depth int)
	Barcode func(b ResolvedBarcode, st *Step, depth int)
}

// WalkStep resolves the named step's tree into world-frame primitives and
// feeds them to the visitor. The root step's declared position is negated
// so its local origin lands at the world origin before any repeats apply.
// Returns false when the drawing has no step with that name.
func (d *Drawing) WalkStep(name string, opts WalkOptions, v Visitor) bool {
	st, ok := d.Steps[name]
	if !ok {
		return false
	}
	d.walk(st, 0, -st.X, -st.Y, 0, opts, v)
	return true
}

// walk visits one step at an accumulated rotation (degrees) and world
// offset, then recurses through its repeats. The angle sign flips when
// converting to radians so rotation runs clockwise on a screen-Y-down
// canvas, matching RotateTranslate.
func (d *Drawing) walk(st *Step, baseAngleDeg, offX, offY float64, depth int, opts WalkOptions, v Visitor) {
	if depth > maxRepeatDepth {
		return
	}
	angleRad := -baseAngleDeg * math.Pi / 180.0

	if opts.Edges {
		for _, e := range st.Edges {
			switch e.Type {
			case "line":
				if v.Line == nil {
					continue
				}
				x1, y1 := geom.RotateTranslate(e.XS, e.YS, angleRad, offX, offY)
				x2, y2 := geom.RotateTranslate(e.XE, e.YE, angleRad, offX, offY)
				v.Line(ResolvedLine{Edge: e, X1: x1, Y1: y1, X2: x2, Y2: y2}, st, depth)
			case "arc":
				if v.Arc == nil {
					continue
				}
				v.Arc(resolveArc(e, angleRad, offX, offY), st, depth)
			}
		}
	}

	if opts.Barcodes {
		for _, layer := range st.Layers {
			for _, bc := range layer.Barcodes {
				if v.Barcode == nil {
					continue
				}
				x, y := geom.RotateTranslate(bc.X, bc.Y, angleRad, offX, offY)
				v.Barcode(ResolvedBarcode{Barcode: bc, X: x, Y: y}, st, depth)
			}
		}
	}

	if opts.Repeats {
		for _, rpt := range st.Repeats {
			sub, ok := d.Steps[rpt.Step]
			if !ok {
				continue
			}
			rx, ry := geom.RotateTranslate(rpt.X, rpt.Y, angleRad, offX, offY)
			d.walk(sub, baseAngleDeg+rpt.Angle, rx, ry, depth+1, opts, v)
		}
	}
}

// resolveArc transforms an arc edge into the current frame. The radius is
// recomputed from the transformed start to center distance; a zero distance
// falls back to the declared radius.
func resolveArc(e *Edge, angleRad, offX, offY float64) ResolvedArc {
	x1, y1 := geom.RotateTranslate(e.XS, e.YS, angleRad, offX, offY)
	x2, y2 := geom.RotateTranslate(e.XE, e.YE, angleRad, offX, offY)
	cx, cy := geom.RotateTranslate(e.XC, e.YC, angleRad, offX, offY)
	r := math.Hypot(x1-cx, y1-cy)
	if r == 0 {
		r = math.Max(e.Radius, 0)
	}
	return ResolvedArc{
		Edge:      e,
		CX:        cx,
		CY:        cy,
		Radius:    r,
		StartDeg:  geom.AngleDegMath(cx, cy, x1, y1),
		EndDeg:    geom.AngleDegMath(cx, cy, x2, y2),
		Direction: mathDirection(e.Direction),
		X1:        x1,
		Y1:        y1,
		X2:        x2,
		Y2:        y2,
	}
}

// mathDirection converts the file's sweep convention to the math convention
// used by the geometry kernel. The file stores the on-screen sense, which
// is mirrored on a Y-down canvas, so file cw is math ccw.
func mathDirection(d string) geom.Direction {
	if strings.ToLower(d) == "cw" {
		return geom.CCW
	}
	return geom.CW
}

// StepBounds computes the axis-aligned world bounds of the named step using
// the same walk that produces drawable primitives, so a fit based on these
// bounds contains exactly what a draw pass emits. ok is false when the step
// is missing or nothing contributed under the given options.
func (d *Drawing) StepBounds(name string, opts WalkOptions) (geom.BoundingBox, bool) {
	box := geom.NewBoundingBox()
	found := d.WalkStep(name, opts, Visitor{
		Line: func(l ResolvedLine, _ *Step, _ int) {
			box.ExpandXY(l.X1, l.Y1)
			box.ExpandXY(l.X2, l.Y2)
		},
		Arc: func(a ResolvedArc, _ *Step, _ int) {
			box.ExpandBox(arcBounds(a))
		},
		Barcode: func(b ResolvedBarcode, _ *Step, _ int) {
			box.ExpandXY(b.X, b.Y)
			box.ExpandXY(b.X+b.Barcode.Width, b.Y+b.Barcode.Height)
		},
	})
	if !found || box.IsEmpty() {
		return box, false
	}
	return box, true
}

// arcBounds unions the arc's endpoints with the positions at the cardinal
// angles its sweep covers. An arc's extrema sit at cardinal directions, not
// necessarily at its endpoints.
func arcBounds(a ResolvedArc) geom.BoundingBox {
	box := geom.NewBoundingBox()
	for _, ang := range []float64{a.StartDeg, a.EndDeg} {
		x, y := arcPoint(a.CX, a.CY, a.Radius, ang)
		box.ExpandXY(x, y)
	}
	for _, ang := range []float64{0, 90, 180, 270} {
		if geom.AngleInSweep(ang, a.StartDeg, a.EndDeg, a.Direction) {
			x, y := arcPoint(a.CX, a.CY, a.Radius, ang)
			box.ExpandXY(x, y)
		}
	}
	return box
}

func arcPoint(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180.0
	return cx + r*math.Cos(rad), cy - r*math.Sin(rad)
}
