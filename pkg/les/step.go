package les

import (
	"strings"

	"github.com/pcbfab/panelview/pkg/geom"
)

// Step is a panelization repetition rule: repeat the points of one image
// Amount times, transformed by the operator chain and stepped by the
// distance vector. Operator codes, applied left to right:
//
//	D  rotate 90 degrees
//	X  mirror across the vertical axis (flips the layer stack)
//	Y  mirror across the horizontal axis (flips the layer stack)
type Step struct {
	Amount     int
	Operations string
	OffsetX    float64
	OffsetY    float64
	DistanceX  float64
	DistanceY  float64
	Image      int
	Source     string // raw line, shown as the step tooltip
}

// DecodeStep parses a STEP:<amount>:<ops>:<offx>,<offy>:<distx>,<disty>:I<image>
// record. Records with fewer than five segments keep every default; numeric
// fields that fail to decode keep theirs.
func DecodeStep(content string) *Step {
	st := &Step{Image: 1, Source: content}
	parts := strings.Split(content, ":")
	if len(parts) < 5 {
		return st
	}
	if v, ok := intField(parts[1]); ok {
		st.Amount = v
	}
	st.Operations = parts[2]
	if off := strings.Split(parts[3], ","); len(off) >= 2 {
		if v, ok := floatField(off[0]); ok {
			st.OffsetX = v
		}
		if v, ok := floatField(off[1]); ok {
			st.OffsetY = v
		}
	}
	if dist := strings.Split(parts[4], ","); len(dist) >= 2 {
		if v, ok := floatField(dist[0]); ok {
			st.DistanceX = v
		}
		if v, ok := floatField(dist[1]); ok {
			st.DistanceY = v
		}
	}
	if len(parts) > 5 && strings.Contains(parts[5], "I") {
		if v, ok := intField(strings.ReplaceAll(parts[5], "I", "")); ok {
			st.Image = v
		} else {
			st.Image = 1
		}
	}
	return st
}

// ScaleValues multiplies the offset and distance vectors by s.
func (st *Step) ScaleValues(s float64) {
	st.OffsetX *= s
	st.OffsetY *= s
	st.DistanceX *= s
	st.DistanceY *= s
}

// ApplyTransformation returns the position and layer of point p under
// repetition index i: the operator chain reflects/rotates the point's
// position, then the offset plus i times the distance vector is added.
// Mirror ops recompute the layer from the point's stored layer and layer
// count, so stacked mirrors do not cancel out. Points without a layer stack
// (CountOfLayer < 1) keep their layer through mirrors. Pure function: p is
// never mutated.
func (st *Step) ApplyTransformation(p *Point, i int) (float64, float64, int) {
	x, y := p.X, p.Y
	layer := p.Layer
	for _, op := range st.Operations {
		switch op {
		case 'D':
			x, y = y, -x
		case 'X':
			y = -y
			if p.CountOfLayer >= 1 {
				layer = (1 - p.Layer) + p.CountOfLayer
			}
		case 'Y':
			x = -x
			if p.CountOfLayer >= 1 {
				layer = (1 - p.Layer) + p.CountOfLayer
			}
		}
	}
	x += st.OffsetX + float64(i)*st.DistanceX
	y += st.OffsetY + float64(i)*st.DistanceY
	return x, y, layer
}

// ApplyToAngle returns a rectangular aperture's drawing angle after the
// operator chain, in degrees within [0, 360). Same operator order as
// ApplyTransformation.
func (st *Step) ApplyToAngle(angle float64) float64 {
	a := geom.NormalizeDeg(angle)
	for _, op := range st.Operations {
		switch op {
		case 'D':
			a = geom.NormalizeDeg(a + 90.0)
		case 'X':
			a = geom.NormalizeDeg(360.0 - a)
		case 'Y':
			a = geom.NormalizeDeg(180.0 - a)
		}
	}
	return a
}
