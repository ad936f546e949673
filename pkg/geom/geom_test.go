package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// Test RotateTranslate composition
func TestRotateTranslate(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		angleRad   float64
		offX, offY float64
		wantX      float64
		wantY      float64
	}{
		{
			name: "identity",
			x:    3.5, y: -2.25,
			angleRad: 0, offX: 0, offY: 0,
			wantX: 3.5, wantY: -2.25,
		},
		{
			name: "pure translation",
			x:    1, y: 2,
			angleRad: 0, offX: 10, offY: -20,
			wantX: 11, wantY: -18,
		},
		{
			name: "quarter turn",
			x:    1, y: 0,
			angleRad: math.Pi / 2, offX: 0, offY: 0,
			wantX: 0, wantY: 1,
		},
		{
			name: "half turn with offset",
			x:    2, y: 3,
			angleRad: math.Pi, offX: 5, offY: 5,
			wantX: 3, wantY: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := RotateTranslate(tt.x, tt.y, tt.angleRad, tt.offX, tt.offY)
			if !almostEqual(gotX, tt.wantX) || !almostEqual(gotY, tt.wantY) {
				t.Errorf("RotateTranslate() = (%v, %v), want (%v, %v)", gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

// Test NormalizeDeg wrapping
func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		{720.25, 0.25},
	}

	for _, tt := range tests {
		got := NormalizeDeg(tt.in)
		if !almostEqual(got, tt.want) {
			t.Errorf("NormalizeDeg(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Test AngleDegMath in the screen-Y-down frame
func TestAngleDegMath(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		x, y   float64
		want   float64
	}{
		{name: "east", cx: 0, cy: 0, x: 1, y: 0, want: 0},
		{name: "up on screen", cx: 0, cy: 0, x: 0, y: -1, want: 90},
		{name: "west", cx: 0, cy: 0, x: -1, y: 0, want: 180},
		{name: "down on screen", cx: 0, cy: 0, x: 0, y: 1, want: 270},
		{name: "offset center", cx: 10, cy: 10, x: 11, y: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleDegMath(tt.cx, tt.cy, tt.x, tt.y)
			if !almostEqual(got, tt.want) {
				t.Errorf("AngleDegMath() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Test AngleInSweep containment, including the cw endpoint swap and wraparound
func TestAngleInSweep(t *testing.T) {
	tests := []struct {
		name   string
		a      float64
		a0, a1 float64
		dir    Direction
		want   bool
	}{
		{name: "inside ccw quarter", a: 45, a0: 0, a1: 90, dir: CCW, want: true},
		{name: "start boundary", a: 0, a0: 0, a1: 90, dir: CCW, want: true},
		{name: "end boundary", a: 90, a0: 0, a1: 90, dir: CCW, want: true},
		{name: "outside ccw quarter", a: 91, a0: 0, a1: 90, dir: CCW, want: false},
		{name: "cw swaps endpoints", a: 45, a0: 90, a1: 0, dir: CW, want: true},
		{name: "cw outside", a: 180, a0: 90, a1: 0, dir: CW, want: false},
		{name: "wrap through zero", a: 0, a0: 350, a1: 10, dir: CCW, want: true},
		{name: "wrap through zero outside", a: 180, a0: 350, a1: 10, dir: CCW, want: false},
		{name: "negative input normalized", a: -315, a0: 0, a1: 90, dir: CCW, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleInSweep(tt.a, tt.a0, tt.a1, tt.dir)
			if got != tt.want {
				t.Errorf("AngleInSweep(%v, %v, %v, %q) = %v, want %v", tt.a, tt.a0, tt.a1, tt.dir, got, tt.want)
			}
		})
	}
}

// Test ArcPolyline sampling
func TestArcPolyline(t *testing.T) {
	t.Run("ccw semicircle endpoints and winding", func(t *testing.T) {
		pts := ArcPolyline(0, 0, 10, 0, 180, CCW, 1.0)

		// Short arc on screen clamps to the 12-segment floor.
		if len(pts) != 13 {
			t.Fatalf("ArcPolyline() returned %d points, want 13", len(pts))
		}

		first, last := pts[0], pts[len(pts)-1]
		if !almostEqual(first.X, 10) || !almostEqual(first.Y, 0) {
			t.Errorf("first point = (%v, %v), want (10, 0)", first.X, first.Y)
		}
		if !almostEqual(last.X, -10) || !almostEqual(last.Y, 0) {
			t.Errorf("last point = (%v, %v), want (-10, 0)", last.X, last.Y)
		}

		// CCW goes through 90°, which is up (negative Y) on screen.
		mid := pts[len(pts)/2]
		if !almostEqual(mid.X, 0) || !almostEqual(mid.Y, -10) {
			t.Errorf("mid point = (%v, %v), want (0, -10)", mid.X, mid.Y)
		}
	})

	t.Run("cw semicircle winds the other way", func(t *testing.T) {
		pts := ArcPolyline(0, 0, 10, 0, 180, CW, 1.0)

		mid := pts[len(pts)/2]
		if !almostEqual(mid.X, 0) || !almostEqual(mid.Y, 10) {
			t.Errorf("mid point = (%v, %v), want (0, 10)", mid.X, mid.Y)
		}
	})

	t.Run("segment count caps at 512", func(t *testing.T) {
		pts := ArcPolyline(0, 0, 1000, 0, 359, CCW, 10.0)
		if len(pts) != 513 {
			t.Errorf("ArcPolyline() returned %d points, want 513", len(pts))
		}
	})

	t.Run("segment count scales with zoom", func(t *testing.T) {
		coarse := ArcPolyline(0, 0, 50, 0, 180, CCW, 1.0)
		fine := ArcPolyline(0, 0, 50, 0, 180, CCW, 4.0)
		if len(fine) <= len(coarse) {
			t.Errorf("expected more samples at higher zoom: coarse=%d fine=%d", len(coarse), len(fine))
		}
	})
}

// Test BoundingBox accumulation
func TestBoundingBox(t *testing.T) {
	t.Run("new box is empty", func(t *testing.T) {
		bb := NewBoundingBox()
		if !bb.IsEmpty() {
			t.Errorf("NewBoundingBox().IsEmpty() = false, want true")
		}
	})

	t.Run("expand accumulates extents", func(t *testing.T) {
		bb := NewBoundingBox()
		bb.ExpandXY(10, -5)
		bb.ExpandXY(-2, 7)

		if bb.IsEmpty() {
			t.Fatalf("box is empty after expansion")
		}
		if !almostEqual(bb.Min.X, -2) || !almostEqual(bb.Min.Y, -5) {
			t.Errorf("Min = (%v, %v), want (-2, -5)", bb.Min.X, bb.Min.Y)
		}
		if !almostEqual(bb.Max.X, 10) || !almostEqual(bb.Max.Y, 7) {
			t.Errorf("Max = (%v, %v), want (10, 7)", bb.Max.X, bb.Max.Y)
		}
		if !almostEqual(bb.Width(), 12) || !almostEqual(bb.Height(), 12) {
			t.Errorf("size = %v x %v, want 12 x 12", bb.Width(), bb.Height())
		}
		if c := bb.Center(); !almostEqual(c.X, 4) || !almostEqual(c.Y, 1) {
			t.Errorf("Center() = (%v, %v), want (4, 1)", c.X, c.Y)
		}
	})

	t.Run("expand box ignores empty other", func(t *testing.T) {
		bb := NewBoundingBox()
		bb.ExpandXY(1, 1)
		before := bb
		bb.ExpandBox(NewBoundingBox())
		if bb != before {
			t.Errorf("ExpandBox(empty) changed the box: %+v -> %+v", before, bb)
		}
	})

	t.Run("contains", func(t *testing.T) {
		bb := NewBoundingBox()
		bb.ExpandXY(0, 0)
		bb.ExpandXY(10, 10)
		if !bb.Contains(Position{X: 5, Y: 5}) {
			t.Errorf("Contains((5,5)) = false, want true")
		}
		if bb.Contains(Position{X: 11, Y: 5}) {
			t.Errorf("Contains((11,5)) = true, want false")
		}
	})
}
