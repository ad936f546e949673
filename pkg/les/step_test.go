package les

import "testing"

func TestDecodeStep(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Step
	}{
		{
			name:    "full record",
			content: "STEP:4:DX:100,50:10,20:I2",
			want:    Step{Amount: 4, Operations: "DX", OffsetX: 100, OffsetY: 50, DistanceX: 10, DistanceY: 20, Image: 2},
		},
		{
			name:    "empty operator chain",
			content: "STEP:2::0,0:5,5",
			want:    Step{Amount: 2, DistanceX: 5, DistanceY: 5, Image: 1},
		},
		{
			name:    "short record keeps defaults",
			content: "STEP:3",
			want:    Step{Image: 1},
		},
		{
			name:    "bad amount keeps zero",
			content: "STEP:x:D:1,2:3,4",
			want:    Step{Operations: "D", OffsetX: 1, OffsetY: 2, DistanceX: 3, DistanceY: 4, Image: 1},
		},
		{
			name:    "image marker without digits defaults to 1",
			content: "STEP:1::0,0:0,0:I",
			want:    Step{Amount: 1, Image: 1},
		},
		{
			name:    "single offset value ignored",
			content: "STEP:1::7:1,2:I3",
			want:    Step{Amount: 1, DistanceX: 1, DistanceY: 2, Image: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeStep(tt.content)
			tt.want.Source = tt.content
			if *got != tt.want {
				t.Errorf("DecodeStep(%q) = %+v, want %+v", tt.content, *got, tt.want)
			}
		})
	}
}

func TestStepScaleValues(t *testing.T) {
	st := DecodeStep("STEP:2:D:100,50:10,20:I1")
	st.ScaleValues(0.5)
	if st.OffsetX != 50 || st.OffsetY != 25 {
		t.Errorf("ScaleValues() offset = (%v, %v), want (50, 25)", st.OffsetX, st.OffsetY)
	}
	if st.DistanceX != 5 || st.DistanceY != 10 {
		t.Errorf("ScaleValues() distance = (%v, %v), want (5, 10)", st.DistanceX, st.DistanceY)
	}
}

func TestStepApplyTransformation(t *testing.T) {
	point := &Point{X: 3, Y: 4, Layer: 1, CountOfLayer: 2}

	tests := []struct {
		name      string
		step      Step
		index     int
		wantX     float64
		wantY     float64
		wantLayer int
	}{
		{
			name:  "offset only",
			step:  Step{OffsetX: 10, OffsetY: 20},
			wantX: 13, wantY: 24, wantLayer: 1,
		},
		{
			name:  "distance scales with repetition index",
			step:  Step{OffsetX: 10, DistanceX: 5, DistanceY: 1},
			index: 3,
			wantX: 28, wantY: 7, wantLayer: 1,
		},
		{
			name:  "rotate quarter turn",
			step:  Step{Operations: "D"},
			wantX: 4, wantY: -3, wantLayer: 1,
		},
		{
			name:  "vertical mirror flips y and layer",
			step:  Step{Operations: "X"},
			wantX: 3, wantY: -4, wantLayer: 2,
		},
		{
			name:  "horizontal mirror flips x and layer",
			step:  Step{Operations: "Y"},
			wantX: -3, wantY: 4, wantLayer: 2,
		},
		{
			name:  "double mirror restores y but not layer",
			step:  Step{Operations: "XX"},
			wantX: 3, wantY: 4, wantLayer: 2,
		},
		{
			name:  "rotate then mirror then offset",
			step:  Step{Operations: "DX", OffsetX: 100},
			wantX: 104, wantY: 3, wantLayer: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, layer := tt.step.ApplyTransformation(point, tt.index)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ApplyTransformation() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
			if layer != tt.wantLayer {
				t.Errorf("ApplyTransformation() layer = %d, want %d", layer, tt.wantLayer)
			}
			if point.X != 3 || point.Y != 4 || point.Layer != 1 {
				t.Errorf("ApplyTransformation() mutated the point: %+v", point)
			}
		})
	}
}

func TestStepApplyTransformationBottomLayer(t *testing.T) {
	point := &Point{X: 1, Y: 1, Layer: 4, CountOfLayer: 4}
	st := Step{Operations: "X"}
	if _, _, layer := st.ApplyTransformation(point, 0); layer != 1 {
		t.Errorf("ApplyTransformation() layer = %d, want bottom mirrored to 1", layer)
	}
}

func TestStepApplyTransformationNoLayerStack(t *testing.T) {
	point := &Point{X: 1, Y: 1, Layer: 1, CountOfLayer: 0}
	st := Step{Operations: "X"}
	if _, _, layer := st.ApplyTransformation(point, 0); layer != 1 {
		t.Errorf("ApplyTransformation() layer = %d, want unchanged without a layer stack", layer)
	}
}

func TestStepApplyToAngle(t *testing.T) {
	tests := []struct {
		name  string
		ops   string
		angle float64
		want  float64
	}{
		{"rotate adds 90", "D", 0, 90},
		{"rotate wraps", "D", 350, 80},
		{"vertical mirror negates", "X", 30, 330},
		{"horizontal mirror reflects", "Y", 30, 150},
		{"rotate then mirror", "DX", 0, 270},
		{"no ops normalizes", "", 720, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Step{Operations: tt.ops}
			if got := st.ApplyToAngle(tt.angle); got != tt.want {
				t.Errorf("ApplyToAngle(%v) with ops %q = %v, want %v", tt.angle, tt.ops, got, tt.want)
			}
		})
	}
}
