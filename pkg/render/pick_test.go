package render

import (
	"testing"

	"github.com/pcbfab/panelview/pkg/les"
)

func TestPickPoint(t *testing.T) {
	near := &les.Point{Identifier: 1, X: 1, Y: 1, Layer: 1}
	far := &les.Point{Identifier: 2, X: 4, Y: 0, Layer: 1}
	hidden := &les.Point{Identifier: 3, X: 0, Y: 0, Layer: 2}

	doc := les.NewDocument()
	doc.Points = []*les.Point{far, hidden, near}

	tests := []struct {
		name   string
		f      Filters
		wx, wy float64
		radius float64
		want   *les.Point
	}{
		{
			name: "hidden layer skipped even when closest",
			wx:   0, wy: 0, radius: 10,
			f:    Filters{Layers: map[int]bool{1: true}},
			want: near,
		},
		{
			name: "between two visible picks the closer",
			wx:   3, wy: 0, radius: 10,
			f:    Filters{Layers: map[int]bool{1: true}},
			want: far,
		},
		{
			name: "nil layer map picks the hidden point",
			wx:   0, wy: 0, radius: 10,
			f:    Filters{},
			want: hidden,
		},
		{
			name: "radius cutoff is strict",
			wx:   5, wy: 0, radius: 1,
			f:    Filters{Layers: map[int]bool{1: true}},
			want: nil,
		},
		{
			name: "just inside the radius",
			wx:   4.5, wy: 0, radius: 1,
			f:    Filters{Layers: map[int]bool{1: true}},
			want: far,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PickPoint(doc, tt.f, tt.wx, tt.wy, tt.radius)
			if got != tt.want {
				t.Errorf("PickPoint(%v, %v) = %+v, want %+v", tt.wx, tt.wy, got, tt.want)
			}
		})
	}
}

func TestPickPointEmptyDocument(t *testing.T) {
	if got := PickPoint(les.NewDocument(), Filters{}, 0, 0, 100); got != nil {
		t.Errorf("PickPoint() on empty document = %+v, want nil", got)
	}
}
