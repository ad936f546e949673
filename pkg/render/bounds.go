package render

import (
	"github.com/pcbfab/panelview/pkg/emap"
	"github.com/pcbfab/panelview/pkg/geom"
	"github.com/pcbfab/panelview/pkg/les"
)

// PointBounds returns the bounding box of everything the filters keep
// visible in a LES document: base points, their panelization repetitions
// when f.Steps is set, and the outline when f.Outline is set. Outline
// vertices also count when no point contributed, so outline-only files
// still produce a fit box. Stepped positions only count when the point is
// visible both before and after the transform; mirror ops can land a point
// on a hidden layer. ok is false when nothing contributed.
func PointBounds(doc *les.Document, f Filters) (geom.BoundingBox, bool) {
	box := geom.NewBoundingBox()
	pointSeen := false

	for _, p := range doc.Points {
		if !f.PointVisible(p) {
			continue
		}
		box.ExpandXY(p.X, p.Y)
		pointSeen = true
	}

	if f.Steps {
		for _, st := range doc.Steps {
			for _, p := range doc.Points {
				if p.Image != st.Image || !f.PointVisible(p) {
					continue
				}
				for i := 0; i < st.Amount; i++ {
					x, y, layer := st.ApplyTransformation(p, i)
					if !f.LayerVisible(layer) {
						continue
					}
					box.ExpandXY(x, y)
					pointSeen = true
				}
			}
		}
	}

	if f.Outline || !pointSeen {
		for _, poly := range doc.Outline {
			for _, v := range poly {
				box.Expand(v)
			}
		}
	}

	if box.IsEmpty() {
		return box, false
	}
	return box, true
}

// DrawingBounds returns the resolved world bounds of one eMAP step under
// the filter's edge/repeat/barcode toggles. An empty step name falls back
// to the drawing's start step.
func DrawingBounds(d *emap.Drawing, stepName string, f Filters) (geom.BoundingBox, bool) {
	if stepName == "" {
		stepName = d.StartStep
	}
	return d.StepBounds(stepName, emap.WalkOptions{
		Edges:    f.Edges,
		Repeats:  f.Repeats,
		Barcodes: f.Barcodes,
	})
}
