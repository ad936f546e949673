package render

import (
	"github.com/pcbfab/panelview/pkg/les"
)

// Layer display modes.
const (
	ModeTop    = "top"
	ModeBottom = "bottom"
	ModeBoth   = "both"
)

// Filters selects what the view surface considers visible. The zero value
// shows base points only: a nil Layers map disables layer filtering
// entirely, and every toggle defaults to off.
type Filters struct {
	// Layers maps layer number to visibility. Keys missing from a non-nil
	// map count as hidden.
	Layers map[int]bool

	Steps   bool // include panelization repetitions (LES)
	Outline bool // include board outline polylines (LES)

	Edges    bool // include step outline edges (eMAP)
	Repeats  bool // descend into step repeats (eMAP)
	Barcodes bool // include barcode boxes (eMAP)
}

// LayerVisible reports whether a layer number passes the layer filter.
func (f Filters) LayerVisible(layer int) bool {
	if f.Layers == nil {
		return true
	}
	return f.Layers[layer]
}

// PointVisible reports whether the point's layer passes the layer filter.
func (f Filters) PointVisible(p *les.Point) bool {
	return f.LayerVisible(p.Layer)
}

// LayersForMode builds the initial layer visibility map for a display mode.
// Keys are the distinct layers observed on the document's points; the
// bottom layer is CountOfLayer, or the largest observed layer when the file
// never declared a count. ModeTop shows only layer 1, ModeBottom only the
// bottom layer, and any other mode shows both. Inner layers start hidden in
// every mode; the shell toggles them individually.
func LayersForMode(doc *les.Document, mode string) map[int]bool {
	bottom := doc.CountOfLayer
	if bottom == 0 {
		bottom = 1
	}
	seen := make(map[int]bool, 4)
	for _, p := range doc.Points {
		seen[p.Layer] = true
		if doc.CountOfLayer == 0 && p.Layer > bottom {
			bottom = p.Layer
		}
	}

	layers := make(map[int]bool, len(seen))
	for layer := range seen {
		switch mode {
		case ModeTop:
			layers[layer] = layer == 1
		case ModeBottom:
			layers[layer] = layer == bottom
		default:
			layers[layer] = layer == 1 || layer == bottom
		}
	}
	return layers
}
