// Package les parses LES files, the line-oriented legacy format describing
// PCB drill/test points, apertures, nets, panelization steps, and board
// outlines. Records are decoded by scanning for positional markers inside
// cleaned token strings; malformed fields keep their defaults and never
// abort the surrounding parse. All coordinates and aperture dimensions are
// converted to millimeters exactly once, as each line is decoded.
package les

import (
	"math"

	"github.com/pcbfab/panelview/pkg/geom"
)

// Document is a fully parsed LES file.
type Document struct {
	Test         string  // test program name from the #ATFH header
	CountOfLayer int     // number of board layers; layer 1 = top
	Unit         string  // raw unit name from the UNIT directive (INCH, MM, ...)
	Scale        float64 // file units to millimeters, applied during parse

	Apertures []*Aperture
	Nets      []*Net
	Points    []*Point
	Steps     []*Step

	// Outline holds the board/panel boundary polylines. A polyline spans
	// consecutive comma-terminated K lines; the first line without a
	// trailing comma closes it.
	Outline [][]geom.Position

	// Images maps image id to the running bounds of the points assigned to
	// it. Image 1 exists from the start; other ids appear as net headers and
	// points reference them. Id 0 (global tooling) is never tracked here.
	Images map[int]*ImageBounds
}

// NewDocument creates an empty document with scale 1.0 and image 1 present.
func NewDocument() *Document {
	return &Document{
		Scale:  1.0,
		Images: map[int]*ImageBounds{1: NewImageBounds()},
	}
}

// EnsureImage returns the bounds record for an image id, creating it on
// first reference. Ids below 1 are not tracked and return nil.
func (d *Document) EnsureImage(id int) *ImageBounds {
	if id < 1 {
		return nil
	}
	ib, ok := d.Images[id]
	if !ok {
		ib = NewImageBounds()
		d.Images[id] = ib
	}
	return ib
}

// ImageBounds is the running bounding box of the points assigned to one
// image id.
type ImageBounds struct {
	Box geom.BoundingBox
}

// NewImageBounds creates an empty image bounds record.
func NewImageBounds() *ImageBounds {
	return &ImageBounds{Box: geom.NewBoundingBox()}
}

// Expand grows the bounds to include the point's position.
func (ib *ImageBounds) Expand(p *Point) {
	ib.Box.ExpandXY(p.X, p.Y)
}

// ViewWidth returns the image width for view sizing. The viewer guarantees
// a minimum canvas of 100 mm per image, so empty or narrow images report 100.
func (ib *ImageBounds) ViewWidth() float64 {
	if ib.Box.IsEmpty() {
		return 100.0
	}
	return math.Max(ib.Box.Width(), 100.0)
}

// ViewHeight returns the image height for view sizing, floored at 100 mm.
func (ib *ImageBounds) ViewHeight() float64 {
	if ib.Box.IsEmpty() {
		return 100.0
	}
	return math.Max(ib.Box.Height(), 100.0)
}
