// Package emap parses eMAP XML panel drawings into a step tree and resolves
// that tree into absolute world coordinates. A drawing is a set of named
// steps; each step carries its own edges, barcode layers, and repeat
// references that place other steps inside it with an offset and rotation.
// Resolution walks the repeat graph recursively, composing frames with the
// geometry kernel, and the same walk backs both drawing and bounds so a fit
// computed from bounds always contains what a draw pass emits.
package emap

// Edge is one outline element of a step, in the step's local frame.
// Type selects the variant: a line uses the start/end points, an arc also
// uses the center, radius, and sweep direction. A radius of 0 means the
// radius is derived from the start to center distance at resolve time.
type Edge struct {
	ID        string
	Type      string // "line" or "arc"
	XS, YS    float64
	XE, YE    float64
	XC, YC    float64
	Radius    float64
	Direction string // file sweep convention, "cw" or "ccw"
}

// Repeat places the named step inside its parent at an offset, rotated by
// Angle degrees. The target is looked up by name at walk time; a name with
// no matching step is skipped.
type Repeat struct {
	ID     string
	PosNum string
	Step   string
	X, Y   float64
	Angle  float64
	Number string
}

// Barcode is a label box anchored in the step's local frame. The box size
// stays axis aligned when the frame rotates; only the anchor moves.
type Barcode struct {
	Num       string
	LayerCode string
	LayerFace string
	Content   string
	Polarity  string
	ID        string
	X, Y      float64
	Width     float64
	Height    float64
}

// Layer groups the barcodes of one physical layer.
type Layer struct {
	Name     string
	Barcodes []*Barcode
}

// Step is a named placement frame. Steps reference each other only by name
// through repeats, never by pointer, so a drawing's step set stays acyclic
// at the data level even when the reference graph is not.
type Step struct {
	Name   string
	Type   string // panel, set, pcs, kb, edit; selects the display color
	X, Y   float64
	Width  float64
	Height float64

	Edges   []*Edge
	Repeats []*Repeat
	Layers  []*Layer
}

// Drawing is a fully parsed eMAP file.
type Drawing struct {
	FilePath  string
	Job       string
	Width     float64
	Height    float64
	StartStep string // declared start, else the first step in document order
	Steps     map[string]*Step
}
