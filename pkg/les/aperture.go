package les

import "strings"

// ApertureMode identifies the drawn shape of an aperture.
type ApertureMode int

const (
	ModeRound   ApertureMode = iota // T: circle, radius
	ModeRect                        // O: width x height, rotated by angle
	ModeAnnular                     // K: ring, inner/outer radius
	ModeSpecial                     // U: special, fields unhandled
	ModeTooling                     // F: tooling hole
)

// String returns the mode name used in listings.
func (m ApertureMode) String() string {
	switch m {
	case ModeRound:
		return "round"
	case ModeRect:
		return "rect"
	case ModeAnnular:
		return "annular"
	case ModeSpecial:
		return "special"
	case ModeTooling:
		return "tooling"
	}
	return "unknown"
}

// apertureModeFor maps a descriptor code letter to its mode. Unknown codes
// fall back to round.
func apertureModeFor(code byte) ApertureMode {
	switch code {
	case 'T':
		return ModeRound
	case 'O':
		return ModeRect
	case 'K':
		return ModeAnnular
	case 'U':
		return ModeSpecial
	case 'F':
		return ModeTooling
	}
	return ModeRound
}

// Aperture is a drawing tool definition referenced by index from points.
// Linear fields are in millimeters once the document scale has been applied;
// Angle stays in degrees. Apertures are shared by reference: many points may
// point at the same instance.
type Aperture struct {
	Index       int
	Mode        ApertureMode
	Radius      float64
	InnerRadius float64
	OuterRadius float64
	Width       float64
	Height      float64
	Angle       float64
}

// NewAperture creates an aperture with the default shape: round, radius 10.
func NewAperture() *Aperture {
	return &Aperture{Mode: ModeRound, Radius: 10.0}
}

// DecodeAperture parses a descriptor like "T3:20" or "O5:4.0:2.0:45".
// The first character selects the shape; shape fields follow positionally in
// colon-separated segments. A field that fails to decode keeps its default
// while the remaining fields still apply.
func DecodeAperture(content string) *Aperture {
	ap := NewAperture()
	if content == "" {
		return ap
	}
	ap.Mode = apertureModeFor(content[0])

	parts := strings.Split(content, ":")
	if len(parts[0]) > 1 {
		if v, ok := intField(parts[0][1:]); ok {
			ap.Index = v
		}
	}

	switch ap.Mode {
	case ModeRound:
		if len(parts) > 1 {
			if v, ok := floatField(parts[1]); ok {
				ap.Radius = v / 2.0
			}
		}
	case ModeRect:
		if len(parts) >= 3 {
			if v, ok := floatField(parts[1]); ok {
				ap.Width = v
			}
			if v, ok := floatField(parts[2]); ok {
				ap.Height = v
			}
		}
		if len(parts) >= 4 {
			if v, ok := floatField(parts[3]); ok {
				ap.Angle = v
			}
		}
	case ModeAnnular:
		if len(parts) >= 3 {
			if v, ok := floatField(parts[1]); ok {
				ap.InnerRadius = v / 2.0
			}
			if v, ok := floatField(parts[2]); ok {
				ap.OuterRadius = v / 2.0
			}
		}
	}
	return ap
}

// ScaleValues multiplies every linear field by s. Angle is unchanged.
func (ap *Aperture) ScaleValues(s float64) {
	ap.Radius *= s
	ap.InnerRadius *= s
	ap.OuterRadius *= s
	ap.Width *= s
	ap.Height *= s
}

// apertureByIndex returns the first aperture whose index matches, or nil.
func apertureByIndex(apertures []*Aperture, index int) *Aperture {
	for _, ap := range apertures {
		if ap.Index == index {
			return ap
		}
	}
	return nil
}
