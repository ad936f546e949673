package les

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// PointType classifies what a test point contacts.
type PointType int

const (
	TypeNone   PointType = iota // unknown or unclassified
	TypeSignal                  // S
	TypeDrill                   // D
	TypeBridge                  // B
	TypePower                   // P
	TypeEdge                    // E
)

// String returns the type name used in listings.
func (t PointType) String() string {
	switch t {
	case TypeSignal:
		return "signal"
	case TypeDrill:
		return "drill"
	case TypeBridge:
		return "bridge"
	case TypePower:
		return "power"
	case TypeEdge:
		return "edge"
	}
	return "none"
}

// pointTypeFor maps a type code character to its type. Unknown codes map to
// TypeNone.
func pointTypeFor(code byte) PointType {
	switch code {
	case 'S':
		return TypeSignal
	case 'D':
		return TypeDrill
	case 'B':
		return TypeBridge
	case 'P':
		return TypePower
	case 'E':
		return TypeEdge
	}
	return TypeNone
}

// PointStyle tags the construction path of a point. Tooling holes come in
// two flavors depending on whether their line appeared before (global) or
// after (local) the first STEP line.
type PointStyle int

const (
	StyleRegular PointStyle = iota
	StyleGlobal
	StyleLocal
)

// String returns the style name used in listings.
func (s PointStyle) String() string {
	switch s {
	case StyleGlobal:
		return "global"
	case StyleLocal:
		return "local"
	}
	return "regular"
}

// pointCleaner strips the punctuation and continuation noise LES writers
// sprinkle into point records, leaving only the marker text the decoder
// scans. The asterisk is part of the noise here; the test flag reads it from
// the raw line instead.
var pointCleaner = strings.NewReplacer(
	"[", "", "]", "", "*", "", "/", "",
	"~", "", "&M", "", "&S", "", " ", "", ",", "",
)

// Point is a single drill/test point record.
type Point struct {
	Source  string // raw line as it appeared in the file
	Content string // cleaned marker text the decoder scanned

	Identifier   int
	X            float64 // mm once the document scale is applied
	Y            float64
	Type         PointType
	Style        PointStyle
	Aperture     *Aperture // shared reference into Document.Apertures on lookup hit
	Net          *Net      // shared reference; tooling holes get a private empty net
	Layer        int       // 1-based; 1 = top, CountOfLayer = bottom
	CountOfLayer int       // layer count at the time the point was parsed
	Image        int       // 0 = global tooling, otherwise a per-panel image id
	LogicMode    bool
	IsEnable     bool // layer is top or bottom
	IsTest       bool // raw line carried no asterisk
	Fill         color.RGBA
	Background   color.RGBA

	// PanelImageName is the display label assigned by the naming pass after
	// the whole file has been read.
	PanelImageName string
}

// DecodePoint parses one point line. The caller selects the construction
// path through style: StyleGlobal and StyleLocal decode a tooling hole,
// anything else a regular point using the supplied current net (nil falls
// back to an empty default net). countOfLayer is the layer count in effect
// when the line was read. Positions are left in raw file units; the parser
// applies the document scale afterwards.
func DecodePoint(line string, countOfLayer int, apertures []*Aperture, net *Net, style PointStyle) *Point {
	p := &Point{
		Source:       line,
		Style:        style,
		Aperture:     NewAperture(),
		Net:          net,
		Layer:        1,
		CountOfLayer: countOfLayer,
		Image:        1,
		IsEnable:     true,
		IsTest:       true,
		Fill:         colornames.Gold,
		Background:   colornames.Darkgreen,
	}
	if p.Net == nil {
		p.Net = NewNet()
	}
	if line == "" {
		return p
	}
	if style == StyleGlobal || style == StyleLocal {
		p.decodeToolingHole(line, apertures, style)
	} else {
		p.decodeRegular(line, countOfLayer, apertures)
	}
	return p
}

// decodeToolingHole scans an F,X...Y...T...I... record. Tooling holes are
// never test points, sit on layer 1, and draw in violet regardless of the
// layer palette.
func (p *Point) decodeToolingHole(line string, apertures []*Aperture, style PointStyle) {
	lead, _, _ := strings.Cut(line, ",")
	if strings.TrimSpace(lead) == "F" {
		p.Aperture.Mode = ModeTooling
	} else {
		p.Aperture.Mode = ModeAnnular
	}

	clean := pointCleaner.Replace(line)
	iParts := strings.Split(clean, "I")
	p.Content = iParts[0]
	p.Style = style
	switch {
	case style == StyleGlobal:
		p.Image = 0
	case len(iParts) > 1 && isDigits(iParts[1]):
		p.Image, _ = intField(iParts[1])
	default:
		p.Image = 1
	}

	p.Net = NewNet()
	p.IsTest = false
	p.IsEnable = false
	p.Layer = 1
	p.Type = TypeNone

	xi := strings.IndexByte(p.Content, 'X')
	yi := strings.IndexByte(p.Content, 'Y')
	if xi < 0 || yi < 0 {
		p.X, p.Y = 0, 0
		p.Aperture.Radius = 10.0
	} else {
		if xi+1 <= yi {
			if v, ok := floatField(p.Content[xi+1 : yi]); ok {
				p.X = v
			}
		}
		yStart := yi + 1
		if tPos := indexFrom(p.Content, 'T', yStart); tPos > 0 {
			if v, ok := floatField(p.Content[yStart:tPos]); ok {
				p.Y = v
			}
			if idx, ok := intField(p.Content[tPos+1:]); ok {
				if ap := apertureByIndex(apertures, idx); ap != nil {
					if p.Aperture.Mode == ModeTooling {
						p.Aperture.Radius = ap.Radius
					} else if ap.OuterRadius != 0 {
						p.Aperture.Radius = ap.OuterRadius
					} else {
						p.Aperture.Radius = ap.Radius
					}
				}
			}
		} else {
			if v, ok := floatField(p.Content[yStart:]); ok {
				p.Y = v
			}
			if p.Aperture.Radius == 0 {
				p.Aperture.Radius = 10.0
			}
		}
	}

	p.Fill = colornames.Darkviolet
	p.Background = colornames.Darkgreen
}

// decodeRegular scans an I...X...Y...A...V... record: optional identifier,
// position, aperture/type section, layer section. Every numeric extraction
// degrades to its default on failure without aborting the record.
func (p *Point) decodeRegular(line string, countOfLayer int, apertures []*Aperture) {
	p.Style = StyleRegular
	p.Image = p.Net.Image
	p.Content = pointCleaner.Replace(line)

	if strings.HasPrefix(p.Content, "I") && strings.Contains(p.Content, "X") {
		idPart := strings.TrimLeft(strings.Split(p.Content, "X")[0], "I")
		if idPart != "" {
			if v, ok := intField(idPart); ok {
				p.Identifier = v
			}
		}
	}

	xi := strings.IndexByte(p.Content, 'X')
	yi := strings.IndexByte(p.Content, 'Y')
	if xi < 0 || yi < 0 {
		return
	}

	// X value sits after the first X, within the text before the first Y.
	beforeY := p.Content[:yi]
	if xj := strings.IndexByte(beforeY, 'X'); xj >= 0 {
		field := beforeY[xj+1:]
		if k := strings.IndexByte(field, 'X'); k >= 0 {
			field = field[:k]
		}
		if v, ok := floatField(field); ok {
			p.X = v
		}
	}

	// Y value sits after the first Y, within the text before the first A.
	beforeA := p.Content
	if ai := strings.IndexByte(p.Content, 'A'); ai >= 0 {
		beforeA = p.Content[:ai]
	}
	if yj := strings.IndexByte(beforeA, 'Y'); yj >= 0 {
		field := beforeA[yj+1:]
		if k := strings.IndexByte(field, 'Y'); k >= 0 {
			field = field[:k]
		}
		if v, ok := floatField(field); ok {
			p.Y = v
		}
	}

	// A section: point type code and aperture index, shifted one position
	// right when the logic-mode flag L is present.
	if ai := strings.IndexByte(p.Content, 'A'); ai >= 0 {
		section := p.Content[ai+1:]
		if k := strings.IndexByte(section, 'A'); k >= 0 {
			section = section[:k]
		}
		section = cutBefore(section, 'Z', 'V', 'M')
		p.LogicMode = strings.Contains(section, "L")
		if code, apIndex, ok := scanTypeAndAperture(section, p.LogicMode); ok {
			if ap := apertureByIndex(apertures, apIndex); ap != nil {
				p.Aperture = ap
			}
			p.Type = pointTypeFor(code)
		}
	}

	// V section: layer number, terminated by N when a net number follows.
	if vi := strings.IndexByte(p.Content, 'V'); vi >= 0 {
		layerPart := p.Content[vi+1:]
		if k := strings.IndexByte(layerPart, 'V'); k >= 0 {
			layerPart = layerPart[:k]
		}
		if n := strings.IndexByte(layerPart, 'N'); n >= 0 {
			layerPart = layerPart[:n]
		}
		if layerPart != "" {
			if v, ok := intField(layerPart); ok {
				p.Layer = v
			} else {
				p.Layer = 1
			}
		}
	}

	p.IsEnable = p.Layer == 1 || p.Layer == countOfLayer
	p.IsTest = !strings.Contains(line, "*")
	p.Fill = fillColorFor(p.Layer, countOfLayer, p.IsTest)
	p.Background = colornames.Darkgreen
}

// scanTypeAndAperture pulls the one-character type code and the aperture
// index out of an A section. Logic mode shifts both one position to the
// right. ok is false when the section is too short or the index part is not
// numeric; the caller keeps its defaults in that case.
func scanTypeAndAperture(section string, logicMode bool) (byte, int, bool) {
	typePos, idxPos := 0, 2
	if logicMode {
		typePos, idxPos = 1, 3
	}
	if len(section) <= idxPos {
		return 0, 0, false
	}
	idx, ok := intField(section[idxPos:])
	if !ok {
		return 0, 0, false
	}
	return section[typePos], idx, true
}

// fillColorFor selects the point fill: gold family on the top layer, green
// family on the bottom of a multi-layer stack, cyan/steel blue for inner
// layers. Points without the test flag take the darker shade.
func fillColorFor(layer, countOfLayer int, isTest bool) color.RGBA {
	switch {
	case layer == 1:
		if isTest {
			return colornames.Gold
		}
		return colornames.Darkgoldenrod
	case layer == countOfLayer && countOfLayer > 1:
		if isTest {
			return colornames.Lime
		}
		return colornames.Green
	default:
		if isTest {
			return colornames.Cyan
		}
		return colornames.Steelblue
	}
}
