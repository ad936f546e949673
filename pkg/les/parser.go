package les

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pcbfab/panelview/pkg/geom"
)

// Line shape patterns, first match wins in the order Parse tries them.
var (
	layerPattern    = regexp.MustCompile(`^L\s*(\d+)\s*\*?$`)
	aperturePattern = regexp.MustCompile(`^[FTOKU][0-9]+:`)
	stepPattern     = regexp.MustCompile(`^STEP:`)
	toolingPattern  = regexp.MustCompile(`^F,X`)
	outlinePattern  = regexp.MustCompile(`^K,X-?\d+Y-?\d+(?:,)?(?:T\d+)?(?:,)?$`)
	pointPattern    = regexp.MustCompile(`^I\d+X-?\d+Y-?\d+A.+$`)
)

// maxLineLen bounds a single LES line. Real files stay far below this.
const maxLineLen = 1024 * 1024

// ParseFile reads and parses a LES file.
func ParseFile(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open LES file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a LES document from r. Each non-empty line is routed to
// exactly one handler; lines matching no known shape are skipped so unknown
// directives never break a load. Only read failures surface as errors.
//
// Classification order per line: test-name header, layer count, unit
// directive, outline vertex, tooling hole, aperture definition, step
// definition, net header, regular point.
func Parse(r io.Reader) (*Document, error) {
	doc := NewDocument()

	// stepLine is the index of the most recent STEP record; tooling holes
	// before it are global, after it local.
	stepLine := -1
	var outlineSegment []geom.Position

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	lineNum := -1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.Contains(line, "#ATFH") {
			if parts := strings.Split(line, ":"); len(parts) > 1 {
				doc.Test = parts[1]
			}
			continue
		}

		if m := layerPattern.FindStringSubmatch(line); m != nil {
			if v, ok := intField(m[1]); ok {
				doc.CountOfLayer = v
			}
			continue
		}

		if strings.HasPrefix(line, "UNIT") {
			if parts := strings.Split(line, ":"); len(parts) >= 3 {
				doc.Unit = strings.ToUpper(strings.TrimSpace(parts[1]))
				res, ok := floatField(parts[2])
				if !ok {
					res = 1.0
				}
				switch {
				case doc.Unit == "INCH" && res != 0:
					doc.Scale = 25.4 / res
				case doc.Unit == "MM" && res != 0:
					doc.Scale = 1.0 / res
				default:
					doc.Scale = 1.0
				}
			}
			continue
		}

		if outlinePattern.MatchString(line) {
			hasComma := strings.HasSuffix(line, ",")
			work := strings.TrimRight(line[2:], ",")
			coord := work
			if t := strings.IndexByte(coord, 'T'); t >= 0 {
				coord = coord[:t]
			}
			xs, ys, _ := strings.Cut(coord, "Y")
			x, okX := floatField(strings.ReplaceAll(xs, "X", ""))
			y, okY := floatField(ys)
			if !okX || !okY {
				x, y = 0, 0
			}
			outlineSegment = append(outlineSegment, geom.Position{X: x * doc.Scale, Y: y * doc.Scale})
			if !hasComma {
				doc.Outline = append(doc.Outline, outlineSegment)
				outlineSegment = nil
			}
			continue
		}

		if toolingPattern.MatchString(line) {
			style := StyleGlobal
			if stepLine >= 0 && lineNum > stepLine {
				style = StyleLocal
			}
			p := DecodePoint(line, 1, doc.Apertures, nil, style)
			p.X *= doc.Scale
			p.Y *= doc.Scale
			doc.Points = append(doc.Points, p)
			continue
		}

		if aperturePattern.MatchString(line) {
			ap := DecodeAperture(line)
			ap.ScaleValues(doc.Scale)
			doc.Apertures = append(doc.Apertures, ap)
			continue
		}

		if stepPattern.MatchString(line) {
			st := DecodeStep(line)
			st.ScaleValues(doc.Scale)
			doc.Steps = append(doc.Steps, st)
			stepLine = lineNum
			continue
		}

		if strings.HasPrefix(line, "@") && !strings.Contains(line, "!") {
			net := DecodeNet(line)
			doc.Nets = append(doc.Nets, net)
			doc.EnsureImage(net.Image)
			continue
		}

		stripped := strings.TrimSpace(strings.Trim(line, "[]"))
		if pointPattern.MatchString(stripped) {
			var net *Net
			if len(doc.Nets) > 0 {
				net = doc.Nets[len(doc.Nets)-1]
			}
			pt := DecodePoint(stripped, doc.CountOfLayer, doc.Apertures, net, StyleRegular)
			pt.X *= doc.Scale
			pt.Y *= doc.Scale
			doc.Points = append(doc.Points, pt)
			if net != nil {
				net.Points = append(net.Points, pt)
			}
			if ib := doc.EnsureImage(pt.Image); ib != nil {
				ib.Expand(pt)
			}
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read LES file: %w", err)
	}

	if len(outlineSegment) > 0 {
		doc.Outline = append(doc.Outline, outlineSegment)
	}

	AssignPanelImageNames(doc.Steps, doc.Points)
	return doc, nil
}
