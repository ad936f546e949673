package les

import "strings"

// Net is a logical electrical grouping of points, tagged with the image it
// belongs to. The parser attaches every regular point to the most recently
// decoded net.
type Net struct {
	Index   int
	Image   int
	IsPlain bool
	Points  []*Point
}

// NewNet creates an empty default net (index 0, image 1). Decoders fall back
// to an instance like this when no net header has been seen yet.
func NewNet() *Net {
	return &Net{Image: 1}
}

// DecodeNet parses a net header like "@12C2" or "@7PC3". A P anywhere marks
// the net plain and is removed before the index/image split on C. The index
// is the run of leading digits after the @; trailing garbage is tolerated.
// The image segment must be purely numeric or it defaults to 1.
func DecodeNet(content string) *Net {
	n := NewNet()
	if content == "" {
		return n
	}
	if strings.Contains(content, "P") {
		n.IsPlain = true
		content = strings.ReplaceAll(content, "P", "")
	}
	parts := strings.Split(content, "C")
	idxPart := strings.TrimSpace(strings.ReplaceAll(parts[0], "@", ""))
	if digits := leadingDigits(idxPart); digits != "" {
		if v, ok := intField(digits); ok {
			n.Index = v
		}
	}
	if len(parts) > 1 && isDigits(parts[1]) {
		if v, ok := intField(parts[1]); ok {
			n.Image = v
		}
	}
	return n
}
