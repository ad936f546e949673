package les

import (
	"strconv"
	"strings"
)

// Field scanning helpers shared by the record decoders. LES numeric fields
// are best-effort: a field that fails to decode keeps its default, and the
// rest of the record still parses.

// floatField decodes a float field. ok is false for empty or malformed text.
func floatField(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// intField decodes an integer field. ok is false for empty or malformed text.
func intField(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// isDigits reports whether s is non-empty and contains only ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// leadingDigits returns the run of ASCII digits at the start of s, stopping
// at the first non-digit. Trailing garbage after an index is tolerated this
// way.
func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// cutBefore returns the part of s before the first occurrence of any of the
// marker bytes, or all of s when none occur.
func cutBefore(s string, markers ...byte) string {
	for _, m := range markers {
		if i := strings.IndexByte(s, m); i >= 0 {
			s = s[:i]
		}
	}
	return s
}

// indexFrom returns the index of the first occurrence of c at or after
// start, or -1.
func indexFrom(s string, c byte, start int) int {
	if start >= len(s) {
		return -1
	}
	i := strings.IndexByte(s[start:], c)
	if i < 0 {
		return -1
	}
	return start + i
}
