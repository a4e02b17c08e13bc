package propers

import "strings"

// ColorNone is returned when no candidate bundle carries a color.
const ColorNone = "none"

// ResolveColor picks the liturgical color for a day from candidate bundles
// supplied in strict priority order, conventionally
// (festivals, lectionary, sunday lectionary).
//
// When isSunday is true the first candidate is skipped entirely: festivals
// never override the color assigned to a Sunday, even when the festival
// bundle is non-empty that day.
//
// The first candidate that is non-empty and carries a color wins. The
// result is lower-cased for stable comparison downstream.
func ResolveColor(isSunday bool, candidates ...Bundle) string {
	for i, c := range candidates {
		if isSunday && i == 0 {
			continue
		}
		if c.IsEmpty() || c.Color == "" {
			continue
		}
		return strings.ToLower(c.Color)
	}
	return ColorNone
}
