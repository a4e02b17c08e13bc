package propers

// readingTypes is the fixed set of type codes counted as scripture
// readings. This set drives precedence decisions and is independent of the
// registry loaded at startup.
var readingTypes = map[int]bool{
	TypeEpistle:       true,
	TypeGospel:        true,
	TypeOldTestament:  true,
	TypeFirstReading:  true,
	TypeSecondReading: true,
}

// IsReadingType reports whether code is a scripture reading type.
func IsReadingType(code int) bool {
	return readingTypes[code]
}

// FindByType returns the first proper in the bundle with the given type
// code. The bool is false when no item matches.
func FindByType(b Bundle, code int) (Proper, bool) {
	for _, p := range b.Items {
		if p.Type == code {
			return p, true
		}
	}
	return Proper{}, false
}

// HasReadings reports whether the bundle contains at least one scripture
// reading. An empty bundle or a bundle holding only titles, collects, and
// other non-reading propers yields false.
func HasReadings(b Bundle) bool {
	for _, p := range b.Items {
		if readingTypes[p.Type] {
			return true
		}
	}
	return false
}
