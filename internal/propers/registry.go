package propers

import "fmt"

// Record is one row of the external type table, loaded once at startup.
type Record struct {
	Type       int    `json:"type"`
	Name       string `json:"name"`
	IsReading  bool   `json:"is_reading"`
	IsViewable bool   `json:"is_viewable"`
}

// Descriptor is the merged display metadata for a proper type: the external
// type table plus the UI icon assignment, resolved once at load time.
type Descriptor struct {
	Name       string
	IsReading  bool
	IsViewable bool
	Icon       string
}

// icons maps reading types to their display glyphs.
var icons = map[int]string{
	TypeOldTestament:  "fas fa-scroll",
	TypeEpistle:       "fas fa-envelope",
	TypeGospel:        "fas fa-cross",
	TypeCollect:       "fas fa-praying-hands",
	TypeFirstReading:  "fas fa-book-open",
	TypeSecondReading: "fas fa-book",
}

const defaultIcon = "fas fa-bookmark"

// Registry looks up display metadata by proper type code.
type Registry struct {
	byCode map[int]Descriptor
}

// NewRegistry builds a registry from the external type records, merging in
// the icon table.
func NewRegistry(records []Record) *Registry {
	byCode := make(map[int]Descriptor, len(records))
	for _, rec := range records {
		icon, ok := icons[rec.Type]
		if !ok {
			icon = defaultIcon
		}
		byCode[rec.Type] = Descriptor{
			Name:       rec.Name,
			IsReading:  rec.IsReading,
			IsViewable: rec.IsViewable,
			Icon:       icon,
		}
	}
	return &Registry{byCode: byCode}
}

// Lookup returns the descriptor for a type code. A code with no record
// resolves to a viewable, non-reading descriptor so unknown data still
// renders instead of crashing classification.
func (r *Registry) Lookup(code int) Descriptor {
	if d, ok := r.byCode[code]; ok {
		return d
	}
	return Descriptor{
		Name:       fmt.Sprintf("Proper %d", code),
		IsViewable: true,
		Icon:       defaultIcon,
	}
}
