package propers

import "time"

// ResolvePrimary chooses the bundle that represents the day's principal
// observance. Festivals win when the festival bundle is non-empty and holds
// a title proper; otherwise the lectionary wins when it is non-empty and
// has readings. The bool is false when neither qualifies and the caller
// falls through to the daily display.
func ResolvePrimary(lectionary, festivals Bundle) (Bundle, bool) {
	if !festivals.IsEmpty() {
		if _, ok := FindByType(festivals, TypeTitle); ok {
			return festivals, true
		}
	}
	if !lectionary.IsEmpty() && HasReadings(lectionary) {
		return lectionary, true
	}
	return Bundle{}, false
}

// SlotReading is one of the canonical reading slots shown in a grid cell.
type SlotReading struct {
	Label    string `json:"label"`
	Citation string `json:"citation"`
}

// gridSlots is the fixed display order for grid readings.
var gridSlots = []struct {
	label string
	code  int
}{
	{"OT", TypeOldTestament},
	{"Ep", TypeEpistle},
	{"Go", TypeGospel},
}

// GridContent is everything a month-grid cell displays for one day.
type GridContent struct {
	Title         string        `json:"title,omitempty"`
	Readings      []SlotReading `json:"readings,omitempty"`
	Daily         []string      `json:"daily,omitempty"`
	Commemoration string        `json:"commemoration,omitempty"`
}

// GridContentFor decides what a month-grid cell shows: the primary bundle's
// title with up to three canonical readings, or, when no primary content
// exists, the first two daily readings.
func GridContentFor(day ResolvedDay) GridContent {
	var content GridContent

	if c, ok := FindByType(day.Propers.Commemorations, TypeCommemoration); ok {
		content.Commemoration = c.Text
	}

	primary, ok := ResolvePrimary(day.Propers.Lectionary, day.Propers.Festivals)
	if ok {
		if title, ok := FindByType(primary, TypeTitle); ok {
			content.Title = title.Text
		}
		if HasReadings(primary) {
			for _, slot := range gridSlots {
				if p, ok := FindByType(primary, slot.code); ok {
					content.Readings = append(content.Readings, SlotReading{Label: slot.label, Citation: p.Text})
				}
			}
		}
		return content
	}

	daily := day.Propers.Daily.Items
	if len(daily) > 2 {
		daily = daily[:2]
	}
	for _, p := range daily {
		content.Daily = append(content.Daily, p.Text)
	}
	return content
}

// Entry is one viewable proper inside a day-view section.
type Entry struct {
	Proper     Proper
	Descriptor Descriptor
	AnchorID   string
	SearchURL  string
	DeepLink   string
}

// Section is one rendered block of the day view: a heading plus the
// bundle's viewable propers.
type Section struct {
	Index   int
	Title   string
	Color   string
	Entries []Entry
}

// DaySections builds the ordered sections of the day view. The bundles are
// iterated in presentation order (lectionary, festivals, daily), which
// deliberately differs from the grid's precedence order. Empty bundles
// produce no section; a type with no registry record is viewable by
// default.
func DaySections(day ResolvedDay, reg *Registry) []Section {
	bundles := []Bundle{day.Propers.Lectionary, day.Propers.Festivals, day.Propers.Daily}

	var sections []Section
	for i, b := range bundles {
		if b.IsEmpty() {
			continue
		}

		sec := Section{
			Index: i,
			Color: ResolveColor(false, b),
		}
		if title, ok := FindByType(b, TypeTitle); ok {
			sec.Title = title.Text
		}

		for _, p := range b.Items {
			desc := reg.Lookup(p.Type)
			if !desc.IsViewable {
				continue
			}
			entry := Entry{
				Proper:     p,
				Descriptor: desc,
				AnchorID:   AnchorID(i, p.Type, reg),
			}
			if desc.IsReading {
				entry.SearchURL = SearchURL(p.Text)
				entry.DeepLink = DeepLink(p.Text)
			}
			sec.Entries = append(sec.Entries, entry)
		}
		sections = append(sections, sec)
	}
	return sections
}

// DayTitle derives the day's display title, used for the page title and
// navigation labels. Precedence: festival title, then the weekday composite
// ("Monday of <sunday title>"), then the Sunday title itself.
func DayTitle(day ResolvedDay) string {
	if t, ok := FindByType(day.Propers.Festivals, TypeTitle); ok && t.Text != "" {
		return t.Text
	}

	sundayTitle := ""
	if t, ok := FindByType(day.Sunday.Lectionary, TypeTitle); ok {
		sundayTitle = t.Text
	}

	if day.Date.Weekday() != time.Sunday && sundayTitle != "" {
		return day.Date.Weekday().String() + " of " + sundayTitle
	}
	return sundayTitle
}
