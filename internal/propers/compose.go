package propers

// dailyFallbackTitle heads the composed daily bundle when the day has no
// commemoration.
const dailyFallbackTitle = "Daily Lectionary"

// ComposeDaily builds the daily bundle the day view renders. It is a pure
// transform: the loaded set is never modified.
//
// The composed bundle is, in order:
//  1. a synthetic title entry: the day's first commemoration description if
//     one exists, otherwise "Daily Lectionary"; either way the type is
//     forced to title so it renders as the section heading;
//  2. when both the lectionary and festival bundles are empty, the anchor
//     Sunday's collect, so every weekday without its own propers still
//     surfaces a collect for prayer;
//  3. at most the first two raw daily items. Weekly readings precede
//     monthly ones in the raw ordering, so the truncation keeps the weekly
//     ones.
func ComposeDaily(set Set, sundayLectionary Bundle) Bundle {
	head := Proper{Type: TypeTitle, Text: dailyFallbackTitle}
	if c, ok := FindByType(set.Commemorations, TypeCommemoration); ok {
		head = Proper{Type: TypeTitle, Text: c.Text}
	}

	items := []Proper{head}

	if set.Lectionary.IsEmpty() && set.Festivals.IsEmpty() {
		if collect, ok := FindByType(sundayLectionary, TypeCollect); ok {
			items = append(items, collect)
		}
	}

	daily := set.Daily.Items
	if len(daily) > 2 {
		daily = daily[:2]
	}
	items = append(items, daily...)

	return Bundle{Color: set.Daily.Color, Items: items}
}
