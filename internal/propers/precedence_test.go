package propers

import (
	"reflect"
	"testing"
	"time"
)

func testRegistry() *Registry {
	return NewRegistry([]Record{
		{Type: TypeTitle, Name: "Title", IsReading: false, IsViewable: false},
		{Type: TypeEpistle, Name: "Epistle", IsReading: true, IsViewable: true},
		{Type: TypeGospel, Name: "Gospel", IsReading: true, IsViewable: true},
		{Type: TypeOldTestament, Name: "Old Testament", IsReading: true, IsViewable: true},
		{Type: TypeCollect, Name: "Collect", IsReading: false, IsViewable: true},
	})
}

func TestResolvePrimary_FestivalBeatsLectionary(t *testing.T) {
	festivals := Bundle{Color: "White", Items: []Proper{{Type: TypeTitle, Text: "Nativity"}}}
	lectionary := Bundle{Color: "Violet", Items: []Proper{
		{Type: TypeTitle, Text: "Advent 4"},
		{Type: TypeOldTestament, Text: "Deut. 18:15-19"},
		{Type: TypeEpistle, Text: "Phil. 4:4-7"},
		{Type: TypeGospel, Text: "John 1:19-28"},
	}}

	primary, ok := ResolvePrimary(lectionary, festivals)
	if !ok {
		t.Fatal("ResolvePrimary() found no primary, want festivals")
	}
	title, _ := FindByType(primary, TypeTitle)
	if title.Text != "Nativity" {
		t.Errorf("primary title = %q, want %q", title.Text, "Nativity")
	}
}

func TestResolvePrimary_FestivalWithoutTitleLosesToLectionary(t *testing.T) {
	festivals := Bundle{Items: []Proper{{Type: TypeCollect, Text: "a collect only"}}}
	lectionary := Bundle{Items: []Proper{
		{Type: TypeTitle, Text: "Trinity 5"},
		{Type: TypeGospel, Text: "Luke 5:1-11"},
	}}

	primary, ok := ResolvePrimary(lectionary, festivals)
	if !ok {
		t.Fatal("ResolvePrimary() found no primary, want lectionary")
	}
	title, _ := FindByType(primary, TypeTitle)
	if title.Text != "Trinity 5" {
		t.Errorf("primary title = %q, want %q", title.Text, "Trinity 5")
	}
}

func TestResolvePrimary_LectionaryWithoutReadingsIsNotPrimary(t *testing.T) {
	lectionary := Bundle{Items: []Proper{
		{Type: TypeTitle, Text: "Trinity 5"},
		{Type: TypeCollect, Text: "a collect"},
	}}

	if _, ok := ResolvePrimary(lectionary, Bundle{}); ok {
		t.Error("ResolvePrimary() chose a lectionary bundle with no readings")
	}
}

func TestGridContentFor_ReadingsInCanonicalOrder(t *testing.T) {
	day := ResolvedDay{
		Date: time.Date(2026, time.November, 29, 0, 0, 0, 0, time.UTC),
		Propers: Set{
			// Source order deliberately scrambled; display order is fixed.
			Lectionary: Bundle{Color: "Violet", Items: []Proper{
				{Type: TypeTitle, Text: "Advent 1"},
				{Type: TypeGospel, Text: "Matt. 21:1-9"},
				{Type: TypeOldTestament, Text: "Jer. 23:5-8"},
				{Type: TypeEpistle, Text: "Rom. 13:11-14"},
			}},
		},
	}

	content := GridContentFor(day)
	if content.Title != "Advent 1" {
		t.Errorf("Title = %q, want %q", content.Title, "Advent 1")
	}

	want := []SlotReading{
		{Label: "OT", Citation: "Jer. 23:5-8"},
		{Label: "Ep", Citation: "Rom. 13:11-14"},
		{Label: "Go", Citation: "Matt. 21:1-9"},
	}
	if !reflect.DeepEqual(content.Readings, want) {
		t.Errorf("Readings = %v, want %v", content.Readings, want)
	}
	if content.Daily != nil {
		t.Errorf("Daily = %v, want none when a primary bundle exists", content.Daily)
	}
}

func TestGridContentFor_DailyFallback(t *testing.T) {
	day := ResolvedDay{
		Date: time.Date(2026, time.August, 12, 0, 0, 0, 0, time.UTC),
		Propers: Set{
			Daily: Bundle{Items: []Proper{
				{Type: TypeFirstReading, Text: "1 Sam. 1:1-20"},
				{Type: TypeSecondReading, Text: "Acts 15:1-21"},
				{Type: TypeFirstReading, Text: "1 Sam. 1:21-2:17"},
			}},
			Commemorations: Bundle{Items: []Proper{
				{Type: TypeCommemoration, Text: "Lawrence, Deacon and Martyr"},
			}},
		},
	}

	content := GridContentFor(day)
	if content.Title != "" {
		t.Errorf("Title = %q, want empty without primary content", content.Title)
	}

	wantDaily := []string{"1 Sam. 1:1-20", "Acts 15:1-21"}
	if !reflect.DeepEqual(content.Daily, wantDaily) {
		t.Errorf("Daily = %v, want first two items %v", content.Daily, wantDaily)
	}
	if content.Commemoration != "Lawrence, Deacon and Martyr" {
		t.Errorf("Commemoration = %q, want the type-37 text", content.Commemoration)
	}
}

func TestDaySections(t *testing.T) {
	reg := testRegistry()
	day := ResolvedDay{
		Date: time.Date(2026, time.December, 6, 0, 0, 0, 0, time.UTC),
		Propers: Set{
			Lectionary: Bundle{Color: "Violet", Items: []Proper{
				{Type: TypeTitle, Text: "Advent 2"},
				{Type: TypeGospel, Text: "Luke 21:25-36"},
				{Type: TypeCollect, Text: "Stir up our hearts"},
			}},
			Festivals: Bundle{Color: "White", Items: []Proper{
				{Type: TypeTitle, Text: "St. Nicholas"},
			}},
		},
	}

	sections := DaySections(day, reg)
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2 (daily is empty)", len(sections))
	}

	// Presentation order is lectionary, festivals, daily.
	if sections[0].Index != 0 || sections[0].Title != "Advent 2" {
		t.Errorf("sections[0] = {index %d, title %q}, want lectionary first", sections[0].Index, sections[0].Title)
	}
	if sections[0].Color != "violet" {
		t.Errorf("sections[0].Color = %q, want %q", sections[0].Color, "violet")
	}
	if sections[1].Index != 1 || sections[1].Title != "St. Nicholas" {
		t.Errorf("sections[1] = {index %d, title %q}, want festivals second", sections[1].Index, sections[1].Title)
	}

	// The title proper is not viewable, so the lectionary section holds the
	// gospel and the collect only.
	if len(sections[0].Entries) != 2 {
		t.Fatalf("lectionary entries = %d, want 2", len(sections[0].Entries))
	}
	gospel := sections[0].Entries[0]
	if gospel.Proper.Type != TypeGospel {
		t.Errorf("first entry type = %d, want gospel", gospel.Proper.Type)
	}
	if gospel.SearchURL == "" || gospel.DeepLink == "" {
		t.Error("reading entry is missing outbound links")
	}
	collect := sections[0].Entries[1]
	if collect.SearchURL != "" {
		t.Errorf("non-reading entry has search URL %q", collect.SearchURL)
	}
	if gospel.AnchorID == collect.AnchorID {
		t.Errorf("entries share anchor id %q", gospel.AnchorID)
	}
}

func TestDaySections_UnknownTypeViewableByDefault(t *testing.T) {
	reg := testRegistry()
	day := ResolvedDay{
		Propers: Set{
			Daily: Bundle{Items: []Proper{{Type: 99, Text: "unmapped proper"}}},
		},
	}

	sections := DaySections(day, reg)
	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
	if len(sections[0].Entries) != 1 {
		t.Fatalf("entries = %d, want unknown type included", len(sections[0].Entries))
	}
	if sections[0].Entries[0].Descriptor.IsReading {
		t.Error("unknown type classified as reading")
	}
}

func TestDayTitle(t *testing.T) {
	sunday := Set{Lectionary: Bundle{Items: []Proper{{Type: TypeTitle, Text: "Trinity 12"}}}}

	tests := []struct {
		name string
		day  ResolvedDay
		want string
	}{
		{
			name: "festival title wins",
			day: ResolvedDay{
				Date: time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC), // Friday
				Propers: Set{
					Festivals: Bundle{Items: []Proper{{Type: TypeTitle, Text: "The Nativity of Our Lord"}}},
				},
				Sunday: sunday,
			},
			want: "The Nativity of Our Lord",
		},
		{
			name: "weekday composite",
			day: ResolvedDay{
				Date:   time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), // Monday
				Sunday: sunday,
			},
			want: "Monday of Trinity 12",
		},
		{
			name: "sunday uses the lectionary title directly",
			day: ResolvedDay{
				Date:   time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), // Sunday
				Sunday: sunday,
			},
			want: "Trinity 12",
		},
		{
			name: "no titles at all",
			day: ResolvedDay{
				Date: time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayTitle(tt.day); got != tt.want {
				t.Errorf("DayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Resolution has no hidden state: the same inputs always produce the same
// output.
func TestGridContentFor_Idempotent(t *testing.T) {
	day := ResolvedDay{
		Date: time.Date(2026, time.November, 29, 0, 0, 0, 0, time.UTC),
		Propers: Set{
			Lectionary: Bundle{Color: "Violet", Items: []Proper{
				{Type: TypeTitle, Text: "Advent 1"},
				{Type: TypeGospel, Text: "Matt. 21:1-9"},
			}},
		},
	}

	first := GridContentFor(day)
	second := GridContentFor(day)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated resolution differs: %v vs %v", first, second)
	}
}
