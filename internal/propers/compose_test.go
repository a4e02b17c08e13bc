package propers

import (
	"reflect"
	"testing"
)

func TestComposeDaily_CollectSplicedAtIndexOne(t *testing.T) {
	set := Set{
		Daily: Bundle{Items: []Proper{
			{Type: TypeFirstReading, Text: "A"},
			{Type: TypeSecondReading, Text: "B"},
			{Type: TypeFirstReading, Text: "C"},
		}},
	}
	sundayLectionary := Bundle{Items: []Proper{
		{Type: TypeTitle, Text: "Trinity 8"},
		{Type: TypeCollect, Text: "D"},
	}}

	got := ComposeDaily(set, sundayLectionary)

	want := []Proper{
		{Type: TypeTitle, Text: "Daily Lectionary"},
		{Type: TypeCollect, Text: "D"},
		{Type: TypeFirstReading, Text: "A"},
		{Type: TypeSecondReading, Text: "B"},
	}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("ComposeDaily() = %v, want %v", got.Items, want)
	}
}

func TestComposeDaily_CommemorationBecomesTitle(t *testing.T) {
	set := Set{
		Daily: Bundle{Items: []Proper{{Type: TypeFirstReading, Text: "2 Kings 2:1-18"}}},
		Commemorations: Bundle{Items: []Proper{
			{Type: TypeCommemoration, Text: "Joseph of Arimathea"},
		}},
		Lectionary: Bundle{Items: []Proper{
			{Type: TypeTitle, Text: "Trinity 9"},
			{Type: TypeGospel, Text: "Luke 16:1-9"},
		}},
	}

	got := ComposeDaily(set, Bundle{Items: []Proper{{Type: TypeCollect, Text: "unused"}}})

	if got.Items[0].Type != TypeTitle {
		t.Errorf("head type = %d, want title", got.Items[0].Type)
	}
	if got.Items[0].Text != "Joseph of Arimathea" {
		t.Errorf("head text = %q, want the commemoration", got.Items[0].Text)
	}
	// Lectionary is non-empty, so no collect is spliced in.
	for _, p := range got.Items[1:] {
		if p.Type == TypeCollect {
			t.Error("collect spliced in despite overriding lectionary content")
		}
	}
}

func TestComposeDaily_NoCollectAvailable(t *testing.T) {
	set := Set{
		Daily: Bundle{Items: []Proper{
			{Type: TypeFirstReading, Text: "A"},
			{Type: TypeSecondReading, Text: "B"},
		}},
	}

	got := ComposeDaily(set, Bundle{})

	want := []Proper{
		{Type: TypeTitle, Text: "Daily Lectionary"},
		{Type: TypeFirstReading, Text: "A"},
		{Type: TypeSecondReading, Text: "B"},
	}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("ComposeDaily() = %v, want %v", got.Items, want)
	}
}

func TestWithComposedDaily_DoesNotMutateOriginal(t *testing.T) {
	day := ResolvedDay{
		Propers: Set{
			Daily: Bundle{Items: []Proper{
				{Type: TypeFirstReading, Text: "A"},
				{Type: TypeSecondReading, Text: "B"},
				{Type: TypeFirstReading, Text: "C"},
			}},
		},
	}

	composed := day.WithComposedDaily()

	if len(day.Propers.Daily.Items) != 3 {
		t.Errorf("original daily bundle mutated: %v", day.Propers.Daily.Items)
	}
	if len(composed.Propers.Daily.Items) != 3 { // title + two readings
		t.Errorf("composed daily = %v, want title plus two readings", composed.Propers.Daily.Items)
	}
	if composed.Propers.Daily.Items[0].Type != TypeTitle {
		t.Errorf("composed head type = %d, want title", composed.Propers.Daily.Items[0].Type)
	}
}
