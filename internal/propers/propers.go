// Package propers implements the resolution and precedence rules of the
// lectionary calendar: which liturgical color a day shows, which bundle of
// propers is the day's primary content, how the day view's sections are
// ordered and titled, and how the composed daily bundle is built.
//
// Everything in this package is a pure function of its inputs. Data access
// goes through the Loader interface so the rules are testable without a
// database.
package propers

import (
	"context"
	"fmt"
	"time"
)

// Proper type codes as they appear in the source tables.
// The codes are assigned by the upstream data set; only the ones the
// resolution rules branch on are named here.
const (
	TypeTitle         = 0
	TypeEpistle       = 1
	TypeGospel        = 2
	TypeOldTestament  = 19
	TypeCollect       = 20
	TypeCommemoration = 37
	TypeFirstReading  = 38
	TypeSecondReading = 39
)

// Proper is a single liturgical text item: a title, a reading citation, a
// collect prayer, or a commemoration note. Immutable once loaded.
type Proper struct {
	Type int    `json:"type"`
	Text string `json:"text"`
}

// Bundle is an ordered set of propers sharing a source. Order is
// significant: lookups return the first match and the order is never
// changed after load. Color is carried from the source table; "" means the
// source assigns no color.
type Bundle struct {
	Color string   `json:"color,omitempty"`
	Items []Proper `json:"items"`
}

// IsEmpty reports whether the bundle has no items.
func (b Bundle) IsEmpty() bool {
	return len(b.Items) == 0
}

// Set holds the four named bundles resolved for one day.
type Set struct {
	Lectionary     Bundle `json:"lectionary"`
	Festivals      Bundle `json:"festivals"`
	Daily          Bundle `json:"daily"`
	Commemorations Bundle `json:"commemorations"`
}

// ResolvedDay is everything known about one calendar day: its propers and
// the propers of the week's anchor Sunday (used for weekday titles and the
// collect fallback). Built fresh for every render; never cached.
type ResolvedDay struct {
	Date    time.Time `json:"date"`
	Week    string    `json:"week"`
	Propers Set       `json:"propers"`
	Sunday  Set       `json:"sunday"`
}

// Loader supplies the four proper bundles for a date within a liturgical
// week. Missing data must come back as empty bundles, not an error.
type Loader interface {
	Load(ctx context.Context, date time.Time, week string) (Set, error)
}

// ResolveDay loads the propers for date and for the week's anchor Sunday.
func ResolveDay(ctx context.Context, loader Loader, date time.Time, week string, sunday time.Time) (ResolvedDay, error) {
	set, err := loader.Load(ctx, date, week)
	if err != nil {
		return ResolvedDay{}, fmt.Errorf("load propers for %s: %w", date.Format("2006-01-02"), err)
	}

	sundaySet, err := loader.Load(ctx, sunday, week)
	if err != nil {
		return ResolvedDay{}, fmt.Errorf("load sunday propers for %s: %w", sunday.Format("2006-01-02"), err)
	}

	return ResolvedDay{
		Date:    date,
		Week:    week,
		Propers: set,
		Sunday:  sundaySet,
	}, nil
}

// WithComposedDaily returns a copy of the day whose Daily bundle is replaced
// by the composed day-view bundle. The receiver and the loaded data are left
// untouched.
func (d ResolvedDay) WithComposedDaily() ResolvedDay {
	d.Propers.Daily = ComposeDaily(d.Propers, d.Sunday.Lectionary)
	return d
}
