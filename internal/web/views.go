package web

import (
	"html/template"
	"time"

	"github.com/clcmanhattan/lectionary/internal/calendar"
	"github.com/clcmanhattan/lectionary/internal/propers"
)

// =============================================================================
// Month view
// =============================================================================

type monthView struct {
	Label    string
	Path     string
	ICSPath  string
	Prev     monthNav
	Next     monthNav
	Weekdays []string
	Rows     [][]cellView
}

type monthNav struct {
	Label string
	Path  string
}

type cellView struct {
	Empty         bool
	Day           int
	Path          string
	Color         string
	IsToday       bool
	Title         string
	Readings      []propers.SlotReading
	Daily         []string
	Commemoration string
}

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// buildMonthView maps a resolved grid onto the template model.
func buildMonthView(grid *calendar.Grid) monthView {
	ym := grid.YearMonth
	view := monthView{
		Label:    ym.Label(),
		Path:     ym.Path(),
		ICSPath:  ym.Path() + "calendar.ics",
		Prev:     monthNav{Label: ym.Previous().Label(), Path: ym.Previous().Path()},
		Next:     monthNav{Label: ym.Next().Label(), Path: ym.Next().Path()},
		Weekdays: weekdayNames,
	}

	for _, row := range grid.Rows {
		cells := make([]cellView, 0, len(row))
		for _, day := range row {
			cells = append(cells, buildCellView(day))
		}
		view.Rows = append(view.Rows, cells)
	}
	return view
}

func buildCellView(day *propers.ResolvedDay) cellView {
	if day == nil {
		return cellView{Empty: true}
	}

	content := propers.GridContentFor(*day)
	return cellView{
		Day:     day.Date.Day(),
		Path:    calendar.DayPath(day.Date),
		IsToday: calendar.IsToday(day.Date),
		Color: propers.ResolveColor(
			day.Date.Weekday() == time.Sunday,
			day.Propers.Festivals,
			day.Propers.Lectionary,
			day.Sunday.Lectionary,
		),
		Title:         content.Title,
		Readings:      content.Readings,
		Daily:         content.Daily,
		Commemoration: content.Commemoration,
	}
}

// =============================================================================
// Day view
// =============================================================================

type dayView struct {
	Title      string
	DateLabel  string
	Color      string
	MonthLabel string
	MonthPath  string
	Prev       dayNav
	Next       dayNav
	Sections   []sectionView
	Meta       metaView
}

type dayNav struct {
	Label string
	Path  string
	Color string
}

type sectionView struct {
	Title   string
	Color   string
	Entries []entryView
}

type entryView struct {
	Name      string
	Icon      string
	AnchorID  string
	IsReading bool
	Citation  string
	SearchURL string
	DeepLink  template.URL
	Body      template.HTML
}

type metaView struct {
	Title       string
	Description string
	URL         string
}

// buildDayView maps a composed day onto the template model. prevColor and
// nextColor come from the grid-style color rule applied to the adjacent
// dates.
func buildDayView(day propers.ResolvedDay, reg *propers.Registry, baseURL, prevColor, nextColor string) dayView {
	title := propers.DayTitle(day)
	color := propers.ResolveColor(false,
		day.Propers.Festivals,
		day.Propers.Lectionary,
		day.Sunday.Lectionary,
	)

	yesterday := day.Date.AddDate(0, 0, -1)
	tomorrow := day.Date.AddDate(0, 0, 1)

	view := dayView{
		Title:      title,
		DateLabel:  day.Date.Format("January 02, 2006"),
		Color:      color,
		MonthLabel: day.Date.Format("January"),
		MonthPath:  calendar.YearMonth{Year: day.Date.Year(), Month: int(day.Date.Month())}.Path(),
		Prev: dayNav{
			Label: yesterday.Format("January 2, 2006"),
			Path:  calendar.DayPath(yesterday),
			Color: prevColor,
		},
		Next: dayNav{
			Label: tomorrow.Format("January 2, 2006"),
			Path:  calendar.DayPath(tomorrow),
			Color: nextColor,
		},
	}

	for _, sec := range propers.DaySections(day, reg) {
		sv := sectionView{Title: sec.Title, Color: sec.Color}
		for _, e := range sec.Entries {
			ev := entryView{
				Name:      e.Descriptor.Name,
				Icon:      e.Descriptor.Icon,
				AnchorID:  e.AnchorID,
				IsReading: e.Descriptor.IsReading,
			}
			if e.Descriptor.IsReading {
				ev.Citation = e.Proper.Text
				ev.SearchURL = e.SearchURL
				// The accord:// scheme is not on html/template's safe
				// list, so the link has to be marked trusted explicitly.
				ev.DeepLink = template.URL(e.DeepLink)
			} else {
				// Non-reading propers (collects, commemoration notes) carry
				// trusted markup from the source tables.
				ev.Body = template.HTML(e.Proper.Text)
			}
			sv.Entries = append(sv.Entries, ev)
		}
		view.Sections = append(view.Sections, sv)
	}

	url := baseURL + calendar.DayPath(day.Date)
	view.Meta = metaView{
		Title:       title + " · Lutheran Lectionary",
		Description: "Readings and propers for " + title + " (" + view.DateLabel + ") in the Historic Lutheran Lectionary.",
		URL:         url,
	}
	return view
}
