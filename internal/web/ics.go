package web

import (
	"fmt"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/clcmanhattan/lectionary/internal/calendar"
	"github.com/clcmanhattan/lectionary/internal/propers"
)

// MonthICS handles GET /{year}/{month}/calendar.ics and serves the month as
// an iCalendar feed: one all-day event per day that has a title, with the
// liturgical color in the description.
func (h *Handlers) MonthICS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ym, ok := monthParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	grid, err := calendar.BuildGrid(ctx, ym, h.db)
	if err != nil {
		h.serverError(w, r, fmt.Errorf("build grid: %w", err))
		return
	}

	cal := buildMonthCalendar(grid, h.cfg.BaseURL)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%d-%02d.ics", ym.Year, ym.Month))
	fmt.Fprint(w, cal.Serialize())
}

// buildMonthCalendar renders a resolved grid as a VCALENDAR.
func buildMonthCalendar(grid *calendar.Grid, baseURL string) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Christ Lutheran Manhattan//Lectionary Calendar//EN")

	now := time.Now()
	for _, row := range grid.Rows {
		for _, day := range row {
			if day == nil {
				continue
			}
			title := propers.DayTitle(*day)
			if title == "" {
				continue
			}

			color := propers.ResolveColor(
				day.Date.Weekday() == time.Sunday,
				day.Propers.Festivals,
				day.Propers.Lectionary,
				day.Sunday.Lectionary,
			)

			event := cal.AddEvent(day.Date.Format("20060102") + "@lectionary")
			event.SetDtStampTime(now)
			event.SetAllDayStartAt(day.Date)
			event.SetAllDayEndAt(day.Date.AddDate(0, 0, 1))
			event.SetSummary(title)
			event.SetDescription("Liturgical color: " + color)
			event.SetURL(baseURL + calendar.DayPath(day.Date))
		}
	}
	return cal
}
