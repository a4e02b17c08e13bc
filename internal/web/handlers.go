package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clcmanhattan/lectionary/internal/calendar"
	"github.com/clcmanhattan/lectionary/internal/config"
	"github.com/clcmanhattan/lectionary/internal/database"
	"github.com/clcmanhattan/lectionary/internal/propers"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     *database.DB
	reg    *propers.Registry
	cfg    *config.Config
	logger *slog.Logger
	tmpl   *template.Template
}

// NewHandlers creates a new Handlers instance. The registry is built once
// from the type table; the store is injected so resolution stays testable.
func NewHandlers(db *database.DB, reg *propers.Registry, cfg *config.Config, logger *slog.Logger) (*Handlers, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Handlers{
		db:     db,
		reg:    reg,
		cfg:    cfg,
		logger: logger,
		tmpl:   tmpl,
	}, nil
}

// Home handles GET / and redirects to the current month.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	ym := calendar.YearMonth{Year: now.Year(), Month: int(now.Month())}
	http.Redirect(w, r, ym.Path(), http.StatusFound)
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// Month handles GET /{year}/{month}/
func (h *Handlers) Month(w http.ResponseWriter, r *http.Request) {
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

	h.render(w, r, "month.html", buildMonthView(grid))
}

// Day handles GET /{year}/{month}/{day}/
func (h *Handlers) Day(w http.ResponseWriter, r *http.Request) {
	ym, ok := monthParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	dayNum, _ := strconv.Atoi(chi.URLParam(r, "day"))

	date := time.Date(ym.Year, time.Month(ym.Month), dayNum, 0, 0, 0, 0, time.UTC)
	if date.Day() != dayNum || int(date.Month()) != ym.Month {
		http.NotFound(w, r)
		return
	}

	day, err := h.resolveDate(r, date)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	day = day.WithComposedDaily()

	prevColor := h.navColor(r, date.AddDate(0, 0, -1))
	nextColor := h.navColor(r, date.AddDate(0, 0, 1))

	h.render(w, r, "day.html", buildDayView(day, h.reg, h.cfg.BaseURL, prevColor, nextColor))
}

// APIDay handles GET /api/v1/day/{date} with date in YYYY-MM-DD form.
func (h *Handlers) APIDay(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	day, err := h.resolveDate(r, date)
	if err != nil {
		h.logger.Error("failed to resolve day",
			slog.String("date", dateStr),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to resolve day")
		return
	}
	day = day.WithComposedDaily()

	WriteSuccess(w, struct {
		propers.ResolvedDay
		Title string              `json:"title"`
		Color string              `json:"color"`
		Grid  propers.GridContent `json:"grid"`
	}{
		ResolvedDay: day,
		Title:       propers.DayTitle(day),
		Color: propers.ResolveColor(false,
			day.Propers.Festivals,
			day.Propers.Lectionary,
			day.Sunday.Lectionary,
		),
		Grid: propers.GridContentFor(day),
	})
}

// resolveDate loads the full picture for one date.
func (h *Handlers) resolveDate(r *http.Request, date time.Time) (propers.ResolvedDay, error) {
	week := calendar.ResolveWeek(date)
	return propers.ResolveDay(r.Context(), h.db, date, week.Key, week.Sunday)
}

// navColor resolves the grid-style color for an adjacent date: on Sundays
// the festival candidate is excluded, same as in the month grid. Resolution
// failures degrade to the neutral color rather than breaking navigation.
func (h *Handlers) navColor(r *http.Request, date time.Time) string {
	day, err := h.resolveDate(r, date)
	if err != nil {
		h.logger.Warn("nav color resolution failed",
			slog.String("date", date.Format("2006-01-02")),
			slog.Any("error", err))
		return propers.ColorNone
	}
	return propers.ResolveColor(
		date.Weekday() == time.Sunday,
		day.Propers.Festivals,
		day.Propers.Lectionary,
		day.Sunday.Lectionary,
	)
}

// monthParam reads the year/month route segments. The route patterns only
// admit digits, so parse failures cannot happen here; the digit pattern
// still admits months like 00 or 13, so the bool is false for anything
// outside 01-12.
func monthParam(r *http.Request) (calendar.YearMonth, bool) {
	year, _ := strconv.Atoi(chi.URLParam(r, "year"))
	month, _ := strconv.Atoi(chi.URLParam(r, "month"))
	if month < 1 || month > 12 {
		return calendar.YearMonth{}, false
	}
	return calendar.YearMonth{Year: year, Month: month}, true
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("template render failed",
			slog.String("template", name),
			slog.Any("error", err),
			slog.String("request_id", r.Header.Get("X-Request-ID")),
		)
	}
}

func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
		slog.String("request_id", r.Header.Get("X-Request-ID")),
	)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
