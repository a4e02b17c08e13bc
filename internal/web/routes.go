package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /                           redirect to the current month
//	GET /health                     health check
//	GET /api/v1/day/{date}          resolved day as JSON (YYYY-MM-DD)
//	GET /{year}/{month}/            month grid
//	GET /{year}/{month}/calendar.ics  month as iCalendar feed
//	GET /{year}/{month}/{day}/      single day
//	GET /static/*                   embedded assets
//
// Year is four digits, month and day two; anything else 404s in the router
// before the resolution code runs.
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RecoveryMiddleware(logger))
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(logger))

	r.Get("/", handlers.Home)
	r.Get("/health", handlers.HealthCheck)

	r.Group(func(r chi.Router) {
		r.Use(CORSMiddleware())
		r.Get("/api/v1/day/{date}", handlers.APIDay)
	})

	r.Route("/{year:[0-9]{4}}/{month:[0-9]{2}}", func(r chi.Router) {
		r.Get("/", handlers.Month)
		r.Get("/calendar.ics", handlers.MonthICS)
		r.Get("/{day:[0-9]{2}}/", handlers.Day)
	})

	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))

	return r
}
