package calendar

import (
	"fmt"
	"time"
)

// timeNow is swapped out in tests; production code reads the wall clock on
// every call so "today" never goes stale in a long-lived process.
var timeNow = time.Now

// YearMonth identifies one month of the grid.
type YearMonth struct {
	Year  int
	Month int
}

// Next returns the following month, rolling the year over after December.
func (ym YearMonth) Next() YearMonth {
	if ym.Month == 12 {
		return YearMonth{Year: ym.Year + 1, Month: 1}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// Previous returns the preceding month, rolling the year back before
// January.
func (ym YearMonth) Previous() YearMonth {
	if ym.Month == 1 {
		return YearMonth{Year: ym.Year - 1, Month: 12}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// Path is the routing segment for the month grid. The month is always two
// digits.
func (ym YearMonth) Path() string {
	return fmt.Sprintf("/%d/%02d/", ym.Year, ym.Month)
}

// Label is the human heading for the month, e.g. "September 2026".
func (ym YearMonth) Label() string {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// DayPath is the routing segment for a single day. Month and day are always
// two digits.
func DayPath(date time.Time) string {
	return fmt.Sprintf("/%d/%02d/%02d/", date.Year(), int(date.Month()), date.Day())
}

// IsToday reports whether date is the current local calendar day. The clock
// is read on every call; the result is never cached.
func IsToday(date time.Time) bool {
	now := timeNow()
	return date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day()
}
