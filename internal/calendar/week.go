package calendar

import (
	"fmt"
	"time"
)

// Week identifies the liturgical week a date falls in. Key is the opaque
// identifier the proper tables are keyed by; Sunday is the week's anchor
// Sunday (the Sunday on or before the date).
type Week struct {
	Key    string
	Sunday time.Time
}

// ResolveWeek maps a date to its liturgical week.
func ResolveWeek(date time.Time) Week {
	sunday := AnchorSunday(date)
	return Week{Key: weekKey(sunday), Sunday: sunday}
}

// AnchorSunday returns the Sunday on or before date, at midnight UTC.
func AnchorSunday(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// weekKey names the liturgical week anchored at a Sunday. The liturgical
// year runs Advent through the Trinity season; movable weeks hang off the
// Easter computus, fixed seasons off Christmas and Epiphany.
func weekKey(sunday time.Time) string {
	year := sunday.Year()
	advent := Advent(year)

	if !sunday.Before(advent) {
		christmas := time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)
		if sunday.Before(christmas) {
			return fmt.Sprintf("advent-%d", daysBetween(advent, sunday)/7+1)
		}
		// Sunday on or after Christmas Day.
		return "christmas-1"
	}

	epiphany := time.Date(year, time.January, 6, 0, 0, 0, 0, time.UTC)
	if sunday.Before(epiphany) {
		// January 1-5 belongs to Christmastide.
		return "christmas-2"
	}

	easter := Easter(year)
	days := daysBetween(easter, sunday)

	if days < -63 {
		// Sundays after Epiphany, up to Septuagesima.
		n := (daysBetween(epiphany, sunday) + 6) / 7
		if n == 0 {
			return "epiphany"
		}
		return fmt.Sprintf("epiphany-%d", n)
	}

	switch {
	case days == -63:
		return "septuagesima"
	case days == -56:
		return "sexagesima"
	case days == -49:
		return "quinquagesima"
	case days <= -14:
		return fmt.Sprintf("lent-%d", (days+42)/7+1)
	case days == -7:
		return "holy-week"
	case days == 0:
		return "easter"
	case days <= 42:
		return fmt.Sprintf("easter-%d", days/7)
	case days == 49:
		return "pentecost"
	case days == 56:
		return "trinity"
	default:
		return fmt.Sprintf("trinity-%d", days/7-8)
	}
}

// daysBetween returns b minus a in whole days. Both arguments are midnight
// UTC, so the division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
