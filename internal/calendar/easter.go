// Package calendar maps calendar dates onto the one-year historic
// lectionary: the liturgical week a date belongs to, that week's anchor
// Sunday, and the month arithmetic behind grid navigation.
package calendar

import "time"

// Easter returns Easter Sunday for a year, using the Gregorian computus
// (Oudin's method, valid for all Gregorian years).
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Advent returns the First Sunday of Advent for a year: the Sunday closest
// to November 30, which always falls between November 27 and December 3.
func Advent(year int) time.Time {
	nov30 := time.Date(year, time.November, 30, 0, 0, 0, 0, time.UTC)
	return nov30.AddDate(0, 0, -int(nov30.Weekday()))
}
