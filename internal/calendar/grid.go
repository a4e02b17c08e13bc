package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/clcmanhattan/lectionary/internal/propers"
)

// Grid is the month view: rows of exactly seven cells, Sunday first. A nil
// cell pads the rows so the 1st lands on its weekday and the last row is
// complete. Rebuilt from scratch on every request.
type Grid struct {
	YearMonth YearMonth
	Rows      [][]*propers.ResolvedDay
}

// BuildGrid resolves every day of the month and lays them out in weeks.
func BuildGrid(ctx context.Context, ym YearMonth, loader propers.Loader) (*Grid, error) {
	first := time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := &Grid{YearMonth: ym}
	row := make([]*propers.ResolvedDay, 7)
	col := int(first.Weekday())

	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := time.Date(ym.Year, time.Month(ym.Month), dayNum, 0, 0, 0, 0, time.UTC)
		week := ResolveWeek(date)

		day, err := propers.ResolveDay(ctx, loader, date, week.Key, week.Sunday)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", date.Format("2006-01-02"), err)
		}

		row[col] = &day
		col++
		if col == 7 {
			grid.Rows = append(grid.Rows, row)
			row = make([]*propers.ResolvedDay, 7)
			col = 0
		}
	}

	if col > 0 {
		grid.Rows = append(grid.Rows, row)
	}
	return grid, nil
}
