package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/clcmanhattan/lectionary/internal/propers"
)

// stubLoader returns a title bundle keyed by the week so cells are easy to
// tell apart.
type stubLoader struct {
	calls int
}

func (s *stubLoader) Load(_ context.Context, _ time.Time, week string) (propers.Set, error) {
	s.calls++
	return propers.Set{
		Lectionary: propers.Bundle{
			Color: "Green",
			Items: []propers.Proper{{Type: propers.TypeTitle, Text: week}},
		},
	}, nil
}

func TestBuildGrid_September2026(t *testing.T) {
	loader := &stubLoader{}

	// September 1, 2026 is a Tuesday; the month has 30 days.
	grid, err := BuildGrid(context.Background(), YearMonth{2026, 9}, loader)
	if err != nil {
		t.Fatalf("BuildGrid() error: %v", err)
	}

	if len(grid.Rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(grid.Rows))
	}
	for i, row := range grid.Rows {
		if len(row) != 7 {
			t.Errorf("row %d has %d cells, want 7", i, len(row))
		}
	}

	// Leading pad: Sunday and Monday columns of the first week are empty.
	if grid.Rows[0][0] != nil || grid.Rows[0][1] != nil {
		t.Error("leading pad cells are not empty")
	}
	if grid.Rows[0][2] == nil || grid.Rows[0][2].Date.Day() != 1 {
		t.Error("the 1st is not in the Tuesday column")
	}

	// Trailing pad: the 30th lands on Wednesday of the last row.
	last := grid.Rows[4]
	if last[3] == nil || last[3].Date.Day() != 30 {
		t.Errorf("the 30th is misplaced in the last row: %v", last[3])
	}
	if last[4] != nil || last[6] != nil {
		t.Error("trailing pad cells are not empty")
	}

	// Two loads per day: the day itself and its anchor Sunday.
	if loader.calls != 60 {
		t.Errorf("loader calls = %d, want 60", loader.calls)
	}
}

func TestBuildGrid_CellsCarryWeekKeys(t *testing.T) {
	grid, err := BuildGrid(context.Background(), YearMonth{2026, 12}, &stubLoader{})
	if err != nil {
		t.Fatalf("BuildGrid() error: %v", err)
	}

	// December 6, 2026 is the Second Sunday in Advent.
	var found bool
	for _, row := range grid.Rows {
		for _, cell := range row {
			if cell != nil && cell.Date.Day() == 6 {
				found = true
				if cell.Week != "advent-2" {
					t.Errorf("Dec 6 week = %q, want %q", cell.Week, "advent-2")
				}
			}
		}
	}
	if !found {
		t.Fatal("December 6 missing from the grid")
	}
}
