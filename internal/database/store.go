package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/clcmanhattan/lectionary/internal/propers"
)

// Proper sources, one per bundle of a resolved day.
const (
	SourceLectionary     = "lectionary"
	SourceFestivals      = "festivals"
	SourceDaily          = "daily"
	SourceCommemorations = "commemorations"
)

// Sources lists all proper sources in import order.
func Sources() []string {
	return []string{SourceLectionary, SourceFestivals, SourceDaily, SourceCommemorations}
}

// Load returns the four proper bundles for a date within a liturgical week.
// It implements propers.Loader. Missing rows come back as empty bundles,
// never as an error.
//
// Week-keyed lectionary sets belong to the week's anchor Sunday only; on
// weekdays the lectionary bundle stays empty (date-keyed lectionary sets
// still match their exact date). The daily source applies its week-keyed
// sets to every day of the week.
func (db *DB) Load(ctx context.Context, date time.Time, week string) (propers.Set, error) {
	dateKey := date.Format("01-02")

	lectWeek := ""
	if date.Weekday() == time.Sunday {
		lectWeek = week
	}

	var set propers.Set
	for _, src := range Sources() {
		srcWeek := week
		if src == SourceLectionary {
			srcWeek = lectWeek
		}

		bundle, err := db.loadBundle(ctx, src, srcWeek, dateKey)
		if err != nil {
			return propers.Set{}, fmt.Errorf("load %s bundle: %w", src, err)
		}
		switch src {
		case SourceLectionary:
			set.Lectionary = bundle
		case SourceFestivals:
			set.Festivals = bundle
		case SourceDaily:
			set.Daily = bundle
		case SourceCommemorations:
			set.Commemorations = bundle
		}
	}
	return set, nil
}

// loadBundle collects every proper for a source matching the week or date
// key. Week-keyed sets come first so weekly daily readings precede the
// monthly ones; within a set the import position is preserved.
func (db *DB) loadBundle(ctx context.Context, source, week, dateKey string) (propers.Bundle, error) {
	query := `
		SELECT s.color, p.type, p.text
		FROM proper_sets s
		JOIN propers p ON p.set_id = s.id
		WHERE s.source = ?
		  AND (s.week_key = ? OR s.date_key = ?)
		ORDER BY
		  CASE WHEN s.week_key IS NOT NULL THEN 0 ELSE 1 END,
		  s.id,
		  p.position
	`

	rows, err := db.QueryContext(ctx, query, source, week, dateKey)
	if err != nil {
		return propers.Bundle{}, fmt.Errorf("query propers: %w", err)
	}
	defer rows.Close()

	var bundle propers.Bundle
	for rows.Next() {
		var color sql.NullString
		var p propers.Proper
		if err := rows.Scan(&color, &p.Type, &p.Text); err != nil {
			return propers.Bundle{}, fmt.Errorf("scan proper: %w", err)
		}
		if bundle.Color == "" && color.Valid {
			bundle.Color = color.String
		}
		bundle.Items = append(bundle.Items, p)
	}
	if err := rows.Err(); err != nil {
		return propers.Bundle{}, fmt.Errorf("iterate propers: %w", err)
	}

	return bundle, nil
}

// TypeDescriptors returns every row of the type table. Loaded once at
// startup to build the display registry.
func (db *DB) TypeDescriptors(ctx context.Context) ([]propers.Record, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT type, name, is_reading, is_viewable
		FROM proper_types
		ORDER BY type
	`)
	if err != nil {
		return nil, fmt.Errorf("query proper types: %w", err)
	}
	defer rows.Close()

	var records []propers.Record
	for rows.Next() {
		var rec propers.Record
		if err := rows.Scan(&rec.Type, &rec.Name, &rec.IsReading, &rec.IsViewable); err != nil {
			return nil, fmt.Errorf("scan proper type: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proper types: %w", err)
	}

	return records, nil
}

// =============================================================================
// Import Writes
// =============================================================================

// ImportSet is one bundle from a source data file. Exactly one of Week and
// Date is set.
type ImportSet struct {
	Week    string           `json:"week,omitempty"`
	Date    string           `json:"date,omitempty"`
	Color   string           `json:"color,omitempty"`
	Propers []propers.Proper `json:"propers"`
}

// InsertProperSet writes one set and its propers inside a transaction.
func (tx *Tx) InsertProperSet(ctx context.Context, source string, set ImportSet) error {
	if (set.Week == "") == (set.Date == "") {
		return fmt.Errorf("set in %s must have exactly one of week and date", source)
	}

	weekKey := sql.NullString{String: set.Week, Valid: set.Week != ""}
	dateKey := sql.NullString{String: set.Date, Valid: set.Date != ""}
	color := sql.NullString{String: set.Color, Valid: set.Color != ""}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO proper_sets (source, week_key, date_key, color)
		VALUES (?, ?, ?, ?)
	`, source, weekKey, dateKey, color)
	if err != nil {
		return fmt.Errorf("insert proper set: %w", err)
	}

	setID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("proper set id: %w", err)
	}

	for i, p := range set.Propers {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO propers (set_id, position, type, text)
			VALUES (?, ?, ?, ?)
		`, setID, i, p.Type, p.Text)
		if err != nil {
			return fmt.Errorf("insert proper %d: %w", i, err)
		}
	}

	return nil
}

// InsertTypeRecord writes one row of the type table.
func (tx *Tx) InsertTypeRecord(ctx context.Context, rec propers.Record) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO proper_types (type, name, is_reading, is_viewable)
		VALUES (?, ?, ?, ?)
	`, rec.Type, rec.Name, rec.IsReading, rec.IsViewable)
	if err != nil {
		return fmt.Errorf("insert type %d: %w", rec.Type, err)
	}
	return nil
}
