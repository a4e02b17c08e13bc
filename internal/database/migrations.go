package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1ProperTables,
}

// migrationV1ProperTables creates the proper tables.
//
// Key design decisions:
//
// 1. SETS NOT DATES
//   - A proper_set row is one bundle from one source, keyed by either a
//     liturgical week ("advent-1", "trinity-13") or a fixed month-day
//     ("12-25"). Dates are resolved to keys at runtime; the tables never
//     store calendar years.
//
// 2. ORDER IS DATA
//   - propers.position preserves source-table order. Lookups are
//     first-match, so the importer's ordering is the display ordering.
//
// 3. COLOR ON THE SET
//   - The liturgical color is an attribute of the bundle, not of any
//     single proper. NULL means the source assigns no color (daily and
//     commemoration sets).
//
// 4. DAILY WEEK/MONTH SPLIT
//   - The daily source has both week-keyed and month-keyed sets. Load
//     returns week rows first; the two-item truncation downstream then
//     prefers the weekly readings.
const migrationV1ProperTables = `
-- Migration 001: proper tables

CREATE TABLE IF NOT EXISTS proper_sets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Which of the four bundles this set belongs to
    source TEXT NOT NULL CHECK (source IN (
        'lectionary', 'festivals', 'daily', 'commemorations'
    )),

    -- Exactly one key is set:
    -- week_key: liturgical week identifier ("advent-1", "easter-3", ...)
    -- date_key: fixed month-day ("12-25", "08-10")
    week_key TEXT,
    date_key TEXT,

    -- Liturgical color carried by the set ("Violet", "White", ...); NULL
    -- when the source assigns none
    color TEXT,

    CHECK ((week_key IS NULL) != (date_key IS NULL))
);

CREATE INDEX IF NOT EXISTS idx_proper_sets_week
    ON proper_sets (source, week_key);
CREATE INDEX IF NOT EXISTS idx_proper_sets_date
    ON proper_sets (source, date_key);

CREATE TABLE IF NOT EXISTS propers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    set_id INTEGER NOT NULL REFERENCES proper_sets(id) ON DELETE CASCADE,

    -- Source-table order within the set
    position INTEGER NOT NULL,

    -- Proper type code (0 title, 1 epistle, 2 gospel, 19 OT, 20 collect,
    -- 37 commemoration, 38/39 first/second reading, ...)
    type INTEGER NOT NULL,

    -- Citation text or, for a small set of non-reading types, HTML markup
    text TEXT NOT NULL,

    UNIQUE (set_id, position)
);

CREATE TABLE IF NOT EXISTS proper_types (
    type INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    is_reading INTEGER NOT NULL DEFAULT 0,
    is_viewable INTEGER NOT NULL DEFAULT 1
);
`
