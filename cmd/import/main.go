// Command import loads the proper tables from JSON data files into the
// SQLite database.
//
// Usage:
//
//	go run ./cmd/import -data data -db data/lectionary.db
//
// The data directory holds five files:
//
//	lectionary.json, festivals.json, daily.json, commemorations.json
//	    arrays of proper sets: {"week": "advent-1"} or {"date": "12-25"},
//	    an optional "color", and an ordered "propers" array of
//	    {"type": N, "text": "..."} entries
//	types.json
//	    array of {"type": N, "name": "...", "is_reading": bool,
//	    "is_viewable": bool} records
//
// The whole import runs in a single transaction; unique constraints make a
// second run fail rather than duplicate rows. To reimport, delete the
// database file first.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/clcmanhattan/lectionary/internal/database"
	"github.com/clcmanhattan/lectionary/internal/propers"
)

func main() {
	dataDir := flag.String("data", "data", "Directory holding the JSON data files")
	dbPath := flag.String("db", "data/lectionary.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(*dataDir, *dbPath, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete")
}

func run(dataDir, dbPath string, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	db, err := database.Open(dbPath, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Debug("migrations applied", slog.Int("count", migrated))

	var types []propers.Record
	if err := readJSON(filepath.Join(dataDir, "types.json"), &types); err != nil {
		return err
	}

	sources := make(map[string][]database.ImportSet, 4)
	for _, src := range database.Sources() {
		var sets []database.ImportSet
		if err := readJSON(filepath.Join(dataDir, src+".json"), &sets); err != nil {
			return err
		}
		sources[src] = sets
	}

	err = db.WithTx(ctx, func(tx *database.Tx) error {
		for _, rec := range types {
			if err := tx.InsertTypeRecord(ctx, rec); err != nil {
				return err
			}
		}

		for _, src := range database.Sources() {
			for _, set := range sources[src] {
				if err := tx.InsertProperSet(ctx, src, set); err != nil {
					return err
				}
			}
			logger.Info("imported source",
				slog.String("source", src),
				slog.Int("sets", len(sources[src])),
			)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import transaction: %w", err)
	}

	logger.Info("import finished",
		slog.Int("types", len(types)),
		slog.Duration("elapsed", time.Since(startTime)),
	)
	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
