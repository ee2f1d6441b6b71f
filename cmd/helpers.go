package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/voigtjr/rkbeets/core/beets"
	"github.com/voigtjr/rkbeets/core/config"
	"github.com/voigtjr/rkbeets/core/logger"
	"github.com/voigtjr/rkbeets/core/rbxml"
	"github.com/voigtjr/rkbeets/core/reconcile"
	"github.com/voigtjr/rkbeets/core/track"

	"go.uber.org/zap"
)

// environment bundles what every command needs before doing real work.
type environment struct {
	cfg *config.Config
	log *zap.Logger
}

// setup loads configuration and builds the run-scoped logger.
func setup() (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &environment{cfg: cfg, log: logger.WithRunID(l)}, nil
}

// loadBeets opens the library database and loads every item as a record.
// Skipped rows are reported, not fatal.
func (e *environment) loadBeets(ctx context.Context) (*beets.Store, []*track.Record, error) {
	store, err := beets.Open(e.cfg.Beets)
	if err != nil {
		return nil, nil, err
	}

	records, skipped, err := store.Items(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load beets items: %w", err)
	}
	for _, skip := range skipped {
		e.log.Warn("skipped beets item", zap.Error(skip))
	}
	e.log.Info("loaded beets library",
		zap.String("library", e.cfg.Beets.Library),
		zap.Int("items", len(records)),
	)

	return store, records, nil
}

// loadRekordbox parses the collection XML, restricted to the configured
// music directory. The -r flag overrides the configured path.
func (e *environment) loadRekordbox() ([]*track.Record, error) {
	path := e.cfg.Rekordbox.File
	if rekordboxFile != "" {
		path = rekordboxFile
	}
	if path == "" {
		return nil, fmt.Errorf("no rekordbox collection file: set rekordbox.file or pass --rekordbox-file")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rekordbox collection: %w", err)
	}
	defer f.Close()

	records, skipped, err := rbxml.Read(f, e.cfg.Beets.Directory)
	if err != nil {
		return nil, err
	}
	for _, skip := range skipped {
		e.log.Warn("skipped rekordbox track", zap.Error(skip))
	}
	e.log.Info("loaded rekordbox collection",
		zap.String("file", path),
		zap.Int("tracks", len(records)),
	)

	return records, nil
}

// compileQuery turns positional query terms into a record predicate.
//
// A "field:value" term matches when that field's value contains the text,
// case-insensitively. A bare term matches when any field value (or the
// path key) contains it. All terms must match. No terms means no filter.
func compileQuery(args []string) reconcile.RecordFilter {
	if len(args) == 0 {
		return nil
	}

	type term struct {
		field string
		text  string
	}
	terms := make([]term, 0, len(args))
	for _, arg := range args {
		if field, text, ok := strings.Cut(arg, ":"); ok && field != "" {
			terms = append(terms, term{field: field, text: strings.ToLower(text)})
			continue
		}
		terms = append(terms, term{text: strings.ToLower(arg)})
	}

	return func(rec *track.Record) bool {
		for _, t := range terms {
			if t.field != "" {
				value, ok := rec.Get(t.field)
				if !ok || !strings.Contains(strings.ToLower(fmt.Sprintf("%v", value)), t.text) {
					return false
				}
				continue
			}

			hit := strings.Contains(rec.Key(), t.text)
			for _, name := range rec.Names() {
				if hit {
					break
				}
				value, _ := rec.Get(name)
				hit = strings.Contains(strings.ToLower(fmt.Sprintf("%v", value)), t.text)
			}
			if !hit {
				return false
			}
		}
		return true
	}
}

// filterRecords applies a predicate to a slice, nil meaning keep all.
func filterRecords(records []*track.Record, filter reconcile.RecordFilter) []*track.Record {
	if filter == nil {
		return records
	}
	out := make([]*track.Record, 0, len(records))
	for _, rec := range records {
		if filter(rec) {
			out = append(out, rec)
		}
	}
	return out
}
