package beets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/voigtjr/rkbeets/core/track"
)

// flexible attributes this tool reads and maintains, with the defaults
// applied when a track has no row yet. Values are stored as text by
// beets; typed ones are parsed on load.
var flexDefaults = []struct {
	key     string
	def     any
	numeric bool
}{
	{"rating", 0, true},
	{"rkb-TrackID", 0, true},
	{"rkb-DateAdded", "1970-01-01", false},
	{"rkb-PlayCount", 0, true},
	{"rkb-Remixer", "", false},
	{"rkb-Mix", "", false},
	{"rkb-Colour", "", false},
}

// Store is a handle on an opened beets library database.
type Store struct {
	db *gorm.DB
}

// Open connects to the beets library SQLite file. The connection is
// verified with a bounded ping so a missing or unreadable library fails
// fast instead of at first query.
func Open(cfg Config) (*Store, error) {
	if cfg.Library == "" {
		return nil, fmt.Errorf("beets library path is required")
	}

	// Suppress GORM logging; the application logger reports outcomes.
	db, err := gorm.Open(sqlite.Open(cfg.Library), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open beets library: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// SQLite: a single writer connection avoids database-locked errors.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping beets library: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStore wraps an existing gorm connection. Used by tests to inject a
// mocked connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Items loads every track in the library as a record: fixed item columns
// first, then the flexible attributes with their defaults applied.
// Records whose path cannot be normalized are skipped and returned as a
// collected error list alongside the loaded records.
func (s *Store) Items(ctx context.Context) ([]*track.Record, []error, error) {
	// Attributes first: the store runs on a single connection, so the
	// items cursor must not be open while a second query runs.
	attrs, err := s.loadAttributes(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.db.WithContext(ctx).Raw(
		"SELECT id, path, title, artist, composer, album, grouping, genre, format, length, bitrate, samplerate, disc, track, year, comments, remixer, label FROM items ORDER BY id",
	).Rows()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var records []*track.Record
	var skipped []error

	for rows.Next() {
		var (
			id                             int64
			path                           []byte
			title, artist, composer, album string
			grouping, genre, format        string
			length                         float64
			bitrate, samplerate            int
			disc, trackNo, year            int
			comments, remixer, label       string
		)
		if err := rows.Scan(
			&id, &path, &title, &artist, &composer, &album, &grouping, &genre,
			&format, &length, &bitrate, &samplerate, &disc, &trackNo, &year,
			&comments, &remixer, &label,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan item row: %w", err)
		}

		rec, err := track.New(track.OriginTag, track.DecodePath(path))
		if err != nil {
			skipped = append(skipped, fmt.Errorf("item %d: %w", id, err))
			continue
		}

		rec.Set("id", id)
		rec.Set("title", title)
		rec.Set("artist", artist)
		rec.Set("composer", composer)
		rec.Set("album", album)
		rec.Set("grouping", grouping)
		rec.Set("genre", genre)
		rec.Set("format", format)
		rec.Set("length", length)
		rec.Set("bitrate", bitrate)
		rec.Set("samplerate", samplerate)
		rec.Set("disc", disc)
		rec.Set("track", trackNo)
		rec.Set("year", year)
		rec.Set("comments", comments)
		rec.Set("remixer", remixer)
		rec.Set("label", label)

		itemAttrs := attrs[id]
		for _, flex := range flexDefaults {
			raw, ok := itemAttrs[flex.key]
			if !ok {
				rec.Set(flex.key, flex.def)
				continue
			}
			if flex.numeric {
				n, err := strconv.Atoi(raw)
				if err != nil {
					skipped = append(skipped, fmt.Errorf("item %d: attribute %q: %w", id, flex.key, err))
					rec.Set(flex.key, flex.def)
					continue
				}
				rec.Set(flex.key, n)
				continue
			}
			rec.Set(flex.key, raw)
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return records, skipped, nil
}

// loadAttributes reads all flexible attribute rows this tool cares about
// in one pass, keyed by item id.
func (s *Store) loadAttributes(ctx context.Context) (map[int64]map[string]string, error) {
	keys := make([]string, len(flexDefaults))
	for i, flex := range flexDefaults {
		keys[i] = flex.key
	}

	rows, err := s.db.WithContext(ctx).Raw(
		"SELECT entity_id, key, value FROM item_attributes WHERE key IN ? ORDER BY entity_id", keys,
	).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query item attributes: %w", err)
	}
	defer rows.Close()

	attrs := make(map[int64]map[string]string)
	for rows.Next() {
		var (
			entityID   int64
			key, value string
		)
		if err := rows.Scan(&entityID, &key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan attribute row: %w", err)
		}
		if attrs[entityID] == nil {
			attrs[entityID] = make(map[string]string)
		}
		attrs[entityID][key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attributes: %w", err)
	}

	return attrs, nil
}

// SaveAttributes persists staged sync updates. Only flexible attributes
// are written; fixed item columns belong to beets. Returns the number of
// attribute rows written.
func (s *Store) SaveAttributes(ctx context.Context, records []*track.Record) (int, error) {
	written := 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			idValue, ok := rec.Get("id")
			if !ok {
				return fmt.Errorf("record %s has no item id", rec.Key())
			}
			id, ok := idValue.(int64)
			if !ok {
				return fmt.Errorf("record %s has non-integer item id %v", rec.Key(), idValue)
			}

			for _, flex := range flexDefaults {
				value, ok := rec.Get(flex.key)
				if !ok {
					continue
				}
				text := fmt.Sprintf("%v", value)

				res := tx.Exec(
					"UPDATE item_attributes SET value = ? WHERE entity_id = ? AND key = ?",
					text, id, flex.key,
				)
				if res.Error != nil {
					return fmt.Errorf("failed to update attribute %q for item %d: %w", flex.key, id, res.Error)
				}
				if res.RowsAffected == 0 {
					if err := tx.Exec(
						"INSERT INTO item_attributes (entity_id, key, value) VALUES (?, ?, ?)",
						id, flex.key, text,
					).Error; err != nil {
						return fmt.Errorf("failed to insert attribute %q for item %d: %w", flex.key, id, err)
					}
				}
				written++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}
