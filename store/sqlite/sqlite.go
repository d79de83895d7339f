/*
Package sqlite provides a SQLite-backed store for the engine's reference
data: award definitions and the holiday calendar.

PURPOSE:
  The calculation core is pure and keeps no state; what it needs at
  startup is reference data. This store holds exactly that - award JSON
  documents and holiday rows - and implements the collaborator interfaces
  the core consumes (pay.HolidayCalendar, catalog loading). Computed
  breakdowns are never persisted; they are outputs for the host to render.

KEY TABLES:
  awards:    Award definitions as JSON documents (factory schema)
  holidays:  Public and school holiday dates

CONCURRENCY:
  Uses sync.RWMutex for thread-safety around the connection. Calendar
  queries are read-only and frequent; writes happen at configuration time.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so concurrent calendar
  reads don't block holiday maintenance.

USAGE:
  store, err := sqlite.New("./data/awards.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  catalog, err := store.LoadCatalog(ctx)
  calc := costing.NewCalculator(store) // store IS the holiday calendar

SEE ALSO:
  - pay/daytype.go: HolidayCalendar interface
  - factory/award.go: The JSON document schema
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/award-engine/award"
	"github.com/warp/award-engine/factory"
	"github.com/warp/award-engine/pay"
)

// Store holds award definitions and holidays in SQLite.
type Store struct {
	db      *sql.DB
	mu      sync.RWMutex
	factory *factory.AwardFactory
}

// New creates a store at the given path. Use ":memory:" for tests.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, factory: factory.NewAwardFactory()}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS awards (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		document TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS holidays (
		id   TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL CHECK (type IN ('public', 'school'))
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_date ON holidays(date);
	CREATE INDEX IF NOT EXISTS idx_holidays_type_date ON holidays(type, date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// AWARDS
// =============================================================================

// SaveAward upserts an award definition as a JSON document.
func (s *Store) SaveAward(ctx context.Context, def *award.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.factory.ToJSON(def)
	blob, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode award %s: %w", def.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO awards (id, name, document) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, document = excluded.document`,
		def.ID, def.Name, string(blob))
	if err != nil {
		return fmt.Errorf("failed to save award %s: %w", def.ID, err)
	}
	return nil
}

// AwardByID loads one award definition.
func (s *Store) AwardByID(ctx context.Context, id string) (*award.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var blob string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM awards WHERE id = ?`, id).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, &pay.AwardNotFoundError{AwardID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load award %s: %w", id, err)
	}

	return s.factory.ParseAward(blob)
}

// LoadCatalog loads every stored award into an immutable catalog.
func (s *Store) LoadCatalog(ctx context.Context) (*award.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT document FROM awards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list awards: %w", err)
	}
	defer rows.Close()

	var defs []*award.Definition
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		def, err := s.factory.ParseAward(blob)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return award.NewCatalog(defs...), nil
}

// =============================================================================
// HOLIDAYS - implements pay.HolidayCalendar
// =============================================================================

// AddHoliday inserts a holiday and returns its generated id.
func (s *Store) AddHoliday(ctx context.Context, h pay.Holiday) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO holidays (id, date, name, type) VALUES (?, ?, ?, ?)`,
		id, h.Date.String(), h.Name, string(h.Type))
	if err != nil {
		return "", fmt.Errorf("failed to add holiday: %w", err)
	}
	return id, nil
}

// DeleteHoliday removes a holiday by id.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = ?`, id)
	return err
}

func (s *Store) hasHoliday(date pay.Date, typ pay.HolidayType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(1) FROM holidays WHERE date = ? AND type = ?`,
		date.String(), string(typ)).Scan(&n)
	return err == nil && n > 0
}

// IsPublicHoliday implements pay.HolidayCalendar.
func (s *Store) IsPublicHoliday(date pay.Date) bool {
	return s.hasHoliday(date, pay.HolidayPublic)
}

// IsSchoolHoliday implements pay.HolidayCalendar.
func (s *Store) IsSchoolHoliday(date pay.Date) bool {
	return s.hasHoliday(date, pay.HolidaySchool)
}

// HolidaysInRange implements pay.HolidayCalendar.
func (s *Store) HolidaysInRange(from, to pay.Date) []pay.Holiday {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT date, name, type FROM holidays WHERE date >= ? AND date <= ? ORDER BY date`,
		from.String(), to.String())
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []pay.Holiday
	for rows.Next() {
		var dateStr, name, typ string
		if err := rows.Scan(&dateStr, &name, &typ); err != nil {
			continue
		}
		date, err := pay.ParseDate(dateStr)
		if err != nil {
			continue
		}
		out = append(out, pay.Holiday{Date: date, Name: name, Type: pay.HolidayType(typ)})
	}
	return out
}

var _ pay.HolidayCalendar = (*Store)(nil)

// =============================================================================
// SEEDING
// =============================================================================

// SeedPresets stores the preset awards when the awards table is empty,
// so a fresh server has something to cost against.
func (s *Store) SeedPresets(ctx context.Context) error {
	s.mu.RLock()
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM awards`).Scan(&n)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, def := range []*award.Definition{
		award.SocialCareAward("social-care"),
		award.RetailAward("retail"),
	} {
		if err := s.SaveAward(ctx, def); err != nil {
			return err
		}
	}
	return nil
}
