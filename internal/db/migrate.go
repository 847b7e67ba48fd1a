package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/importer"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateLegacyEntries(db); err != nil {
		return fmt.Errorf("migrating legacy clock entries: %w", err)
	}
	return nil
}

// migrateLegacyEntries folds the flat clock-in/clock-out log into sessions.
// It only runs while work_sessions is still empty so a populated database is
// never duplicated.
func migrateLegacyEntries(db *sql.DB) error {
	ctx := context.Background()

	var entryCount, sessionCount int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM work_entries`).Scan(&entryCount); err != nil {
		return fmt.Errorf("counting work entries: %w", err)
	}
	if entryCount == 0 {
		return nil
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM work_sessions`).Scan(&sessionCount); err != nil {
		return fmt.Errorf("counting work sessions: %w", err)
	}
	if sessionCount > 0 {
		return nil
	}

	byOwner, owners, err := loadLegacyEntries(ctx, db)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, owner := range owners {
		res := importer.PairEntries(byOwner[owner])
		for _, s := range res.Sessions {
			if _, err := tx.ExecContext(ctx, `INSERT INTO work_sessions
				(owner, start_time, end_time, notes, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?)`,
				s.Owner,
				FormatTime(s.StartTime),
				FormatNullableTime(s.EndTime),
				s.Notes,
				FormatTime(s.CreatedAt),
				FormatTime(s.UpdatedAt),
			); err != nil {
				return fmt.Errorf("inserting migrated session for %s: %w", owner, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing legacy entry migration: %w", err)
	}
	committed = true
	return nil
}

// loadLegacyEntries reads every legacy entry grouped by owner. Rows are
// fully drained before any write so a single-connection pool is enough.
func loadLegacyEntries(ctx context.Context, db *sql.DB) (map[string][]domain.WorkEntry, []string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, owner, timestamp, type, notes FROM work_entries ORDER BY owner, id`)
	if err != nil {
		return nil, nil, fmt.Errorf("listing work entries: %w", err)
	}
	defer rows.Close()

	byOwner := make(map[string][]domain.WorkEntry)
	var owners []string
	for rows.Next() {
		var (
			e      domain.WorkEntry
			tsStr  string
			typStr string
		)
		if err := rows.Scan(&e.ID, &e.Owner, &tsStr, &typStr, &e.Notes); err != nil {
			return nil, nil, fmt.Errorf("scanning work entry: %w", err)
		}
		if e.Timestamp, err = ParseTime(tsStr); err != nil {
			return nil, nil, err
		}
		e.Type = domain.EntryType(typStr)
		if _, ok := byOwner[e.Owner]; !ok {
			owners = append(owners, e.Owner)
		}
		byOwner[e.Owner] = append(byOwner[e.Owner], e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating work entries: %w", err)
	}
	return byOwner, owners, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_sessions (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		owner      TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		CHECK(end_time IS NULL OR end_time >= start_time)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_work_sessions_owner_start ON work_sessions(owner, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_work_sessions_open ON work_sessions(owner) WHERE end_time IS NULL`,

	`CREATE TABLE IF NOT EXISTS work_settings (
		owner                       TEXT PRIMARY KEY,
		expected_weekly_hours       REAL NOT NULL DEFAULT 40,
		expected_monthly_hours      REAL NOT NULL DEFAULT 160,
		work_days                   TEXT NOT NULL DEFAULT '1,2,3,4,5',
		track_lunch_break           INTEGER NOT NULL DEFAULT 1,
		default_lunch_break_minutes INTEGER NOT NULL DEFAULT 60
		                            CHECK(default_lunch_break_minutes >= 0),
		state                       TEXT NOT NULL DEFAULT 'NATIONAL',
		updated_at                  TEXT NOT NULL
	)`,
	`ALTER TABLE work_settings ADD COLUMN show_holidays INTEGER NOT NULL DEFAULT 1`,

	`CREATE TABLE IF NOT EXISTS holidays (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		date        TEXT NOT NULL,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		state       TEXT NOT NULL,
		UNIQUE(state, date, name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_holidays_state_date ON holidays(state, date)`,

	`CREATE TABLE IF NOT EXISTS work_entries (
		id        INTEGER PRIMARY KEY,
		owner     TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		type      TEXT NOT NULL CHECK(type IN ('CLOCK_IN','CLOCK_OUT')),
		notes     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_work_entries_owner ON work_entries(owner, id)`,
}
