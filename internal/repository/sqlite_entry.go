package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timbang/internal/db"
	"github.com/alexanderramin/timbang/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: conn}
}

// Create inserts e. A zero ID lets SQLite assign one.
func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.WorkEntry) error {
	var id any
	if e.ID != 0 {
		id = e.ID
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO work_entries (id, owner, timestamp, type, notes) VALUES (?, ?, ?, ?, ?)`,
		id, e.Owner, db.FormatTime(e.Timestamp), string(e.Type), e.Notes)
	if err != nil {
		return fmt.Errorf("inserting work entry: %w", err)
	}
	if e.ID == 0 {
		if e.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("reading work entry id: %w", err)
		}
	}
	return nil
}

// ListByOwner returns the entries of owner in ID order.
func (r *SQLiteEntryRepo) ListByOwner(ctx context.Context, owner string) ([]domain.WorkEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner, timestamp, type, notes FROM work_entries WHERE owner = ? ORDER BY id`, owner)
	if err != nil {
		return nil, fmt.Errorf("listing work entries: %w", err)
	}
	defer rows.Close()

	var out []domain.WorkEntry
	for rows.Next() {
		var e domain.WorkEntry
		var ts, typ string
		if err := rows.Scan(&e.ID, &e.Owner, &ts, &typ, &e.Notes); err != nil {
			return nil, fmt.Errorf("scanning work entry: %w", err)
		}
		if e.Timestamp, err = db.ParseTime(ts); err != nil {
			return nil, err
		}
		e.Type = domain.EntryType(typ)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work entries: %w", err)
	}
	return out, nil
}

// Owners returns the distinct owners with legacy entries.
func (r *SQLiteEntryRepo) Owners(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT owner FROM work_entries ORDER BY owner`)
	if err != nil {
		return nil, fmt.Errorf("listing entry owners: %w", err)
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var o string
		if err := rows.Scan(&o); err != nil {
			return nil, fmt.Errorf("scanning entry owner: %w", err)
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

func (r *SQLiteEntryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM work_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting work entries: %w", err)
	}
	return n, nil
}

var (
	_ SessionRepo  = (*SQLiteSessionRepo)(nil)
	_ SettingsRepo = (*SQLiteSettingsRepo)(nil)
	_ HolidayRepo  = (*SQLiteHolidayRepo)(nil)
	_ EntryRepo    = (*SQLiteEntryRepo)(nil)
)
