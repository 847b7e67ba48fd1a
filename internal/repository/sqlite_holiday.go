package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/timbang/internal/db"
	"github.com/alexanderramin/timbang/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo using a SQLite database.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(conn db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: conn}
}

// ReplaceAll deletes every stored holiday and inserts the given ones.
// Callers run it inside a unit of work so readers never see an empty table.
func (r *SQLiteHolidayRepo) ReplaceAll(ctx context.Context, holidays []domain.Holiday) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM holidays`); err != nil {
		return fmt.Errorf("clearing holidays: %w", err)
	}
	query := `INSERT INTO holidays (date, name, description, state) VALUES (?, ?, ?, ?)
		ON CONFLICT(state, date, name) DO UPDATE SET description = excluded.description`
	for _, h := range holidays {
		if _, err := r.db.ExecContext(ctx, query, h.Date, h.Name, h.Description, string(h.State)); err != nil {
			return fmt.Errorf("inserting holiday %s %s: %w", h.State, h.Date, err)
		}
	}
	return nil
}

func (r *SQLiteHolidayRepo) ListByState(ctx context.Context, state domain.RegionCode) ([]domain.Holiday, error) {
	query := `SELECT date, name, description, state FROM holidays WHERE state = ? ORDER BY date, name`
	rows, err := r.db.QueryContext(ctx, query, string(state))
	if err != nil {
		return nil, fmt.Errorf("listing holidays by state: %w", err)
	}
	defer rows.Close()
	return scanHolidays(rows)
}

// ListBetween returns holidays of state whose date falls in [from, to).
// Dates are compared as calendar dates of from and to.
func (r *SQLiteHolidayRepo) ListBetween(ctx context.Context, state domain.RegionCode, from, to time.Time) ([]domain.Holiday, error) {
	query := `SELECT date, name, description, state FROM holidays
		WHERE state = ? AND date >= ? AND date < ? ORDER BY date, name`
	rows, err := r.db.QueryContext(ctx, query, string(state),
		from.Format(domain.HolidayDateLayout), to.Format(domain.HolidayDateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing holidays between: %w", err)
	}
	defer rows.Close()
	return scanHolidays(rows)
}

func (r *SQLiteHolidayRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM holidays`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting holidays: %w", err)
	}
	return n, nil
}

func scanHolidays(rows *sql.Rows) ([]domain.Holiday, error) {
	var out []domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		var state string
		if err := rows.Scan(&h.Date, &h.Name, &h.Description, &state); err != nil {
			return nil, fmt.Errorf("scanning holiday row: %w", err)
		}
		h.State = domain.RegionCode(state)
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return out, nil
}
