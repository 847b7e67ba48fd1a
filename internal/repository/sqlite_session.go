package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/timbang/internal/db"
	"github.com/alexanderramin/timbang/internal/domain"
)

const sessionColumns = `id, owner, start_time, end_time, notes, created_at, updated_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

// Create inserts s and assigns its generated ID.
func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkSession) error {
	query := `INSERT INTO work_sessions (owner, start_time, end_time, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		s.Owner,
		db.FormatTime(s.StartTime),
		db.FormatNullableTime(s.EndTime),
		s.Notes,
		db.FormatTime(s.CreatedAt),
		db.FormatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting work session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading work session id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, owner string, id int64) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE id = ? AND owner = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id, owner))
}

// GetOpen returns the most recently started open session of owner.
func (r *SQLiteSessionRepo) GetOpen(ctx context.Context, owner string) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE owner = ? AND end_time IS NULL
		ORDER BY start_time DESC, id DESC LIMIT 1`
	return r.scanSession(r.db.QueryRowContext(ctx, query, owner))
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.WorkSession) error {
	query := `UPDATE work_sessions SET start_time = ?, end_time = ?, notes = ?, updated_at = ?
		WHERE id = ? AND owner = ?`
	res, err := r.db.ExecContext(ctx, query,
		db.FormatTime(s.StartTime),
		db.FormatNullableTime(s.EndTime),
		s.Notes,
		db.FormatTime(s.UpdatedAt),
		s.ID,
		s.Owner,
	)
	if err != nil {
		return fmt.Errorf("updating work session: %w", err)
	}
	return expectOneRow(res, "work session")
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, owner string, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_sessions WHERE id = ? AND owner = ?`, id, owner)
	if err != nil {
		return fmt.Errorf("deleting work session: %w", err)
	}
	return expectOneRow(res, "work session")
}

// ListByOwner returns all sessions of owner, newest first.
func (r *SQLiteSessionRepo) ListByOwner(ctx context.Context, owner string) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE owner = ? ORDER BY start_time DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by owner: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// ListBetween returns sessions starting in [from, to), oldest first.
func (r *SQLiteSessionRepo) ListBetween(ctx context.Context, owner string, from, to time.Time) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE owner = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time, id`
	rows, err := r.db.QueryContext(ctx, query, owner, db.FormatTime(from), db.FormatTime(to))
	if err != nil {
		return nil, fmt.Errorf("listing sessions between: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// ListPage returns one page of sessions, newest first.
func (r *SQLiteSessionRepo) ListPage(ctx context.Context, owner string, limit, offset int) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE owner = ? ORDER BY start_time DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, owner, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing session page: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) CountByOwner(ctx context.Context, owner string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM work_sessions WHERE owner = ?`, owner).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.WorkSession, error) {
	s, err := scanSessionRow(row)
	if err != nil {
		return nil, notFoundOr(err, "work session")
	}
	return s, nil
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.WorkSession, error) {
	var sessions []*domain.WorkSession
	for rows.Next() {
		s, err := scanSessionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func scanSessionRow(row rowScanner) (*domain.WorkSession, error) {
	var (
		s                            domain.WorkSession
		startStr, createdStr, updStr string
		endStr                       sql.NullString
	)
	if err := row.Scan(&s.ID, &s.Owner, &startStr, &endStr, &s.Notes, &createdStr, &updStr); err != nil {
		return nil, err
	}

	var err error
	if s.StartTime, err = db.ParseTime(startStr); err != nil {
		return nil, err
	}
	if s.EndTime, err = db.ParseNullableTime(endStr); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = db.ParseTime(createdStr); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = db.ParseTime(updStr); err != nil {
		return nil, err
	}
	return &s, nil
}
