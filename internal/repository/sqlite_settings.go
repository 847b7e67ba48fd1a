package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timbang/internal/db"
	"github.com/alexanderramin/timbang/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, owner string) (*domain.WorkSettings, error) {
	query := `SELECT owner, expected_weekly_hours, expected_monthly_hours, work_days,
		track_lunch_break, default_lunch_break_minutes, state, show_holidays, updated_at
		FROM work_settings WHERE owner = ?`
	row := r.db.QueryRowContext(ctx, query, owner)

	var (
		s                       domain.WorkSettings
		workDays, state, upd    string
		trackLunch, showHoliday int
	)
	err := row.Scan(
		&s.Owner,
		&s.ExpectedWeeklyHours,
		&s.ExpectedMonthlyHours,
		&workDays,
		&trackLunch,
		&s.DefaultLunchBreakMinutes,
		&state,
		&showHoliday,
		&upd,
	)
	if err != nil {
		return nil, notFoundOr(err, "work settings")
	}

	if s.WorkDays, err = domain.ParseWorkDays(workDays); err != nil {
		return nil, fmt.Errorf("parsing stored work days: %w", err)
	}
	if s.UpdatedAt, err = db.ParseTime(upd); err != nil {
		return nil, err
	}
	s.TrackLunchBreak = intToBool(trackLunch)
	s.ShowHolidays = intToBool(showHoliday)
	s.State = domain.RegionCode(state)
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.WorkSettings) error {
	query := `INSERT INTO work_settings (owner, expected_weekly_hours, expected_monthly_hours,
		work_days, track_lunch_break, default_lunch_break_minutes, state, show_holidays, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(owner) DO UPDATE SET
			expected_weekly_hours = excluded.expected_weekly_hours,
			expected_monthly_hours = excluded.expected_monthly_hours,
			work_days = excluded.work_days,
			track_lunch_break = excluded.track_lunch_break,
			default_lunch_break_minutes = excluded.default_lunch_break_minutes,
			state = excluded.state,
			show_holidays = excluded.show_holidays,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.Owner,
		s.ExpectedWeeklyHours,
		s.ExpectedMonthlyHours,
		s.WorkDays.String(),
		boolToInt(s.TrackLunchBreak),
		s.DefaultLunchBreakMinutes,
		string(s.State),
		boolToInt(s.ShowHolidays),
		db.FormatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting work settings: %w", err)
	}
	return nil
}
