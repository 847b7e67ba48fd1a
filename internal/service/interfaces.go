package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/importer"
	"github.com/alexanderramin/timbang/internal/stats"
)

// Clock reports the current time. Services default to time.Now.
type Clock func() time.Time

// PageSize is the number of sessions per page returned by ListPage.
const PageSize = 10

// EditRequest carries a partial session update. Nil fields are left as is.
type EditRequest struct {
	Start *time.Time
	End   *time.Time
	Notes *string
}

// SessionPage is one page of an owner's sessions, newest first.
type SessionPage struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	Sessions   []*domain.WorkSession
}

type SessionService interface {
	// ClockIn opens a session at at, or now when at is nil.
	ClockIn(ctx context.Context, owner string, at *time.Time, notes string) (*domain.WorkSession, error)
	// ClockOut closes the open session at at, or now when at is nil.
	ClockOut(ctx context.Context, owner string, at *time.Time, notes string) (*domain.WorkSession, error)
	AddManual(ctx context.Context, owner string, start, end time.Time, notes string) (*domain.WorkSession, error)
	Edit(ctx context.Context, owner string, id int64, req EditRequest) (*domain.WorkSession, error)
	Delete(ctx context.Context, owner string, id int64) error
	Get(ctx context.Context, owner string, id int64) (*domain.WorkSession, error)
	// List returns sessions starting in [from, to), newest first. Nil bounds
	// are open.
	List(ctx context.Context, owner string, from, to *time.Time) ([]*domain.WorkSession, error)
	ListPage(ctx context.Context, owner string, page int) (*SessionPage, error)
	// Current returns the open session, or nil when the owner is clocked out.
	Current(ctx context.Context, owner string) (*domain.WorkSession, error)
}

type SettingsService interface {
	// Get returns the stored settings, persisting the defaults on first read.
	Get(ctx context.Context, owner string) (*domain.WorkSettings, error)
	Update(ctx context.Context, owner string, settings *domain.WorkSettings) (*domain.WorkSettings, error)
	// Patch applies the fields present in patch to the current settings.
	Patch(ctx context.Context, owner string, patch *importer.SettingsImport) (*domain.WorkSettings, error)
}

// Summary is the dashboard view of one owner at one instant.
type Summary struct {
	Now          time.Time
	Totals       stats.Totals
	Weekly       stats.Progress
	Monthly      stats.Progress
	Open         *domain.WorkSession
	OpenHours    float64
	Settings     *domain.WorkSettings
	SessionCount int
}

type StatsService interface {
	// Summary evaluates all windows in loc.
	Summary(ctx context.Context, owner string, loc *time.Location) (*Summary, error)
	Monthly(ctx context.Context, owner string, ym stats.YearMonth) (*stats.MonthlyStats, error)
}

type HolidayService interface {
	// List returns the holidays of state in year, or every stored year when
	// year is zero.
	List(ctx context.Context, state domain.RegionCode, year int) ([]domain.Holiday, error)
	// Refresh reloads the holiday table from the remote API and returns the
	// number of stored holidays. An empty response leaves the table as is.
	Refresh(ctx context.Context) (int, error)
	// EnsureLoaded refreshes only when no holidays are stored yet.
	EnsureLoaded(ctx context.Context) (bool, error)
	Index(ctx context.Context, state domain.RegionCode, ym stats.YearMonth) (domain.HolidayIndex, error)
}

type ExportService interface {
	// WriteCSV writes the sessions starting in [from, to) to w as CSV with
	// dates and times rendered in loc. It returns the number of rows written.
	WriteCSV(ctx context.Context, owner string, from, to *time.Time, loc *time.Location, w io.Writer) (int, error)
}

// ImportResult holds the outcome of an import.
type ImportResult struct {
	SessionCount      int
	OpenSessionCount  int
	EntryCount        int
	OrphanedClockOuts int
	SettingsImported  bool
}

type ImportService interface {
	ImportFile(ctx context.Context, owner, filePath string, loc *time.Location) (*ImportResult, error)
	ImportSessions(ctx context.Context, owner string, r io.Reader, loc *time.Location) (*ImportResult, error)
	// ImportLegacyEntries pairs a clock entry log into sessions and keeps the
	// raw entries alongside.
	ImportLegacyEntries(ctx context.Context, owner string, r io.Reader, loc *time.Location) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, owner string, schema *importer.ImportSchema, loc *time.Location) (*ImportResult, error)
}
