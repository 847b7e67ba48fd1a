package testutil

import (
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
)

// DefaultOwner is the owner used by fixtures unless overridden.
const DefaultOwner = "tester"

// Session options
type SessionOption func(*domain.WorkSession)

func WithOwner(owner string) SessionOption {
	return func(s *domain.WorkSession) {
		s.Owner = owner
	}
}

func WithNotes(n string) SessionOption {
	return func(s *domain.WorkSession) {
		s.Notes = n
	}
}

// WithOpenEnd leaves the session without an end time.
func WithOpenEnd() SessionOption {
	return func(s *domain.WorkSession) {
		s.EndTime = nil
	}
}

// NewTestSession builds a closed session starting at start and lasting d.
func NewTestSession(start time.Time, d time.Duration, opts ...SessionOption) *domain.WorkSession {
	start = start.UTC()
	end := start.Add(d)
	s := &domain.WorkSession{
		Owner:     DefaultOwner,
		StartTime: start,
		EndTime:   &end,
		CreatedAt: start,
		UpdatedAt: end,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Settings options
type SettingsOption func(*domain.WorkSettings)

func WithWeeklyHours(h float64) SettingsOption {
	return func(s *domain.WorkSettings) {
		s.ExpectedWeeklyHours = h
	}
}

func WithMonthlyHours(h float64) SettingsOption {
	return func(s *domain.WorkSettings) {
		s.ExpectedMonthlyHours = h
	}
}

func WithWorkDays(w domain.WorkDays) SettingsOption {
	return func(s *domain.WorkSettings) {
		s.WorkDays = w
	}
}

func WithState(r domain.RegionCode) SettingsOption {
	return func(s *domain.WorkSettings) {
		s.State = r
	}
}

func NewTestSettings(owner string, opts ...SettingsOption) *domain.WorkSettings {
	s := domain.DefaultWorkSettings(owner)
	s.UpdatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestHoliday(state domain.RegionCode, date, name string) domain.Holiday {
	return domain.Holiday{Date: date, Name: name, State: state}
}

func NewTestEntry(id int64, ts time.Time, typ domain.EntryType) *domain.WorkEntry {
	return &domain.WorkEntry{ID: id, Owner: DefaultOwner, Timestamp: ts.UTC(), Type: typ}
}

// FixedClock returns a clock function that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
