package domain

import (
	"fmt"
	"math"
	"time"
)

// WorkSettings holds the expected working hours of one owner.
type WorkSettings struct {
	Owner                    string
	ExpectedWeeklyHours      float64
	ExpectedMonthlyHours     float64
	WorkDays                 WorkDays
	TrackLunchBreak          bool
	DefaultLunchBreakMinutes int
	State                    RegionCode
	ShowHolidays             bool
	UpdatedAt                time.Time
}

// DefaultWorkSettings returns the settings a new owner starts with.
func DefaultWorkSettings(owner string) *WorkSettings {
	return &WorkSettings{
		Owner:                    owner,
		ExpectedWeeklyHours:      40,
		ExpectedMonthlyHours:     160,
		WorkDays:                 WeekdaysMonToFri,
		TrackLunchBreak:          true,
		DefaultLunchBreakMinutes: 60,
		State:                    RegionNational,
		ShowHolidays:             true,
	}
}

// TargetFor returns the expected hours for the given period.
func (s *WorkSettings) TargetFor(p Period) float64 {
	if p == PeriodMonth {
		return s.ExpectedMonthlyHours
	}
	return s.ExpectedWeeklyHours
}

func (s *WorkSettings) Validate() error {
	switch {
	case !validHours(s.ExpectedWeeklyHours):
		return fmt.Errorf("expected weekly hours %.1f: %w", s.ExpectedWeeklyHours, ErrInvalidSettings)
	case !validHours(s.ExpectedMonthlyHours):
		return fmt.Errorf("expected monthly hours %.1f: %w", s.ExpectedMonthlyHours, ErrInvalidSettings)
	case s.DefaultLunchBreakMinutes < 0:
		return fmt.Errorf("lunch break minutes %d: %w", s.DefaultLunchBreakMinutes, ErrInvalidSettings)
	case !s.State.Valid():
		return fmt.Errorf("state %q: %w", s.State, ErrUnknownRegion)
	}
	return nil
}

func validHours(h float64) bool {
	return h >= 0 && !math.IsInf(h, 0)
}
