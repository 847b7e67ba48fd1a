package stats

import (
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
)

// Totals holds worked hours per window, each rounded to 0.1h.
type Totals struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Total   float64 `json:"total"`
}

// ComputeTotals sums the durations of closed sessions into the today, this
// week, this month and all-time windows relative to now. A session belongs
// to a window when its start is at or after the window's lower boundary.
// Open and malformed sessions are ignored.
func ComputeTotals(sessions []*domain.WorkSession, now time.Time) Totals {
	today := DayStart(now)
	weekStart := WeekStart(now)
	monthStart := MonthStart(now)

	var daily, weekly, monthly, total time.Duration
	for _, s := range sessions {
		if s == nil || !s.IsClosed() {
			continue
		}
		d := s.Duration()
		total += d
		if !s.StartTime.Before(today) {
			daily += d
		}
		if !s.StartTime.Before(weekStart) {
			weekly += d
		}
		if !s.StartTime.Before(monthStart) {
			monthly += d
		}
	}

	return Totals{
		Daily:   RoundTenth(daily.Hours()),
		Weekly:  RoundTenth(weekly.Hours()),
		Monthly: RoundTenth(monthly.Hours()),
		Total:   RoundTenth(total.Hours()),
	}
}
