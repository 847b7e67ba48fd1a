package stats

import (
	"math"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
)

// DayStart returns midnight of t's calendar date in t's location.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the most recent Monday on or before t.
// A Sunday maps to the Monday six days earlier.
func WeekStart(t time.Time) time.Time {
	offset := domain.ISOWeekday(t.Weekday()) - 1
	return DayStart(t).AddDate(0, 0, -offset)
}

// MonthStart returns midnight of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// PeriodBounds returns the half-open range [start, end) of the week or
// month containing now.
func PeriodBounds(period domain.Period, now time.Time) (start, end time.Time) {
	if period == domain.PeriodMonth {
		start = MonthStart(now)
		return start, start.AddDate(0, 1, 0)
	}
	start = WeekStart(now)
	return start, start.AddDate(0, 0, 7)
}

// CountWorkDays counts the calendar days from from through to (both
// inclusive, compared by date) whose weekday is in workDays.
func CountWorkDays(from, to time.Time, workDays domain.WorkDays) int {
	last := DayStart(to)
	n := 0
	for d := DayStart(from); !d.After(last); d = d.AddDate(0, 0, 1) {
		if workDays.Contains(d.Weekday()) {
			n++
		}
	}
	return n
}

// RoundTenth rounds x half-up to one decimal place.
func RoundTenth(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Floor(x*10+0.5) / 10
}
