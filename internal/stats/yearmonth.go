package stats

import (
	"fmt"
	"time"
)

const yearMonthLayout = "2006-01"

// YearMonth identifies a calendar month in a specific location.
type YearMonth struct {
	Year  int
	Month time.Month
	Loc   *time.Location
}

// NewYearMonth returns the month containing t, in t's location.
func NewYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month(), Loc: t.Location()}
}

// ParseYearMonth parses "YYYY-MM". A nil loc means time.Local.
func ParseYearMonth(s string, loc *time.Location) (YearMonth, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(yearMonthLayout, s, loc)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return NewYearMonth(t), nil
}

func (ym YearMonth) location() *time.Location {
	if ym.Loc == nil {
		return time.Local
	}
	return ym.Loc
}

// Start is midnight of the first day of the month.
func (ym YearMonth) Start() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, ym.location())
}

// End is midnight of the first day of the following month (exclusive).
func (ym YearMonth) End() time.Time {
	return ym.Start().AddDate(0, 1, 0)
}

func (ym YearMonth) Prev() YearMonth { return NewYearMonth(ym.Start().AddDate(0, -1, 0)) }
func (ym YearMonth) Next() YearMonth { return NewYearMonth(ym.End()) }

// Days returns the number of days in the month.
func (ym YearMonth) Days() int {
	return ym.End().AddDate(0, 0, -1).Day()
}

// Contains reports whether t falls in [Start, End).
func (ym YearMonth) Contains(t time.Time) bool {
	return !t.Before(ym.Start()) && t.Before(ym.End())
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
