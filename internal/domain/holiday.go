package domain

import "time"

// HolidayDateLayout is the calendar date format used for holiday dates.
const HolidayDateLayout = "2006-01-02"

// Holiday is a public holiday for one region.
type Holiday struct {
	Date        string
	Name        string
	Description string
	State       RegionCode
}

// HolidayIndex groups holidays by their date string.
type HolidayIndex map[string][]Holiday

// NewHolidayIndex builds an index over the given holidays.
func NewHolidayIndex(holidays []Holiday) HolidayIndex {
	idx := make(HolidayIndex, len(holidays))
	for _, h := range holidays {
		idx[h.Date] = append(idx[h.Date], h)
	}
	return idx
}

// On returns the holidays falling on t's calendar date in t's location.
func (idx HolidayIndex) On(t time.Time) []Holiday {
	return idx[t.Format(HolidayDateLayout)]
}
