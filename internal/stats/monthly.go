package stats

import (
	"sort"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
)

const (
	dateKeyLayout  = "2006-01-02"
	dayLabelLayout = "Mon, Jan 2"
)

// DayHours is one entry of the daily breakdown.
type DayHours struct {
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Sessions int     `json:"sessions"`
}

// WeekHours is one entry of the weekly breakdown. WeekStart is the date of
// the Sunday that opens the week.
type WeekHours struct {
	WeekStart string  `json:"weekStart"`
	Hours     float64 `json:"hours"`
	Days      int     `json:"days"`
}

// SessionRecord describes the longest or shortest session of a month.
type SessionRecord struct {
	SessionID int64   `json:"sessionId"`
	Hours     float64 `json:"hours"`
	Date      string  `json:"date"`
	Label     string  `json:"label"`
	Notes     string  `json:"notes"`
}

// DayRecord describes the most or least productive day of a month.
type DayRecord struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// MonthlyStats is the aggregate view of one calendar month.
type MonthlyStats struct {
	Month                string        `json:"month"`
	TotalHours           float64       `json:"totalHours"`
	SessionCount         int           `json:"sessionCount"`
	AverageSessionHours  float64       `json:"averageSessionHours"`
	WorkedDays           int           `json:"workedDays"`
	AverageDailyHours    float64       `json:"averageDailyHours"`
	Daily                []DayHours    `json:"dailyBreakdown"`
	Weekly               []WeekHours   `json:"weeklyBreakdown"`
	Longest              SessionRecord `json:"longestSession"`
	Shortest             SessionRecord `json:"shortestSession"`
	MostProductive       DayRecord     `json:"mostProductiveDay"`
	LeastProductive      DayRecord     `json:"leastProductiveDay"`
	TargetHours          float64       `json:"targetHours"`
	TargetAchievementPct float64       `json:"targetAchievementPct"`
	OvertimeHours        float64       `json:"overtimeHours"`
	UndertimeHours       float64       `json:"undertimeHours"`
}

// ComputeMonthlyStats aggregates the closed sessions that start inside ym.
// Day and week keys are calendar dates in ym's location. A month without
// sessions yields zero values and empty breakdowns.
func ComputeMonthlyStats(sessions []*domain.WorkSession, ym YearMonth, targetHours float64) MonthlyStats {
	out := MonthlyStats{
		Month:  ym.String(),
		Daily:  []DayHours{},
		Weekly: []WeekHours{},
	}

	loc := ym.location()
	var (
		total    float64
		longest  *domain.WorkSession
		shortest *domain.WorkSession
		daily    = map[string]*DayHours{}
		dayOrder []string
	)

	for _, s := range sessions {
		if s == nil || !s.IsClosed() || !ym.Contains(s.StartTime) {
			continue
		}
		h := s.Hours()
		total += h
		out.SessionCount++

		if longest == nil || s.Duration() > longest.Duration() {
			longest = s
		}
		if shortest == nil || s.Duration() < shortest.Duration() {
			shortest = s
		}

		key := s.StartTime.In(loc).Format(dateKeyLayout)
		d, ok := daily[key]
		if !ok {
			d = &DayHours{Date: key}
			daily[key] = d
			dayOrder = append(dayOrder, key)
		}
		d.Hours += h
		d.Sessions++
	}

	if out.SessionCount == 0 {
		return out
	}

	out.TotalHours = total
	out.AverageSessionHours = total / float64(out.SessionCount)
	out.WorkedDays = len(daily)
	out.AverageDailyHours = total / float64(out.WorkedDays)
	out.Longest = sessionRecord(longest, loc)
	out.Shortest = sessionRecord(shortest, loc)

	// Records over days follow first-encountered order so ties resolve to the
	// earliest day seen in the input.
	most, least := daily[dayOrder[0]], daily[dayOrder[0]]
	for _, key := range dayOrder[1:] {
		d := daily[key]
		if d.Hours > most.Hours {
			most = d
		}
		if d.Hours < least.Hours {
			least = d
		}
	}
	out.MostProductive = dayRecord(most, loc)
	out.LeastProductive = dayRecord(least, loc)

	sorted := append([]string(nil), dayOrder...)
	sort.Strings(sorted)
	weekly := map[string]*WeekHours{}
	var weekOrder []string
	for _, key := range sorted {
		d := daily[key]
		out.Daily = append(out.Daily, *d)

		wk := sundayOf(key, loc)
		w, ok := weekly[wk]
		if !ok {
			w = &WeekHours{WeekStart: wk}
			weekly[wk] = w
			weekOrder = append(weekOrder, wk)
		}
		w.Hours += d.Hours
		w.Days++
	}
	for _, wk := range weekOrder {
		out.Weekly = append(out.Weekly, *weekly[wk])
	}

	if targetHours > 0 {
		out.TargetHours = targetHours
		out.TargetAchievementPct = total / targetHours * 100
		if total > targetHours {
			out.OvertimeHours = total - targetHours
		} else {
			out.UndertimeHours = targetHours - total
		}
	}
	return out
}

func sessionRecord(s *domain.WorkSession, loc *time.Location) SessionRecord {
	start := s.StartTime.In(loc)
	return SessionRecord{
		SessionID: s.ID,
		Hours:     s.Hours(),
		Date:      start.Format(dateKeyLayout),
		Label:     start.Format(dayLabelLayout),
		Notes:     s.Notes,
	}
}

func dayRecord(d *DayHours, loc *time.Location) DayRecord {
	return DayRecord{Date: d.Date, Label: dayLabel(d.Date, loc), Hours: d.Hours}
}

func dayLabel(key string, loc *time.Location) string {
	t, err := time.ParseInLocation(dateKeyLayout, key, loc)
	if err != nil {
		return key
	}
	return t.Format(dayLabelLayout)
}

// sundayOf returns the date key of the Sunday on or before the given date key.
func sundayOf(key string, loc *time.Location) string {
	t, err := time.ParseInLocation(dateKeyLayout, key, loc)
	if err != nil {
		return key
	}
	return t.AddDate(0, 0, -int(t.Weekday())).Format(dateKeyLayout)
}
