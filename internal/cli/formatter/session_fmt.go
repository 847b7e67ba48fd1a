package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/service"
)

// FormatSession renders a one-line description of s.
func FormatSession(s *domain.WorkSession, loc *time.Location) string {
	line := fmt.Sprintf("#%d  %s", s.ID, FormatTimeRange(s.StartTime.In(loc), inLoc(s.EndTime, loc)))
	if s.IsOpen() {
		line += "  " + ClockPill(true)
	} else {
		line += "  " + Bold(FormatDuration(s.Duration()))
	}
	if s.Notes != "" {
		line += "  " + Dim(Truncate(s.Notes, 50))
	}
	return line
}

// FormatSessionTable renders sessions as a table in the given order.
func FormatSessionTable(sessions []*domain.WorkSession, loc *time.Location, now time.Time) string {
	t := Table{
		Headers:    []string{"ID", "DAY", "TIME", "HOURS", "NOTES"},
		RightAlign: map[int]bool{0: true, 3: true},
	}
	for _, s := range sessions {
		hours := FormatHours(s.Hours())
		if s.IsOpen() {
			hours = StyleGreen.Render("running")
		}
		t.Rows = append(t.Rows, []string{
			Dim(fmt.Sprintf("%d", s.ID)),
			HumanDate(s.StartTime.In(loc), now.In(loc)),
			FormatTimeRange(s.StartTime.In(loc), inLoc(s.EndTime, loc)),
			hours,
			Dim(Truncate(s.Notes, 40)),
		})
	}
	return t.Render()
}

// FormatSessionPage renders one page of the session history.
func FormatSessionPage(p *service.SessionPage, loc *time.Location, now time.Time) string {
	if p.Total == 0 {
		return Dim("No sessions recorded yet.")
	}
	footer := Dim(fmt.Sprintf("page %d of %d · %d sessions", p.Page+1, max(p.TotalPages, 1), p.Total))
	if len(p.Sessions) == 0 {
		return footer
	}
	return FormatSessionTable(p.Sessions, loc, now) + footer
}

func inLoc(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	x := t.In(loc)
	return &x
}
