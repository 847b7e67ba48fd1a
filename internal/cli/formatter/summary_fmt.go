package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timbang/internal/service"
	"github.com/alexanderramin/timbang/internal/stats"
)

const barWidth = 24

// FormatSummary renders the work summary: today, this week, this month and
// the all-time total, with progress against the configured targets.
func FormatSummary(s *service.Summary, loc *time.Location) string {
	var b strings.Builder

	b.WriteString(ClockPill(s.Open != nil))
	if s.Open != nil {
		fmt.Fprintf(&b, "  %s %s", Dim("since"), FormatDateTime(s.Open.StartTime.In(loc)))
		fmt.Fprintf(&b, "  %s", StyleGreen.Render(FormatHours(s.OpenHours)))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%-12s %s\n", "Today", Bold(FormatHours(s.Totals.Daily)))
	writeProgress(&b, "This Week", s.Weekly)
	writeProgress(&b, "This Month", s.Monthly)
	fmt.Fprintf(&b, "%-12s %s  %s\n", "Total", Bold(FormatHours(s.Totals.Total)),
		Dim(fmt.Sprintf("%d sessions", s.SessionCount)))

	return RenderBox("Work Summary", strings.TrimRight(b.String(), "\n"))
}

func writeProgress(b *strings.Builder, label string, p stats.Progress) {
	fmt.Fprintf(b, "%-12s %s / %s  %s\n", label,
		Bold(FormatHours(p.CurrentHours)), FormatHours(p.TargetHours), StatusPill(p.Status))
	fmt.Fprintf(b, "%-12s %s\n", "", RenderProgress(ratio(p.CurrentHours, p.TargetHours), barWidth, p.Status))
	fmt.Fprintf(b, "%-12s %s\n", "", Dim(fmt.Sprintf("expected %s by today (%d/%d work days)",
		FormatHours(p.ExpectedHours), p.ElapsedWorkDays, p.TotalWorkDays)))
	fmt.Fprintf(b, "%-12s %s\n\n", "", ProgressColor(p.Status).Render(p.Message))
}
