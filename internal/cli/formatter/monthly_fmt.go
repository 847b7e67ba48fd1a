package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/stats"
)

// FormatMonthly renders the monthly summary of m.
func FormatMonthly(m *stats.MonthlyStats, ym stats.YearMonth) string {
	title := "Monthly Summary · " + ym.Start().Format("January 2006")
	if m.SessionCount == 0 {
		return RenderBox(title, Dim("No completed sessions this month."))
	}

	var b strings.Builder
	b.WriteString(Header("Overview") + "\n")
	fmt.Fprintf(&b, "Total hours     %s\n", Bold(FormatHours(m.TotalHours)))
	fmt.Fprintf(&b, "Sessions        %d\n", m.SessionCount)
	fmt.Fprintf(&b, "Work days       %d\n", m.WorkedDays)
	fmt.Fprintf(&b, "Avg session     %s\n", FormatHours(m.AverageSessionHours))
	fmt.Fprintf(&b, "Avg per day     %s\n\n", FormatHours(m.AverageDailyHours))

	b.WriteString(Header("Target Achievement") + "\n")
	fmt.Fprintf(&b, "%s / %s  %s\n", FormatHours(m.TotalHours), FormatHours(m.TargetHours),
		achievementLabel(m))
	fmt.Fprintf(&b, "%s\n\n", RenderProgress(m.TargetAchievementPct/100, barWidth, achievementStatus(m)))

	b.WriteString(Header("Session Records") + "\n")
	fmt.Fprintf(&b, "Longest         %s on %s %s\n", FormatHours(m.Longest.Hours), m.Longest.Label, Dim(Truncate(m.Longest.Notes, 40)))
	fmt.Fprintf(&b, "Shortest        %s on %s %s\n\n", FormatHours(m.Shortest.Hours), m.Shortest.Label, Dim(Truncate(m.Shortest.Notes, 40)))

	b.WriteString(Header("Productivity Highlights") + "\n")
	fmt.Fprintf(&b, "Most productive %s\n", StyleGreen.Render(fmt.Sprintf("%s (%s)", m.MostProductive.Label, FormatHours(m.MostProductive.Hours))))
	fmt.Fprintf(&b, "Least productive %s\n\n", StyleRed.Render(fmt.Sprintf("%s (%s)", m.LeastProductive.Label, FormatHours(m.LeastProductive.Hours))))

	b.WriteString(Header("Daily Breakdown") + "\n")
	daily := Table{Headers: []string{"DATE", "HOURS", "SESSIONS"}, RightAlign: map[int]bool{1: true, 2: true}}
	for _, d := range m.Daily {
		daily.Rows = append(daily.Rows, []string{d.Date, FormatHours(d.Hours), fmt.Sprintf("%d", d.Sessions)})
	}
	b.WriteString(daily.Render() + "\n")

	b.WriteString(Header("Weekly Breakdown") + "\n")
	weekly := Table{Headers: []string{"WEEK OF", "HOURS", "DAYS"}, RightAlign: map[int]bool{1: true, 2: true}}
	for _, w := range m.Weekly {
		weekly.Rows = append(weekly.Rows, []string{w.WeekStart, FormatHours(w.Hours), fmt.Sprintf("%d", w.Days)})
	}
	b.WriteString(weekly.Render())

	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

func achievementLabel(m *stats.MonthlyStats) string {
	pct := fmt.Sprintf("%.1f%%", m.TargetAchievementPct)
	switch {
	case m.OvertimeHours > 0:
		return StyleGreen.Render(pct + "  overtime " + FormatHours(m.OvertimeHours))
	case m.UndertimeHours > 0:
		return StyleYellow.Render(pct + "  missing " + FormatHours(m.UndertimeHours))
	default:
		return StyleBlue.Render(pct)
	}
}

func achievementStatus(m *stats.MonthlyStats) domain.ProgressStatus {
	switch {
	case m.TargetAchievementPct >= 100:
		return domain.ProgressAhead
	case m.TargetAchievementPct >= stats.BehindRatio*100:
		return domain.ProgressOnTrack
	default:
		return domain.ProgressBehind
	}
}
