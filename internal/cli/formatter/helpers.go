package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timbang/internal/stats"
)

const (
	clockLayout    = "15:04"
	dayMonthLayout = "2. Jan"

	titleSep = " · "
)

// RenderBox wraps content in a rounded-border box with an optional title.
// The title label is upper-cased; anything after " · " is shown as given.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(boxTitle(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

func boxTitle(title string) string {
	label, subject, found := strings.Cut(title, titleSep)
	if !found {
		return strings.ToUpper(title)
	}
	return strings.ToUpper(label) + titleSep + subject
}

// FormatHours renders fractional hours rounded to a tenth, e.g. "7.5h".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.1fh", stats.RoundTenth(h))
}

// FormatSignedHours renders a delta with an explicit sign, e.g. "+2.0h".
func FormatSignedHours(h float64) string {
	h = stats.RoundTenth(h)
	if h == 0 {
		return "±0.0h"
	}
	return fmt.Sprintf("%+.1fh", h)
}

// FormatDuration renders d as hours and minutes, e.g. "3h 25m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d / time.Minute)
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

// FormatDateTime renders an instant as "12. Jun 09:30".
func FormatDateTime(t time.Time) string {
	return t.Format(dayMonthLayout) + " " + t.Format(clockLayout)
}

// FormatTimeRange renders a session span compactly. Both instants must
// already be in the display location. A nil end renders the start only.
//
//	same day:    "12. Jun 09:00 - 17:00"
//	same month:  "12.-13. Jun 22:00 - 06:00"
//	otherwise:   "30. Jun 22:00 - 1. Jul 06:00"
func FormatTimeRange(start time.Time, end *time.Time) string {
	if end == nil {
		return FormatDateTime(start)
	}
	startClock, endClock := start.Format(clockLayout), end.Format(clockLayout)

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	switch {
	case sy == ey && sm == em && sd == ed:
		return fmt.Sprintf("%s %s - %s", start.Format(dayMonthLayout), startClock, endClock)
	case sm == em:
		return fmt.Sprintf("%d.-%d. %s %s - %s", sd, ed, start.Format("Jan"), startClock, endClock)
	default:
		return fmt.Sprintf("%s %s - %s %s", start.Format(dayMonthLayout), startClock, end.Format(dayMonthLayout), endClock)
	}
}

// HumanDate returns "Today", "Yesterday" or a short absolute date relative
// to now.
func HumanDate(t, now time.Time) string {
	switch {
	case sameDay(t, now):
		return "Today"
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return t.Format("Mon 2. Jan 2006")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Truncate shortens s to at most n runes, ending with "...".
func Truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
