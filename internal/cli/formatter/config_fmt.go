package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timbang/internal/domain"
)

var weekdayNames = [...]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// FormatWorkDays renders ISO weekdays as names, e.g. "Mon Tue Wed".
func FormatWorkDays(w domain.WorkDays) string {
	days := w.Days()
	if len(days) == 0 {
		return Dim("none")
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = weekdayNames[d]
	}
	return strings.Join(names, " ")
}

// FormatSettings renders the work configuration of one owner.
func FormatSettings(s *domain.WorkSettings) string {
	onOff := func(v bool) string {
		if v {
			return StyleGreen.Render("on")
		}
		return Dim("off")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Weekly target    %s\n", Bold(FormatHours(s.ExpectedWeeklyHours)))
	fmt.Fprintf(&b, "Monthly target   %s\n", Bold(FormatHours(s.ExpectedMonthlyHours)))
	fmt.Fprintf(&b, "Work days        %s %s\n", FormatWorkDays(s.WorkDays), Dim("("+s.WorkDays.String()+")"))
	fmt.Fprintf(&b, "Lunch break      %s %s\n", onOff(s.TrackLunchBreak), Dim(fmt.Sprintf("%d min", s.DefaultLunchBreakMinutes)))
	fmt.Fprintf(&b, "State            %s %s\n", s.State.DisplayName(), Dim("("+string(s.State)+")"))
	fmt.Fprintf(&b, "Show holidays    %s", onOff(s.ShowHolidays))
	return RenderBox("Work Settings · "+s.Owner, b.String())
}

// FormatHolidays renders a holiday list as a table.
func FormatHolidays(holidays []domain.Holiday) string {
	if len(holidays) == 0 {
		return Dim("No holidays stored. Run 'timbang holiday refresh'.")
	}
	t := Table{Headers: []string{"DATE", "NAME", "NOTE"}}
	for _, h := range holidays {
		t.Rows = append(t.Rows, []string{h.Date, StylePurple.Render(h.Name), Dim(Truncate(h.Description, 60))})
	}
	return t.Render()
}
