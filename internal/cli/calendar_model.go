package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timbang/internal/cli/formatter"
	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/stats"
)

const (
	calendarCellWidth = 9
	calendarDateKey   = "2006-01-02"
)

var calendarWeekdays = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

type calendarKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultCalendarKeys() calendarKeyMap {
	return calendarKeyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "previous month")),
		Next:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next month")),
		Today: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this month")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k calendarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

func (k calendarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Today}, {k.Help, k.Quit}}
}

// monthLoadedMsg carries the data of one month.
type monthLoadedMsg struct {
	month    stats.YearMonth
	stats    *stats.MonthlyStats
	holidays domain.HolidayIndex
	state    domain.RegionCode
	err      error
}

// calendarModel is a month view with per-day hours and holidays.
type calendarModel struct {
	ctx   context.Context
	app   *App
	month stats.YearMonth
	today time.Time

	hours    map[string]float64
	total    float64
	holidays domain.HolidayIndex
	state    domain.RegionCode
	loading  bool
	err      error

	keys calendarKeyMap
	help help.Model
}

func newCalendarModel(ctx context.Context, app *App, month stats.YearMonth) *calendarModel {
	return &calendarModel{
		ctx:     ctx,
		app:     app,
		month:   month,
		today:   app.now().In(app.loc()),
		hours:   map[string]float64{},
		loading: true,
		keys:    defaultCalendarKeys(),
		help:    help.New(),
	}
}

func (m *calendarModel) Init() tea.Cmd {
	return m.load(m.month)
}

// load fetches the month's hours and, when enabled, its holidays.
func (m *calendarModel) load(ym stats.YearMonth) tea.Cmd {
	ctx, app := m.ctx, m.app
	return func() tea.Msg {
		msg := monthLoadedMsg{month: ym}
		monthly, err := app.Stats.Monthly(ctx, app.Owner, ym)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.stats = monthly

		settings, err := app.Settings.Get(ctx, app.Owner)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.state = settings.State
		if settings.ShowHolidays {
			if msg.holidays, err = app.Holidays.Index(ctx, settings.State, ym); err != nil {
				msg.err = err
			}
		}
		return msg
	}
}

func (m *calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case monthLoadedMsg:
		if msg.month != m.month {
			return m, nil // superseded by further navigation
		}
		m.loading = false
		m.err = msg.err
		m.hours = map[string]float64{}
		m.total = 0
		m.holidays = msg.holidays
		m.state = msg.state
		if msg.stats != nil {
			for _, d := range msg.stats.Daily {
				m.hours[d.Date] = d.Hours
			}
			m.total = msg.stats.TotalHours
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			return m, m.goTo(m.month.Prev())
		case key.Matches(msg, m.keys.Next):
			return m, m.goTo(m.month.Next())
		case key.Matches(msg, m.keys.Today):
			return m, m.goTo(stats.NewYearMonth(m.today))
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

func (m *calendarModel) goTo(ym stats.YearMonth) tea.Cmd {
	m.month = ym
	m.loading = true
	return m.load(ym)
}

func (m *calendarModel) View() string {
	return m.render(true)
}

func (m *calendarModel) render(withHelp bool) string {
	var b strings.Builder

	title := m.month.Start().Format("January 2006")
	b.WriteString(formatter.StyleHeader.Render(title))
	if m.loading {
		b.WriteString(formatter.Dim("  loading..."))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n\n")
	}

	cell := lipgloss.NewStyle().Width(calendarCellWidth)
	for _, wd := range calendarWeekdays {
		b.WriteString(cell.Render(formatter.Dim(wd)))
	}
	b.WriteString("\n")

	for _, week := range m.weeks() {
		var dayLine, hourLine strings.Builder
		for _, day := range week {
			if day.IsZero() {
				dayLine.WriteString(cell.Render(""))
				hourLine.WriteString(cell.Render(""))
				continue
			}
			dayLine.WriteString(cell.Render(m.dayLabel(day)))
			hourLine.WriteString(cell.Render(m.hoursLabel(day)))
		}
		b.WriteString(strings.TrimRight(dayLine.String(), " ") + "\n")
		b.WriteString(strings.TrimRight(hourLine.String(), " ") + "\n")
	}

	if list := m.holidayLines(); len(list) > 0 {
		b.WriteString("\n" + formatter.Dim("Holidays · "+m.state.DisplayName()) + "\n")
		for _, line := range list {
			b.WriteString(line + "\n")
		}
	}

	fmt.Fprintf(&b, "\nMonth total %s\n", formatter.Bold(formatter.FormatHours(m.total)))
	if withHelp {
		b.WriteString("\n" + m.help.View(m.keys))
	}
	return b.String()
}

// weeks lays out the month as Monday-first rows; padding cells are zero.
func (m *calendarModel) weeks() [][]time.Time {
	first := m.month.Start()
	lead := domain.ISOWeekday(first.Weekday()) - 1

	var out [][]time.Time
	week := make([]time.Time, lead, 7)
	for d := 0; d < m.month.Days(); d++ {
		week = append(week, first.AddDate(0, 0, d))
		if len(week) == 7 {
			out = append(out, week)
			week = make([]time.Time, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, time.Time{})
		}
		out = append(out, week)
	}
	return out
}

func (m *calendarModel) dayLabel(day time.Time) string {
	label := fmt.Sprintf("%2d", day.Day())
	if len(m.holidays.On(day)) > 0 {
		label += "*"
	}
	switch {
	case sameDate(day, m.today):
		return formatter.StyleHeader.Render(label)
	case len(m.holidays.On(day)) > 0:
		return formatter.StylePurple.Render(label)
	case day.Weekday() == time.Saturday || day.Weekday() == time.Sunday:
		return formatter.Dim(label)
	default:
		return label
	}
}

func (m *calendarModel) hoursLabel(day time.Time) string {
	h, ok := m.hours[day.Format(calendarDateKey)]
	if !ok || h == 0 {
		return ""
	}
	return formatter.StyleGreen.Render(formatter.FormatHours(h))
}

func (m *calendarModel) holidayLines() []string {
	var lines []string
	for d := 0; d < m.month.Days(); d++ {
		day := m.month.Start().AddDate(0, 0, d)
		for _, h := range m.holidays.On(day) {
			lines = append(lines, fmt.Sprintf("%s %s", formatter.StylePurple.Render(day.Format("02 Jan")), h.Name))
		}
	}
	return lines
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
