package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timbang/internal/cli/formatter"
	"github.com/alexanderramin/timbang/internal/domain"
)

// huhTheme matches the formatter palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func confirmForm(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Keep").
				Value(&ok),
		),
	).WithTheme(huhTheme()).WithShowHelp(false).Run()
	return ok, err
}

// settingsDraft holds the text values edited in the settings form.
type settingsDraft struct {
	Weekly       string
	Monthly      string
	WorkDays     string
	TrackLunch   bool
	LunchMinutes string
	State        string
	ShowHolidays bool
}

func newSettingsDraft(s *domain.WorkSettings) *settingsDraft {
	return &settingsDraft{
		Weekly:       strconv.FormatFloat(s.ExpectedWeeklyHours, 'f', -1, 64),
		Monthly:      strconv.FormatFloat(s.ExpectedMonthlyHours, 'f', -1, 64),
		WorkDays:     s.WorkDays.String(),
		TrackLunch:   s.TrackLunchBreak,
		LunchMinutes: strconv.Itoa(s.DefaultLunchBreakMinutes),
		State:        string(s.State),
		ShowHolidays: s.ShowHolidays,
	}
}

// apply writes the draft onto a copy of base and validates the result.
func (d *settingsDraft) apply(base *domain.WorkSettings) (*domain.WorkSettings, error) {
	out := *base
	var err error
	if out.ExpectedWeeklyHours, err = strconv.ParseFloat(d.Weekly, 64); err != nil {
		return nil, fmt.Errorf("weekly hours: %w", err)
	}
	if out.ExpectedMonthlyHours, err = strconv.ParseFloat(d.Monthly, 64); err != nil {
		return nil, fmt.Errorf("monthly hours: %w", err)
	}
	if out.WorkDays, err = domain.ParseWorkDays(d.WorkDays); err != nil {
		return nil, fmt.Errorf("work days: %w", err)
	}
	if out.DefaultLunchBreakMinutes, err = strconv.Atoi(d.LunchMinutes); err != nil {
		return nil, fmt.Errorf("lunch minutes: %w", err)
	}
	if out.State, err = domain.ParseRegionCode(d.State); err != nil {
		return nil, fmt.Errorf("state: %w", err)
	}
	out.TrackLunchBreak = d.TrackLunch
	out.ShowHolidays = d.ShowHolidays
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func settingsForm(d *settingsDraft) *huh.Form {
	states := make([]huh.Option[string], 0, len(domain.Regions))
	for _, r := range domain.Regions {
		states = append(states, huh.NewOption(r.DisplayName(), string(r)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Expected weekly hours").Value(&d.Weekly).Validate(validateHours),
			huh.NewInput().Title("Expected monthly hours").Value(&d.Monthly).Validate(validateHours),
			huh.NewInput().
				Title("Work days").
				Description("ISO weekdays, 1 = Monday ... 7 = Sunday").
				Placeholder("1,2,3,4,5").
				Value(&d.WorkDays).
				Validate(func(s string) error {
					_, err := domain.ParseWorkDays(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Track lunch break?").Value(&d.TrackLunch),
			huh.NewInput().Title("Default lunch break (minutes)").Value(&d.LunchMinutes).Validate(validateMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Federal state").Options(states...).Value(&d.State),
			huh.NewConfirm().Title("Show holidays in the calendar?").Value(&d.ShowHolidays),
		),
	).WithTheme(huhTheme())
}

func validateHours(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validateMinutes(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative whole number")
	}
	return nil
}
