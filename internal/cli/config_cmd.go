package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/timbang/internal/cli/formatter"
	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/importer"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and change work settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
		newConfigEditCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current work settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context(), app.Owner)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatSettings(s))
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("timezone %s · database %s", app.loc(), app.Config.DBPath)))
			return nil
		},
	}
}

// settingsFlags are the flag targets of "config set".
type settingsFlags struct {
	weekly, monthly float64
	workDays        domain.WorkDays
	lunch           bool
	lunchMinutes    int
	state           string
	showHolidays    bool
}

func (f *settingsFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.weekly, "weekly", 0, "Expected hours per week")
	fs.Float64Var(&f.monthly, "monthly", 0, "Expected hours per month")
	fs.Var(&f.workDays, "work-days", "Work days as ISO weekdays, e.g. 1,2,3,4,5")
	fs.BoolVar(&f.lunch, "lunch", false, "Track a lunch break")
	fs.IntVar(&f.lunchMinutes, "lunch-minutes", 0, "Default lunch break in minutes")
	fs.StringVar(&f.state, "state", "", "Federal state code for holidays, e.g. BY")
	fs.BoolVar(&f.showHolidays, "show-holidays", false, "Show holidays in the calendar")
}

// patch collects the flags that were set on the command line.
func (f *settingsFlags) patch(fs *pflag.FlagSet) *importer.SettingsImport {
	var p importer.SettingsImport
	if fs.Changed("weekly") {
		p.ExpectedWeeklyHours = &f.weekly
	}
	if fs.Changed("monthly") {
		p.ExpectedMonthlyHours = &f.monthly
	}
	if fs.Changed("work-days") {
		wd := f.workDays.String()
		p.WorkDays = &wd
	}
	if fs.Changed("lunch") {
		p.TrackLunchBreak = &f.lunch
	}
	if fs.Changed("lunch-minutes") {
		p.DefaultLunchBreakMinutes = &f.lunchMinutes
	}
	if fs.Changed("state") {
		p.State = &f.state
	}
	if fs.Changed("show-holidays") {
		p.ShowHolidays = &f.showHolidays
	}
	return &p
}

func newConfigSetCmd(app *App) *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual work settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return fmt.Errorf("nothing to change: see 'timbang config set --help'")
			}
			s, err := app.Settings.Patch(cmd.Context(), app.Owner, flags.patch(cmd.Flags()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

func newConfigEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the work settings in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("config edit needs a terminal; use 'timbang config set' instead")
			}
			ctx := cmd.Context()
			current, err := app.Settings.Get(ctx, app.Owner)
			if err != nil {
				return err
			}

			draft := newSettingsDraft(current)
			if err := settingsForm(draft).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
				return err
			}
			updated, err := draft.apply(current)
			if err != nil {
				return err
			}
			saved, err := app.Settings.Update(ctx, app.Owner, updated)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(saved))
			return nil
		},
	}
}
