package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timbang/internal/cli/formatter"
)

func newClockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Clock in, clock out and show the running session",
	}

	cmd.AddCommand(
		newClockInCmd(app),
		newClockOutCmd(app),
		newClockStatusCmd(app),
	)

	return cmd
}

func newClockInCmd(app *App) *cobra.Command {
	var at, note string

	cmd := &cobra.Command{
		Use:   "in",
		Short: "Start a work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseOptionalWhen(at, app.loc(), app.now())
			if err != nil {
				return err
			}
			s, err := app.Sessions.ClockIn(cmd.Context(), app.Owner, when, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s at %s %s\n",
				formatter.StyleGreen.Render("Clocked in"),
				formatter.FormatDateTime(s.StartTime.In(app.loc())),
				formatter.Dim(fmt.Sprintf("(#%d)", s.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM, YYYY-MM-DD or ISO-8601; default now)")
	cmd.Flags().StringVar(&note, "note", "", "Session note")

	return cmd
}

func newClockOutCmd(app *App) *cobra.Command {
	var at, note string

	cmd := &cobra.Command{
		Use:   "out",
		Short: "Stop the running work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseOptionalWhen(at, app.loc(), app.now())
			if err != nil {
				return err
			}
			s, err := app.Sessions.ClockOut(cmd.Context(), app.Owner, when, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s at %s · %s\n",
				formatter.StyleYellow.Render("Clocked out"),
				formatter.FormatDateTime(s.EndTime.In(app.loc())),
				formatter.Bold(formatter.FormatDuration(s.Duration())))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "End time (HH:MM, YYYY-MM-DD or ISO-8601; default now)")
	cmd.Flags().StringVar(&note, "note", "", "Note appended to the session")

	return cmd
}

func newClockStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.Current(cmd.Context(), app.Owner)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if s == nil {
				fmt.Fprintln(out, formatter.ClockPill(false))
				return nil
			}
			elapsed := app.now().Sub(s.StartTime)
			fmt.Fprintf(out, "%s since %s · %s\n",
				formatter.ClockPill(true),
				formatter.FormatDateTime(s.StartTime.In(app.loc())),
				formatter.Bold(formatter.FormatDuration(elapsed)))
			if s.Notes != "" {
				fmt.Fprintln(out, formatter.Dim(s.Notes))
			}
			return nil
		},
	}
}
