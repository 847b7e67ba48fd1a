package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timbang/internal/cli/formatter"
	"github.com/alexanderramin/timbang/internal/stats"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show today, this week, this month and total hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Stats.Summary(cmd.Context(), app.Owner, app.loc())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(s, app.loc()))
			return nil
		},
	}
}

func newMonthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show the monthly summary (default: current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := monthArg(app, args)
			if err != nil {
				return err
			}
			m, err := app.Stats.Monthly(cmd.Context(), app.Owner, ym)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMonthly(m, ym))
			return nil
		},
	}
}

// monthArg reads an optional YYYY-MM argument in the app location.
func monthArg(app *App, args []string) (stats.YearMonth, error) {
	if len(args) == 0 {
		return stats.NewYearMonth(app.now().In(app.loc())), nil
	}
	return stats.ParseYearMonth(args[0], app.loc())
}
