package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timbang/internal/cli/formatter"
	"github.com/alexanderramin/timbang/internal/domain"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "holiday",
		Aliases: []string{"holidays"},
		Short:   "Public holidays per federal state",
	}

	cmd.AddCommand(
		newHolidayListCmd(app),
		newHolidayRefreshCmd(app),
	)

	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list [STATE]",
		Short: "List holidays (default: the state from your settings, this year)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var state domain.RegionCode
			if len(args) == 1 {
				parsed, err := domain.ParseRegionCode(args[0])
				if err != nil {
					return err
				}
				state = parsed
			} else {
				s, err := app.Settings.Get(ctx, app.Owner)
				if err != nil {
					return err
				}
				state = s.State
			}
			if !cmd.Flags().Changed("year") {
				year = app.now().In(app.loc()).Year()
			}

			holidays, err := app.Holidays.List(ctx, state, year)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			title := state.DisplayName()
			if year > 0 {
				title = fmt.Sprintf("%s %d", title, year)
			}
			fmt.Fprintln(out, formatter.Header(title))
			fmt.Fprint(out, formatter.FormatHolidays(holidays))
			if len(holidays) == 0 {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to list; 0 lists every stored year")

	return cmd
}

func newHolidayRefreshCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Download holidays for this and next year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Holidays.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Holiday service returned nothing; stored holidays kept."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %d holidays\n", n)
			return nil
		},
	}
}
