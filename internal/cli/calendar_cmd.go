package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Browse worked hours and holidays month by month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := monthArg(app, args)
			if err != nil {
				return err
			}
			model := newCalendarModel(cmd.Context(), app, ym)

			if !app.interactive() {
				// Render once without the key help.
				model.Update(model.Init()())
				if model.err != nil {
					return model.err
				}
				fmt.Fprint(cmd.OutOrStdout(), model.render(false))
				return nil
			}

			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
