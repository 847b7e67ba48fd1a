package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timbang/internal/cli/formatter"
	"github.com/alexanderramin/timbang/internal/service"
)

func newImportCmd(app *App) *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import sessions from a JSON export",
		Long: `Import sessions from a JSON file.

By default FILE holds {"sessions": [...], "settings": {...}}. With --legacy,
FILE is a flat list of clock-in/clock-out entries which are paired into
sessions; the raw entries are archived alongside.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				res *service.ImportResult
				err error
			)
			if legacy {
				f, openErr := os.Open(args[0])
				if openErr != nil {
					return fmt.Errorf("opening %s: %w", args[0], openErr)
				}
				defer f.Close()
				res, err = app.Import.ImportLegacyEntries(ctx, app.Owner, f, app.loc())
			} else {
				res, err = app.Import.ImportFile(ctx, app.Owner, args[0], app.loc())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d sessions", res.SessionCount)
			if res.OpenSessionCount > 0 {
				fmt.Fprintf(out, " (%d still open)", res.OpenSessionCount)
			}
			fmt.Fprintln(out)
			if res.EntryCount > 0 {
				fmt.Fprintf(out, "Archived %d clock entries\n", res.EntryCount)
			}
			if res.OrphanedClockOuts > 0 {
				fmt.Fprintln(out, formatter.StyleYellow.Render(
					fmt.Sprintf("Skipped %d clock-outs without a matching clock-in", res.OrphanedClockOuts)))
			}
			if res.SettingsImported {
				fmt.Fprintln(out, "Work settings replaced")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy", false, "FILE is a clock entry log")

	return cmd
}
