package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var from, to, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export sessions as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(from, to, app.loc(), app.now())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}

			n, err := app.Export.WriteCSV(cmd.Context(), app.Owner, start, end, app.loc(), w)
			if err != nil {
				return err
			}
			if outPath != "" && outPath != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d sessions to %s\n", n, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day or instant to export")
	cmd.Flags().StringVar(&to, "to", "", "Last day (inclusive) or exclusive end instant")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")

	return cmd
}
