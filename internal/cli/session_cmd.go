package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timbang/internal/cli/formatter"
	"github.com/alexanderramin/timbang/internal/service"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"sessions"},
		Short:   "Manage recorded work sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
		newSessionEditCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	var start, end, note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a finished session manually",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseWhen(start, app.loc(), app.now())
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			to, err := parseWhen(end, app.loc(), app.now())
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			s, err := app.Sessions.AddManual(cmd.Context(), app.Owner, from, to, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatter.FormatSession(s, app.loc()))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time")
	cmd.Flags().StringVar(&end, "end", "", "End time")
	cmd.Flags().StringVar(&note, "note", "", "Session note")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var from, to string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if from == "" && to == "" {
				p, err := app.Sessions.ListPage(ctx, app.Owner, page-1)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatSessionPage(p, app.loc(), app.now()))
				return nil
			}

			start, end, err := parseRange(from, to, app.loc(), app.now())
			if err != nil {
				return err
			}
			sessions, err := app.Sessions.List(ctx, app.Owner, start, end)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(out, formatter.Dim("No sessions in range."))
				return nil
			}
			fmt.Fprint(out, formatter.FormatSessionTable(sessions, app.loc(), app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, fmt.Sprintf("Page of %d sessions, starting at 1", service.PageSize))
	cmd.Flags().StringVar(&from, "from", "", "Only sessions starting at or after this time")
	cmd.Flags().StringVar(&to, "to", "", "Only sessions starting before this time (a date includes the whole day)")

	return cmd
}

func newSessionEditCmd(app *App) *cobra.Command {
	var start, end, note string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change the start, end or notes of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}

			var req service.EditRequest
			if cmd.Flags().Changed("start") {
				t, err := parseWhen(start, app.loc(), app.now())
				if err != nil {
					return fmt.Errorf("--start: %w", err)
				}
				req.Start = &t
			}
			if cmd.Flags().Changed("end") {
				t, err := parseWhen(end, app.loc(), app.now())
				if err != nil {
					return fmt.Errorf("--end: %w", err)
				}
				req.End = &t
			}
			if cmd.Flags().Changed("note") {
				req.Notes = &note
			}
			if req.Start == nil && req.End == nil && req.Notes == nil {
				return fmt.Errorf("nothing to change: pass --start, --end or --note")
			}

			s, err := app.Sessions.Edit(cmd.Context(), app.Owner, id, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatter.FormatSession(s, app.loc()))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New start time")
	cmd.Flags().StringVar(&end, "end", "", "New end time")
	cmd.Flags().StringVar(&note, "note", "", "Replacement notes")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			s, err := app.Sessions.Get(ctx, app.Owner, id)
			if err != nil {
				return err
			}

			if !yes && app.interactive() {
				ok, err := app.confirm(fmt.Sprintf("Delete session #%d (%s)?", s.ID,
					formatter.FormatTimeRange(s.StartTime.In(app.loc()), app.inLoc(s.EndTime))))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Sessions.Delete(ctx, app.Owner, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func parseSessionID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid session id %q", s)
	}
	return id, nil
}
