package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timbang/internal/config"
	"github.com/alexanderramin/timbang/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Settings service.SettingsService
	Stats    service.StatsService
	Holidays service.HolidayService
	Export   service.ExportService
	Import   service.ImportService

	// Owner is the account every command acts on.
	Owner    string
	Location *time.Location
	Clock    func() time.Time

	Config  config.Config
	Logger  *slog.Logger
	Version string

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil uses a huh confirm form.
	Confirm func(title string) (bool, error)
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

func (a *App) loc() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

func (a *App) inLoc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	x := t.In(a.loc())
	return &x
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	return confirmForm(title)
}

// NewRootCmd creates the top-level "timbang" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timbang",
		Short:         "Personal work-hours tracker",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.Owner, "owner", app.Owner, "Owner to act as")

	root.AddCommand(
		newClockCmd(app),
		newSessionCmd(app),
		newSummaryCmd(app),
		newMonthCmd(app),
		newConfigCmd(app),
		newHolidayCmd(app),
		newCalendarCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newServeCmd(app),
	)

	return root
}
