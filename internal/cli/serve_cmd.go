package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timbang/internal/holiday"
	"github.com/alexanderramin/timbang/internal/httpserver"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the monthly holiday refresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(app.Config.Tokens) == 0 {
				return fmt.Errorf("no API tokens configured (set TIMBANG_TOKENS=token=owner)")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, app, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}

func serve(ctx context.Context, app *App, addr string) error {
	logger := app.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if addr == "" {
		addr = app.Config.HTTPAddr
	}

	if loaded, err := app.Holidays.EnsureLoaded(ctx); err != nil {
		logger.Warn("initial holiday load failed", "error", err)
	} else if loaded {
		logger.Info("holidays loaded")
	}

	sched := holiday.NewScheduler(app.Holidays, app.Config.HolidayCron, logger)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	srv := httpserver.NewHTTPServer(httpserver.Services{
		Sessions: app.Sessions,
		Settings: app.Settings,
		Stats:    app.Stats,
		Holidays: app.Holidays,
		Export:   app.Export,
	}, httpserver.Options{
		Tokens:   app.Config.Tokens,
		Version:  app.Version,
		Location: app.loc(),
		Logger:   logger,
		Clock:    app.Clock,
	})
	return srv.ListenAndServe(ctx, addr)
}
