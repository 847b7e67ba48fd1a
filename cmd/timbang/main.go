package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/timbang/internal/cli"
	"github.com/alexanderramin/timbang/internal/config"
	"github.com/alexanderramin/timbang/internal/db"
	"github.com/alexanderramin/timbang/internal/holiday"
	"github.com/alexanderramin/timbang/internal/repository"
	"github.com/alexanderramin/timbang/internal/service"
	"github.com/mattn/go-isatty"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	// Wire services
	sessionSvc := service.NewSessionService(sessionRepo, uow, nil, observers...)
	holidayClient := holiday.NewFeiertageClient(cfg.HolidayClientConfig())

	app := &cli.App{
		Sessions: sessionSvc,
		Settings: service.NewSettingsService(settingsRepo, uow, nil, observers...),
		Stats:    service.NewStatsService(sessionRepo, settingsRepo, nil),
		Holidays: service.NewHolidayService(holidayRepo, holidayClient, uow, nil, observers...),
		Export:   service.NewExportService(sessionSvc),
		Import:   service.NewImportService(uow, nil, observers...),
		Owner:    cfg.Owner,
		Location: loc,
		Config:   cfg,
		Logger:   logger,
		Version:  version,
		IsInteractive: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}

	return cli.NewRootCmd(app).Execute()
}
