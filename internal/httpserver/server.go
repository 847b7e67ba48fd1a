package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/timbang/internal/service"
)

// Services are the use cases the API exposes.
type Services struct {
	Sessions service.SessionService
	Settings service.SettingsService
	Stats    service.StatsService
	Holidays service.HolidayService
	Export   service.ExportService
}

// Options configure an HTTPServer.
type Options struct {
	// Tokens maps bearer tokens to the owner they act as.
	Tokens   map[string]string
	Version  string
	Location *time.Location
	Logger   *slog.Logger
	// Clock reports the current time; nil means time.Now.
	Clock service.Clock
}

// HTTPServer represents the HTTP API server
type HTTPServer struct {
	mux     *http.ServeMux
	svc     Services
	tokens  map[string]string
	version string
	loc     *time.Location
	logger  *slog.Logger
	clock   service.Clock
}

// NewHTTPServer creates a new HTTP server instance
func NewHTTPServer(svc Services, opts Options) *HTTPServer {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	s := &HTTPServer{
		mux:     http.NewServeMux(),
		svc:     svc,
		tokens:  opts.Tokens,
		version: opts.Version,
		loc:     opts.Location,
		logger:  opts.Logger,
		clock:   opts.Clock,
	}
	s.registerRoutes()
	return s
}

// registerRoutes sets up all HTTP routes with middleware
func (s *HTTPServer) registerRoutes() {
	// Health check (no auth required)
	s.mux.HandleFunc("GET /health", s.public(s.handleHealth))

	s.mux.HandleFunc("POST /api/v1/work/clock-in", s.private(jsonContentTypeMiddleware(s.handleClockIn)))
	s.mux.HandleFunc("POST /api/v1/work/clock-out", s.private(jsonContentTypeMiddleware(s.handleClockOut)))
	s.mux.HandleFunc("GET /api/v1/work/status", s.private(s.handleStatus))

	s.mux.HandleFunc("POST /api/v1/work/entries", s.private(jsonContentTypeMiddleware(s.handleAddEntry)))
	s.mux.HandleFunc("GET /api/v1/work/entries", s.private(s.handleListEntries))
	s.mux.HandleFunc("GET /api/v1/work/entries/page/{page}", s.private(s.handleEntryPage))
	s.mux.HandleFunc("GET /api/v1/work/entries/{id}", s.private(s.handleGetEntry))
	s.mux.HandleFunc("PUT /api/v1/work/entries/{id}", s.private(jsonContentTypeMiddleware(s.handleEditEntry)))
	s.mux.HandleFunc("DELETE /api/v1/work/entries/{id}", s.private(s.handleDeleteEntry))

	s.mux.HandleFunc("GET /api/v1/work/config", s.private(s.handleGetConfig))
	s.mux.HandleFunc("PUT /api/v1/work/config", s.private(jsonContentTypeMiddleware(s.handleUpdateConfig)))

	s.mux.HandleFunc("GET /api/v1/work/export.csv", s.private(s.handleExportCSV))

	s.mux.HandleFunc("GET /api/v1/stats/summary", s.private(s.handleSummary))
	s.mux.HandleFunc("GET /api/v1/stats/monthly", s.private(s.handleMonthly))

	s.mux.HandleFunc("GET /api/v1/holidays/{state}", s.private(s.handleHolidays))
	s.mux.HandleFunc("GET /api/v1/holiday/state/{state}", s.private(s.handleHolidays))
	s.mux.HandleFunc("POST /api/v1/holidays/refresh", s.private(s.handleRefreshHolidays))
}

func (s *HTTPServer) public(h http.HandlerFunc) http.HandlerFunc {
	return requestIDMiddleware(s.loggingMiddleware(h))
}

func (s *HTTPServer) private(h http.HandlerFunc) http.HandlerFunc {
	return requestIDMiddleware(s.loggingMiddleware(s.authMiddleware(h)))
}

// Handler exposes the routed handler, mainly for tests and embedding.
func (s *HTTPServer) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *HTTPServer) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr, "tokens", len(s.tokens))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}

func (s *HTTPServer) now() time.Time {
	return s.clock().In(s.loc)
}
