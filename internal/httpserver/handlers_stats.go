package httpserver

import (
	"net/http"

	"github.com/alexanderramin/timbang/internal/contract"
	"github.com/alexanderramin/timbang/internal/stats"
)

// handleSummary handles GET /api/v1/stats/summary
func (s *HTTPServer) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Stats.Summary(r.Context(), ownerFrom(r.Context()), s.loc)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.NewSummary(summary, s.loc))
}

// handleMonthly handles GET /api/v1/stats/monthly?month=YYYY-MM. Without a
// month the current one is used.
func (s *HTTPServer) handleMonthly(w http.ResponseWriter, r *http.Request) {
	ym := stats.NewYearMonth(s.now())
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := stats.ParseYearMonth(raw, s.loc)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid month: "+err.Error())
			return
		}
		ym = parsed
	}

	monthly, err := s.svc.Stats.Monthly(r.Context(), ownerFrom(r.Context()), ym)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, monthly)
}
