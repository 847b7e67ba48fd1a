package httpserver

import (
	"net/http"
	"strconv"

	"github.com/alexanderramin/timbang/internal/contract"
	"github.com/alexanderramin/timbang/internal/domain"
)

// handleHolidays handles GET /api/v1/holidays/{state}?year=
func (s *HTTPServer) handleHolidays(w http.ResponseWriter, r *http.Request) {
	state, err := domain.ParseRegionCode(r.PathValue("state"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil || year < 1 {
			respondError(w, http.StatusBadRequest, "invalid year "+strconv.Quote(raw))
			return
		}
	}

	holidays, err := s.svc.Holidays.List(r.Context(), state, year)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.NewHolidays(holidays))
}

// handleRefreshHolidays handles POST /api/v1/holidays/refresh
func (s *HTTPServer) handleRefreshHolidays(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.Holidays.Refresh(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.HolidayRefreshResponse{Stored: n})
}
