package httpserver

import (
	"net/http"

	"github.com/alexanderramin/timbang/internal/contract"
)

// handleGetConfig handles GET /api/v1/work/config
func (s *HTTPServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	settings, err := s.svc.Settings.Get(r.Context(), ownerFrom(r.Context()))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.NewWorkConfig(settings))
}

// handleUpdateConfig handles PUT /api/v1/work/config
func (s *HTTPServer) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var patch contract.WorkConfigPatch
	if err := decodeBody(w, r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	settings, err := s.svc.Settings.Patch(r.Context(), ownerFrom(r.Context()), &patch)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.NewWorkConfig(settings))
}
