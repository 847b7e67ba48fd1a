package httpserver

import (
	"net/http"

	"github.com/alexanderramin/timbang/internal/contract"
	"github.com/alexanderramin/timbang/internal/service"
)

// ClockStatus reports whether the caller is clocked in.
type ClockStatus struct {
	ClockedIn bool                  `json:"clockedIn"`
	Session   *contract.WorkSession `json:"session"`
}

// handleClockIn handles POST /api/v1/work/clock-in
func (s *HTTPServer) handleClockIn(w http.ResponseWriter, r *http.Request) {
	var req contract.ClockRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	at, err := contract.ParseOptionalTime(req.Timestamp, s.loc)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid timestamp: "+err.Error())
		return
	}

	sess, err := s.svc.Sessions.ClockIn(r.Context(), ownerFrom(r.Context()), at, req.Notes)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, contract.NewWorkSession(sess, s.loc))
}

// handleClockOut handles POST /api/v1/work/clock-out
func (s *HTTPServer) handleClockOut(w http.ResponseWriter, r *http.Request) {
	var req contract.ClockRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	at, err := contract.ParseOptionalTime(req.Timestamp, s.loc)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid timestamp: "+err.Error())
		return
	}

	sess, err := s.svc.Sessions.ClockOut(r.Context(), ownerFrom(r.Context()), at, req.Notes)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.NewWorkSession(sess, s.loc))
}

// handleStatus handles GET /api/v1/work/status
func (s *HTTPServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	open, err := s.svc.Sessions.Current(r.Context(), ownerFrom(r.Context()))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	status := ClockStatus{}
	if open != nil {
		dto := contract.NewWorkSession(open, s.loc)
		status.ClockedIn = true
		status.Session = &dto
	}
	respondJSON(w, http.StatusOK, status)
}

// handleAddEntry handles POST /api/v1/work/entries
func (s *HTTPServer) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	var req contract.ManualEntryRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.StartTime == "" || req.EndTime == "" {
		respondError(w, http.StatusBadRequest, "fields 'startTime' and 'endTime' are required")
		return
	}
	start, err := contract.ParseTime(req.StartTime, s.loc)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid startTime: "+err.Error())
		return
	}
	end, err := contract.ParseTime(req.EndTime, s.loc)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid endTime: "+err.Error())
		return
	}

	sess, err := s.svc.Sessions.AddManual(r.Context(), ownerFrom(r.Context()), start, end, req.Notes)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, contract.NewWorkSession(sess, s.loc))
}

// handleListEntries handles GET /api/v1/work/entries?start=&end=
func (s *HTTPServer) handleListEntries(w http.ResponseWriter, r *http.Request) {
	from, to, err := s.timeRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	sessions, err := s.svc.Sessions.List(r.Context(), ownerFrom(r.Context()), from, to)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.NewWorkSessions(sessions, s.loc))
}

// handleEntryPage handles GET /api/v1/work/entries/page/{page}
func (s *HTTPServer) handleEntryPage(w http.ResponseWriter, r *http.Request) {
	page, err := pathInt64(r, "page")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.svc.Sessions.ListPage(r.Context(), ownerFrom(r.Context()), int(page))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.NewSessionPage(result, s.loc))
}

// handleGetEntry handles GET /api/v1/work/entries/{id}
func (s *HTTPServer) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	sess, err := s.svc.Sessions.Get(r.Context(), ownerFrom(r.Context()), id)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.NewWorkSession(sess, s.loc))
}

// handleEditEntry handles PUT /api/v1/work/entries/{id}
func (s *HTTPServer) handleEditEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req contract.EditSessionRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	edit := service.EditRequest{Notes: req.Notes}
	if edit.Start, err = contract.ParseOptionalTime(req.NewStartTime, s.loc); err != nil {
		respondError(w, http.StatusBadRequest, "invalid newStartTime: "+err.Error())
		return
	}
	if edit.End, err = contract.ParseOptionalTime(req.NewEndTime, s.loc); err != nil {
		respondError(w, http.StatusBadRequest, "invalid newEndTime: "+err.Error())
		return
	}

	sess, err := s.svc.Sessions.Edit(r.Context(), ownerFrom(r.Context()), id, edit)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.NewWorkSession(sess, s.loc))
}

// handleDeleteEntry handles DELETE /api/v1/work/entries/{id}
func (s *HTTPServer) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.Sessions.Delete(r.Context(), ownerFrom(r.Context()), id); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
