package httpserver

import (
	"bytes"
	"fmt"
	"net/http"
)

// handleExportCSV handles GET /api/v1/work/export.csv?start=&end=
func (s *HTTPServer) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	from, to, err := s.timeRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Buffer so a failure can still be reported as JSON.
	var buf bytes.Buffer
	if _, err := s.svc.Export.WriteCSV(r.Context(), ownerFrom(r.Context()), from, to, s.loc, &buf); err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	filename := fmt.Sprintf("work-hours-%s.csv", s.now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
