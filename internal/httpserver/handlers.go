package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/timbang/internal/contract"
)

const maxBodyBytes = 1 << 20

// handleHealth handles GET /health
func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, contract.HealthResponse{
		Status:  "ok",
		Version: s.version,
	})
}

// decodeBody reads a JSON body into v. An empty body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("invalid JSON: %v", err)
	}
	return nil
}

// timeRange reads the optional start and end query parameters.
func (s *HTTPServer) timeRange(r *http.Request) (from, to *time.Time, err error) {
	q := r.URL.Query()
	start, end := q.Get("start"), q.Get("end")
	if from, err = contract.ParseOptionalTime(&start, s.loc); err != nil {
		return nil, nil, fmt.Errorf("invalid start: %v", err)
	}
	if to, err = contract.ParseOptionalTime(&end, s.loc); err != nil {
		return nil, nil, fmt.Errorf("invalid end: %v", err)
	}
	return from, to, nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}
