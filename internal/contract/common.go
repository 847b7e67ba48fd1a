// Package contract defines the JSON shapes exchanged over the HTTP API.
// Field names follow the camelCase keys of the original REST backend so
// exported data can be re-imported unchanged.
package contract

import (
	"time"

	"github.com/alexanderramin/timbang/internal/importer"
)

// TimeLayout is the wire format of every instant.
const TimeLayout = time.RFC3339

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ParseTime reads a wire timestamp. Offsetless timestamps are read in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	return importer.ParseTimestamp(s, loc)
}

// ParseOptionalTime parses s unless it is nil or empty.
func ParseOptionalTime(s *string, loc *time.Location) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseTime(*s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(TimeLayout)
}
