package db

import (
	"database/sql"
	"fmt"
	"time"
)

// TimeLayout is the text encoding of every stored instant. Values are
// always written in UTC so lexical order matches chronological order.
const TimeLayout = time.RFC3339

// FormatTime encodes t for storage.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// FormatNullableTime encodes t, or returns SQL NULL when t is nil.
func FormatNullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return FormatTime(*t)
}

// ParseTime decodes a stored instant.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored time %q: %w", s, err)
	}
	return t.UTC(), nil
}

// ParseNullableTime decodes a nullable column. NULL and empty strings
// yield nil.
func ParseNullableTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := ParseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
