package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timbang/internal/importer"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// parseWhen reads a point in time given on the command line: "now", a
// clock time today ("09:30"), a date ("2024-06-12", midnight) or a full
// timestamp. Offsetless values are read in loc.
func parseWhen(s string, loc *time.Location, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "now" {
		return now, nil
	}
	if t, err := time.ParseInLocation(clockLayout, s, loc); err == nil {
		y, m, d := now.In(loc).Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc).UTC(), nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t.UTC(), nil
	}
	t, err := importer.ParseTimestamp(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (use HH:MM, YYYY-MM-DD or an ISO-8601 date-time)", s)
	}
	return t, nil
}

// parseOptionalWhen is parseWhen for flags that may be left empty.
func parseOptionalWhen(s string, loc *time.Location, now time.Time) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseWhen(s, loc, now)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseRange reads --from/--to. A bare date as --to includes that whole day.
func parseRange(from, to string, loc *time.Location, now time.Time) (*time.Time, *time.Time, error) {
	start, err := parseOptionalWhen(from, loc, now)
	if err != nil {
		return nil, nil, fmt.Errorf("--from: %w", err)
	}
	end, err := parseOptionalWhen(to, loc, now)
	if err != nil {
		return nil, nil, fmt.Errorf("--to: %w", err)
	}
	if end != nil {
		if _, err := time.ParseInLocation(dateLayout, strings.TrimSpace(to), loc); err == nil {
			next := end.In(loc).AddDate(0, 0, 1).UTC()
			end = &next
		}
	}
	return start, end, nil
}
