package importer

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema, loc *time.Location) []error {
	var errs []error

	if len(schema.Sessions) == 0 && len(schema.Entries) == 0 && schema.Settings == nil {
		errs = append(errs, fmt.Errorf("import file contains no sessions, entries or settings"))
	}

	errs = append(errs, validateSessions(schema.Sessions, loc)...)
	errs = append(errs, validateEntries(schema.Entries, loc)...)
	errs = append(errs, validateSettings(schema.Settings)...)

	return errs
}

func validateSessions(sessions []SessionImport, loc *time.Location) []error {
	var errs []error

	for i, s := range sessions {
		prefix := fmt.Sprintf("sessions[%d]", i)
		if s.StartTime == "" {
			errs = append(errs, fmt.Errorf("%s.startTime is required", prefix))
			continue
		}
		start, err := ParseTimestamp(s.StartTime, loc)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.startTime: %w", prefix, err))
			continue
		}
		if s.EndTime == nil || *s.EndTime == "" {
			continue
		}
		end, err := ParseTimestamp(*s.EndTime, loc)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.endTime: %w", prefix, err))
			continue
		}
		if end.Before(start) {
			errs = append(errs, fmt.Errorf("%s: endTime %q is before startTime %q", prefix, *s.EndTime, s.StartTime))
		}
	}

	return errs
}

func validateEntries(entries []EntryImport, loc *time.Location) []error {
	var errs []error
	seen := make(map[int64]bool)

	for i, e := range entries {
		prefix := fmt.Sprintf("entries[%d]", i)
		if e.ID <= 0 {
			errs = append(errs, fmt.Errorf("%s.id must be positive", prefix))
		} else if seen[e.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %d", prefix, e.ID))
		}
		seen[e.ID] = true

		if !domain.EntryType(e.Type).Valid() {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q (expected CLOCK_IN or CLOCK_OUT)", prefix, e.Type))
		}
		if _, err := ParseTimestamp(e.Timestamp, loc); err != nil {
			errs = append(errs, fmt.Errorf("%s.timestamp: %w", prefix, err))
		}
	}

	return errs
}

func validateSettings(s *SettingsImport) []error {
	if s == nil {
		return nil
	}
	var errs []error

	if s.ExpectedWeeklyHours != nil && !finiteNonNegative(*s.ExpectedWeeklyHours) {
		errs = append(errs, fmt.Errorf("settings.expectedWeeklyHours must be a non-negative number"))
	}
	if s.ExpectedMonthlyHours != nil && !finiteNonNegative(*s.ExpectedMonthlyHours) {
		errs = append(errs, fmt.Errorf("settings.expectedMonthlyHours must be a non-negative number"))
	}
	if s.DefaultLunchBreakMinutes != nil && *s.DefaultLunchBreakMinutes < 0 {
		errs = append(errs, fmt.Errorf("settings.defaultLunchBreakMinutes must not be negative"))
	}
	if s.WorkDays != nil {
		if _, err := domain.ParseWorkDays(*s.WorkDays); err != nil {
			errs = append(errs, fmt.Errorf("settings.workDays: %w", err))
		}
	}
	if s.State != nil {
		if _, err := domain.ParseRegionCode(*s.State); err != nil {
			errs = append(errs, fmt.Errorf("settings.state: %w", err))
		}
	}

	return errs
}

func finiteNonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0)
}
