package importer

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
)

// Converted holds the domain objects produced from an import file, ready
// for persistence.
type Converted struct {
	Sessions          []*domain.WorkSession
	Settings          *domain.WorkSettings
	OrphanedClockOuts int
}

// Convert transforms a validated ImportSchema into domain objects owned by
// owner. Call ValidateImportSchema first; Convert assumes the schema is
// valid. Naive timestamps are read in loc. Legacy entries are paired into
// sessions and merged with the explicit sessions in start order.
func Convert(schema *ImportSchema, owner string, loc *time.Location, now time.Time) (*Converted, error) {
	out := &Converted{}

	for i, s := range schema.Sessions {
		session, err := convertSession(s, owner, loc, now)
		if err != nil {
			return nil, fmt.Errorf("sessions[%d]: %w", i, err)
		}
		out.Sessions = append(out.Sessions, session)
	}

	if len(schema.Entries) > 0 {
		entries, err := ConvertEntries(schema.Entries, owner, loc)
		if err != nil {
			return nil, err
		}
		paired := PairEntries(entries)
		out.Sessions = append(out.Sessions, paired.Sessions...)
		out.OrphanedClockOuts = paired.OrphanedClockOuts
	}

	sort.SliceStable(out.Sessions, func(i, j int) bool {
		return out.Sessions[i].StartTime.Before(out.Sessions[j].StartTime)
	})

	if schema.Settings != nil {
		settings, err := ApplySettings(domain.DefaultWorkSettings(owner), schema.Settings)
		if err != nil {
			return nil, err
		}
		settings.UpdatedAt = now.UTC()
		out.Settings = settings
	}

	return out, nil
}

func convertSession(s SessionImport, owner string, loc *time.Location, now time.Time) (*domain.WorkSession, error) {
	start, err := ParseTimestamp(s.StartTime, loc)
	if err != nil {
		return nil, err
	}
	session := &domain.WorkSession{
		Owner:     owner,
		StartTime: start,
		Notes:     s.Notes,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if s.EndTime != nil && *s.EndTime != "" {
		end, err := ParseTimestamp(*s.EndTime, loc)
		if err != nil {
			return nil, err
		}
		if err := session.Close(end, now.UTC()); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// ConvertEntries turns imported clock entries into domain entries.
func ConvertEntries(entries []EntryImport, owner string, loc *time.Location) ([]domain.WorkEntry, error) {
	out := make([]domain.WorkEntry, 0, len(entries))
	for i, e := range entries {
		ts, err := ParseTimestamp(e.Timestamp, loc)
		if err != nil {
			return nil, fmt.Errorf("entries[%d]: %w", i, err)
		}
		typ := domain.EntryType(e.Type)
		if !typ.Valid() {
			return nil, fmt.Errorf("entries[%d]: invalid type %q", i, e.Type)
		}
		out = append(out, domain.WorkEntry{
			ID:        e.ID,
			Owner:     owner,
			Timestamp: ts,
			Type:      typ,
			Notes:     e.Notes,
		})
	}
	return out, nil
}

// ApplySettings overlays the fields present in s onto base and validates
// the result. base is modified in place and returned.
func ApplySettings(base *domain.WorkSettings, s *SettingsImport) (*domain.WorkSettings, error) {
	base.ExpectedWeeklyHours = domain.Float64FromPtrWithDefault(base.ExpectedWeeklyHours, s.ExpectedWeeklyHours)
	base.ExpectedMonthlyHours = domain.Float64FromPtrWithDefault(base.ExpectedMonthlyHours, s.ExpectedMonthlyHours)
	base.TrackLunchBreak = domain.BoolFromPtrWithDefault(base.TrackLunchBreak, s.TrackLunchBreak)
	base.DefaultLunchBreakMinutes = domain.IntFromPtrWithDefault(base.DefaultLunchBreakMinutes, s.DefaultLunchBreakMinutes)
	base.ShowHolidays = domain.BoolFromPtrWithDefault(base.ShowHolidays, s.ShowHolidays)

	if s.WorkDays != nil {
		wd, err := domain.ParseWorkDays(*s.WorkDays)
		if err != nil {
			return nil, fmt.Errorf("settings.workDays: %w", err)
		}
		base.WorkDays = wd
	}
	if s.State != nil {
		state, err := domain.ParseRegionCode(*s.State)
		if err != nil {
			return nil, fmt.Errorf("settings.state: %w", err)
		}
		base.State = state
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}
