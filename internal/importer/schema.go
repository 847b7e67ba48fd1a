package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ImportSchema is the top-level JSON structure of an import file. A file
// holding a bare JSON array is read as a list of sessions.
type ImportSchema struct {
	Sessions []SessionImport `json:"sessions,omitempty"`
	Entries  []EntryImport   `json:"entries,omitempty"`
	Settings *SettingsImport `json:"settings,omitempty"`
}

// SessionImport mirrors a work session as served by the REST API.
type SessionImport struct {
	ID        int64   `json:"id,omitempty"`
	Username  string  `json:"username,omitempty"`
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// EntryImport mirrors a legacy clock-in/clock-out entry.
type EntryImport struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Notes     string `json:"notes,omitempty"`
}

// SettingsImport mirrors the work configuration resource. Absent fields
// keep their defaults.
type SettingsImport struct {
	ExpectedWeeklyHours      *float64 `json:"expectedWeeklyHours,omitempty"`
	ExpectedMonthlyHours     *float64 `json:"expectedMonthlyHours,omitempty"`
	TrackLunchBreak          *bool    `json:"trackLunchBreak,omitempty"`
	DefaultLunchBreakMinutes *int     `json:"defaultLunchBreakMinutes,omitempty"`
	WorkDays                 *string  `json:"workDays,omitempty"`
	State                    *string  `json:"state,omitempty"`
	ShowHolidays             *bool    `json:"showHolidays,omitempty"`
}

// DecodeSchema reads an import file from r.
func DecodeSchema(r io.Reader) (*ImportSchema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import data: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("import data is empty")
	}

	var schema ImportSchema
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &schema.Sessions); err != nil {
			return nil, fmt.Errorf("parsing session list: %w", err)
		}
		return &schema, nil
	}
	if err := json.Unmarshal(trimmed, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

// DecodeSessions reads a JSON array of sessions.
func DecodeSessions(r io.Reader) ([]SessionImport, error) {
	var out []SessionImport
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("parsing sessions: %w", err)
	}
	return out, nil
}

// DecodeEntries reads a JSON array of legacy clock entries.
func DecodeEntries(r io.Reader) ([]EntryImport, error) {
	var out []EntryImport
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("parsing entries: %w", err)
	}
	return out, nil
}

// DecodeSettings reads a single work configuration object.
func DecodeSettings(r io.Reader) (*SettingsImport, error) {
	var out SettingsImport
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return &out, nil
}

// LoadImportSchema reads and parses an import file from disk.
func LoadImportSchema(path string) (*ImportSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSchema(f)
}
