package contract

import (
	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/importer"
)

// WorkConfig is the wire form of the work settings.
type WorkConfig struct {
	ExpectedWeeklyHours      float64 `json:"expectedWeeklyHours"`
	ExpectedMonthlyHours     float64 `json:"expectedMonthlyHours"`
	TrackLunchBreak          bool    `json:"trackLunchBreak"`
	DefaultLunchBreakMinutes int     `json:"defaultLunchBreakMinutes"`
	WorkDays                 string  `json:"workDays"`
	State                    string  `json:"state"`
	StateName                string  `json:"stateName"`
	ShowHolidays             bool    `json:"showHolidays"`
}

// WorkConfigPatch is the body of a settings update. It shares the import
// file shape, so fields left out keep their stored value.
type WorkConfigPatch = importer.SettingsImport

func NewWorkConfig(s *domain.WorkSettings) WorkConfig {
	return WorkConfig{
		ExpectedWeeklyHours:      s.ExpectedWeeklyHours,
		ExpectedMonthlyHours:     s.ExpectedMonthlyHours,
		TrackLunchBreak:          s.TrackLunchBreak,
		DefaultLunchBreakMinutes: s.DefaultLunchBreakMinutes,
		WorkDays:                 s.WorkDays.String(),
		State:                    string(s.State),
		StateName:                s.State.DisplayName(),
		ShowHolidays:             s.ShowHolidays,
	}
}
