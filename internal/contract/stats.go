package contract

import (
	"time"

	"github.com/alexanderramin/timbang/internal/service"
	"github.com/alexanderramin/timbang/internal/stats"
)

type Totals = stats.Totals

type Progress = stats.Progress

type MonthlyStats = stats.MonthlyStats

// Summary is the dashboard response.
type Summary struct {
	Now             string       `json:"now"`
	Totals          Totals       `json:"totals"`
	WeeklyProgress  Progress     `json:"weeklyProgress"`
	MonthlyProgress Progress     `json:"monthlyProgress"`
	OpenSession     *WorkSession `json:"openSession"`
	OpenHours       float64      `json:"openHours"`
	SessionCount    int          `json:"sessionCount"`
	Config          WorkConfig   `json:"config"`
}

func NewSummary(s *service.Summary, loc *time.Location) Summary {
	out := Summary{
		Now:             formatTime(s.Now, loc),
		Totals:          s.Totals,
		WeeklyProgress:  s.Weekly,
		MonthlyProgress: s.Monthly,
		OpenHours:       s.OpenHours,
		SessionCount:    s.SessionCount,
		Config:          NewWorkConfig(s.Settings),
	}
	if s.Open != nil {
		open := NewWorkSession(s.Open, loc)
		out.OpenSession = &open
	}
	return out
}
