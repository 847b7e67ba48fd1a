package contract

import (
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/service"
	"github.com/alexanderramin/timbang/internal/stats"
)

// WorkSession is the wire form of a session.
type WorkSession struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Notes     string  `json:"notes"`
	Hours     float64 `json:"hours"`
	Open      bool    `json:"open"`
}

// ClockRequest is the body of clock-in and clock-out. A missing timestamp
// means now.
type ClockRequest struct {
	Notes     string  `json:"notes"`
	Timestamp *string `json:"timestamp,omitempty"`
}

// ManualEntryRequest creates a closed session.
type ManualEntryRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Notes     string `json:"notes"`
}

// EditSessionRequest is a partial update; absent fields are left alone.
type EditSessionRequest struct {
	NewStartTime *string `json:"newStartTime,omitempty"`
	NewEndTime   *string `json:"newEndTime,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// SessionPage mirrors a paged listing, newest first.
type SessionPage struct {
	Content       []WorkSession `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int           `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
}

func NewWorkSession(s *domain.WorkSession, loc *time.Location) WorkSession {
	out := WorkSession{
		ID:        s.ID,
		Username:  s.Owner,
		StartTime: formatTime(s.StartTime, loc),
		Notes:     s.Notes,
		Hours:     stats.RoundTenth(s.Hours()),
		Open:      s.IsOpen(),
	}
	if s.EndTime != nil {
		end := formatTime(*s.EndTime, loc)
		out.EndTime = &end
	}
	return out
}

func NewWorkSessions(sessions []*domain.WorkSession, loc *time.Location) []WorkSession {
	out := make([]WorkSession, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, NewWorkSession(s, loc))
	}
	return out
}

func NewSessionPage(p *service.SessionPage, loc *time.Location) SessionPage {
	return SessionPage{
		Content:       NewWorkSessions(p.Sessions, loc),
		Page:          p.Page,
		Size:          p.PageSize,
		TotalElements: p.Total,
		TotalPages:    p.TotalPages,
	}
}
