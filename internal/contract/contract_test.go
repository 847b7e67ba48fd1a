package contract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/service"
	"github.com/alexanderramin/timbang/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkSession_Closed(t *testing.T) {
	start := time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC)
	end := start.Add(4*time.Hour + 20*time.Minute)
	s := &domain.WorkSession{ID: 5, Owner: "alice", StartTime: start, EndTime: &end, Notes: "n"}

	cest := time.FixedZone("CEST", 2*60*60)
	dto := NewWorkSession(s, cest)

	assert.Equal(t, "2024-06-10T09:00:00+02:00", dto.StartTime)
	require.NotNil(t, dto.EndTime)
	assert.Equal(t, "2024-06-10T13:20:00+02:00", *dto.EndTime)
	assert.Equal(t, 4.3, dto.Hours)
	assert.False(t, dto.Open)
	assert.Equal(t, "alice", dto.Username)
}

func TestNewWorkSession_OpenEncodesNullEnd(t *testing.T) {
	s := &domain.WorkSession{ID: 1, StartTime: time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC)}

	data, err := json.Marshal(NewWorkSession(s, nil))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"endTime":null`)
	assert.Contains(t, string(data), `"startTime":"2024-06-10T07:00:00Z"`)
	assert.Contains(t, string(data), `"open":true`)
}

func TestNewWorkSessions_EmptyIsArray(t *testing.T) {
	data, err := json.Marshal(NewWorkSessions(nil, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestParseOptionalTime(t *testing.T) {
	got, err := ParseOptionalTime(nil, time.UTC)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = ParseOptionalTime(&empty, time.UTC)
	require.NoError(t, err)
	assert.Nil(t, got)

	naive := "2024-06-10T09:30:00"
	got, err = ParseOptionalTime(&naive, time.FixedZone("CEST", 2*60*60))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 6, 10, 7, 30, 0, 0, time.UTC), *got)

	bad := "tomorrow"
	_, err = ParseOptionalTime(&bad, time.UTC)
	assert.Error(t, err)
}

func TestEditSessionRequest_Decode(t *testing.T) {
	var req EditSessionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"notes": ""}`), &req))
	assert.Nil(t, req.NewStartTime)
	assert.Nil(t, req.NewEndTime)
	require.NotNil(t, req.Notes, "explicit empty notes clear the field")
	assert.Equal(t, "", *req.Notes)
}

func TestNewWorkConfig(t *testing.T) {
	cfg := NewWorkConfig(domain.DefaultWorkSettings("me"))
	assert.Equal(t, "1,2,3,4,5", cfg.WorkDays)
	assert.Equal(t, "NATIONAL", cfg.State)
	assert.Equal(t, "Deutschlandweit", cfg.StateName)
	assert.Equal(t, 40.0, cfg.ExpectedWeeklyHours)
}

func TestNewSummary(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
	open := &domain.WorkSession{ID: 9, StartTime: now.Add(-time.Hour)}
	s := &service.Summary{
		Now:      now,
		Totals:   stats.Totals{Daily: 1, Weekly: 2, Monthly: 3, Total: 4},
		Open:     open,
		Settings: domain.DefaultWorkSettings("me"),
	}

	out := NewSummary(s, time.UTC)
	assert.Equal(t, "2024-06-12T15:00:00Z", out.Now)
	require.NotNil(t, out.OpenSession)
	assert.Equal(t, int64(9), out.OpenSession.ID)
	assert.Equal(t, 4.0, out.Totals.Total)
}

func TestNewSessionPage(t *testing.T) {
	p := &service.SessionPage{Page: 1, PageSize: 10, Total: 11, TotalPages: 2, Sessions: []*domain.WorkSession{
		{ID: 1, StartTime: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)},
	}}
	out := NewSessionPage(p, time.UTC)
	assert.Equal(t, 11, out.TotalElements)
	assert.Equal(t, 2, out.TotalPages)
	assert.Len(t, out.Content, 1)
}

func TestNewHolidays(t *testing.T) {
	out := NewHolidays([]domain.Holiday{{Date: "2024-10-03", Name: "Tag der Deutschen Einheit", State: domain.RegionNational}})
	require.Len(t, out, 1)
	assert.Equal(t, "NATIONAL", out[0].State)

	data, err := json.Marshal(NewHolidays(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
