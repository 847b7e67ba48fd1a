package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var convertNow = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

func TestConvert_SessionsAndEntries(t *testing.T) {
	schema := &ImportSchema{
		Sessions: []SessionImport{
			{StartTime: "2024-06-12T09:00:00Z", EndTime: ptrStr("2024-06-12T12:30:00Z"), Notes: "late"},
			{StartTime: "2024-06-10T09:00:00Z", EndTime: ptrStr("2024-06-10T17:00:00Z")},
			{StartTime: "2024-06-13T09:00:00Z"},
		},
		Entries: []EntryImport{
			{ID: 2, Timestamp: "2024-06-11T15:00:00Z", Type: "CLOCK_OUT", Notes: "legacy"},
			{ID: 1, Timestamp: "2024-06-11T09:00:00Z", Type: "CLOCK_IN"},
			{ID: 3, Timestamp: "2024-06-11T16:00:00Z", Type: "CLOCK_OUT"},
		},
	}
	require.Empty(t, ValidateImportSchema(schema, time.UTC))

	got, err := Convert(schema, "ana", time.UTC, convertNow)
	require.NoError(t, err)

	require.Len(t, got.Sessions, 4)
	assert.Equal(t, 1, got.OrphanedClockOuts)
	assert.Nil(t, got.Settings)

	var starts []int
	for _, s := range got.Sessions {
		assert.Equal(t, "ana", s.Owner)
		starts = append(starts, s.StartTime.Day())
	}
	assert.Equal(t, []int{10, 11, 12, 13}, starts, "merged in start order")

	assert.Equal(t, "legacy", got.Sessions[1].Notes)
	assert.Equal(t, 6.0, got.Sessions[1].Hours())
	assert.Equal(t, 3.5, got.Sessions[2].Hours())
	assert.True(t, got.Sessions[3].IsOpen())
}

func TestConvert_SettingsOverlayDefaults(t *testing.T) {
	schema := &ImportSchema{
		Settings: &SettingsImport{
			ExpectedWeeklyHours: ptrFloat(32),
			WorkDays:            ptrStr("1,2,3,4"),
			State:               ptrStr("by"),
			ShowHolidays:        ptrBool(false),
		},
	}

	got, err := Convert(schema, "ana", time.UTC, convertNow)
	require.NoError(t, err)

	require.NotNil(t, got.Settings)
	s := got.Settings
	assert.Equal(t, "ana", s.Owner)
	assert.Equal(t, 32.0, s.ExpectedWeeklyHours)
	assert.Equal(t, 160.0, s.ExpectedMonthlyHours, "untouched field keeps its default")
	assert.Equal(t, []int{1, 2, 3, 4}, s.WorkDays.Days())
	assert.Equal(t, domain.RegionBY, s.State)
	assert.False(t, s.ShowHolidays)
	assert.True(t, s.TrackLunchBreak)
	assert.Equal(t, convertNow, s.UpdatedAt)
}

func TestConvert_RejectsBackwardsSession(t *testing.T) {
	schema := &ImportSchema{
		Sessions: []SessionImport{
			{StartTime: "2024-06-12T09:00:00Z", EndTime: ptrStr("2024-06-12T08:00:00Z")},
		},
	}

	_, err := Convert(schema, "ana", time.UTC, convertNow)
	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)
}

func TestApplySettings_InvalidState(t *testing.T) {
	_, err := ApplySettings(domain.DefaultWorkSettings("ana"), &SettingsImport{State: ptrStr("ZZ")})
	assert.ErrorIs(t, err, domain.ErrUnknownRegion)
}
