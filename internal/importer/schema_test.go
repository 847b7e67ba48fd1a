package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSchema_Object(t *testing.T) {
	data := `{
		"sessions": [{"id": 7, "username": "ana", "startTime": "2024-06-10T09:00:00", "endTime": "2024-06-10T17:00:00", "notes": "review"}],
		"entries": [{"id": 1, "timestamp": "2024-06-11T09:00:00Z", "type": "CLOCK_IN"}],
		"settings": {"expectedWeeklyHours": 38.5, "workDays": "1,2,3,4", "state": "BY"}
	}`

	schema, err := DecodeSchema(strings.NewReader(data))
	require.NoError(t, err)

	require.Len(t, schema.Sessions, 1)
	assert.Equal(t, "2024-06-10T09:00:00", schema.Sessions[0].StartTime)
	require.NotNil(t, schema.Sessions[0].EndTime)
	assert.Equal(t, "review", schema.Sessions[0].Notes)
	require.Len(t, schema.Entries, 1)
	assert.Equal(t, "CLOCK_IN", schema.Entries[0].Type)
	require.NotNil(t, schema.Settings)
	assert.Equal(t, 38.5, *schema.Settings.ExpectedWeeklyHours)
	assert.Equal(t, "1,2,3,4", *schema.Settings.WorkDays)
}

func TestDecodeSchema_BareArrayIsSessions(t *testing.T) {
	data := `  [{"startTime": "2024-06-10T09:00:00Z", "endTime": null}]`

	schema, err := DecodeSchema(strings.NewReader(data))
	require.NoError(t, err)

	require.Len(t, schema.Sessions, 1)
	assert.Nil(t, schema.Sessions[0].EndTime)
}

func TestDecodeSchema_Errors(t *testing.T) {
	_, err := DecodeSchema(strings.NewReader("   "))
	assert.Error(t, err)

	_, err = DecodeSchema(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestDecodeHelpers(t *testing.T) {
	sessions, err := DecodeSessions(strings.NewReader(`[{"startTime":"2024-06-10T09:00:00Z"}]`))
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	entries, err := DecodeEntries(strings.NewReader(`[{"id":1,"timestamp":"2024-06-10T09:00:00Z","type":"CLOCK_OUT","notes":"x"}]`))
	require.NoError(t, err)
	assert.Equal(t, "x", entries[0].Notes)

	settings, err := DecodeSettings(strings.NewReader(`{"showHolidays": false}`))
	require.NoError(t, err)
	require.NotNil(t, settings.ShowHolidays)
	assert.False(t, *settings.ShowHolidays)
	assert.Nil(t, settings.State)
}

func TestLoadImportSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"startTime":"2024-06-10T09:00:00Z"}]`), 0o600))

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	assert.Len(t, schema.Sessions, 1)

	_, err = LoadImportSchema(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
