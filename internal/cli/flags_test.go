package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWhen(t *testing.T) {
	cest := time.FixedZone("CEST", 2*60*60)

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"empty is now", "", now},
		{"now", "now", now},
		{"clock time today", "09:30", time.Date(2024, 6, 12, 7, 30, 0, 0, time.UTC)},
		{"date is midnight", "2024-06-10", time.Date(2024, 6, 9, 22, 0, 0, 0, time.UTC)},
		{"local timestamp", "2024-06-10T08:00", time.Date(2024, 6, 10, 6, 0, 0, 0, time.UTC)},
		{"offset timestamp", "2024-06-10T08:00:00Z", time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWhen(tt.in, cest, now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}

	_, err := parseWhen("tomorrow-ish", cest, now)
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	from, to, err := parseRange("2024-06-01", "2024-06-30", time.UTC, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), *to, "a bare date is inclusive")

	_, to, err = parseRange("", "2024-06-30T12:00:00Z", time.UTC, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC), *to)

	from, to, err = parseRange("", "", time.UTC, now)
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)

	_, _, err = parseRange("bogus", "", time.UTC, now)
	assert.ErrorContains(t, err, "--from")
}
