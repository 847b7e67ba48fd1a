package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkDays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"mon to fri", "1,2,3,4,5", []int{1, 2, 3, 4, 5}, false},
		{"unordered with spaces", " 5, 1 ,3", []int{1, 3, 5}, false},
		{"duplicates collapse", "1,1,2", []int{1, 2}, false},
		{"weekend", "6,7", []int{6, 7}, false},
		{"blank", "", nil, false},
		{"zero rejected", "0,1", nil, true},
		{"eight rejected", "8", nil, true},
		{"garbage rejected", "mon", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkDays(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWorkDays)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Days())
		})
	}
}

func TestWorkDays_Contains(t *testing.T) {
	wd := WeekdaysMonToFri
	assert.True(t, wd.Contains(time.Monday))
	assert.True(t, wd.Contains(time.Friday))
	assert.False(t, wd.Contains(time.Saturday))
	assert.False(t, wd.Contains(time.Sunday))

	sunday, err := NewWorkDays(7)
	require.NoError(t, err)
	assert.True(t, sunday.Contains(time.Sunday))
	assert.False(t, sunday.Contains(time.Monday))
}

func TestWorkDays_StringRoundTrip(t *testing.T) {
	assert.Equal(t, "1,2,3,4,5", WeekdaysMonToFri.String())
	assert.Equal(t, 5, WeekdaysMonToFri.Len())
	assert.Equal(t, "", WorkDays(0).String())
}

func TestWorkDays_SetAsFlagValue(t *testing.T) {
	var wd WorkDays
	require.NoError(t, wd.Set("2,4"))
	assert.Equal(t, []int{2, 4}, wd.Days())
	assert.Equal(t, "weekdays", wd.Type())

	assert.Error(t, wd.Set("9"))
	assert.Equal(t, []int{2, 4}, wd.Days(), "failed Set must not modify the value")
}

func TestISOWeekday(t *testing.T) {
	assert.Equal(t, 1, ISOWeekday(time.Monday))
	assert.Equal(t, 6, ISOWeekday(time.Saturday))
	assert.Equal(t, 7, ISOWeekday(time.Sunday))
}
