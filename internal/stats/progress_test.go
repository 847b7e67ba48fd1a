package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/stretchr/testify/assert"
)

var wednesday = at("2024-06-12T12:00:00Z")

func TestComputeProgress_BehindMidWeek(t *testing.T) {
	p := ComputeProgress(20, 40, domain.WeekdaysMonToFri, domain.PeriodWeek, wednesday)

	assert.Equal(t, domain.ProgressBehind, p.Status)
	assert.Equal(t, "4.0h behind (17%)", p.Message)
	assert.Equal(t, 3, p.ElapsedWorkDays)
	assert.Equal(t, 5, p.TotalWorkDays)
	assert.InDelta(t, 24.0, p.ExpectedHours, 1e-9)
	assert.InDelta(t, -4.0, p.DeltaHours, 1e-9)
}

func TestComputeProgress_Classification(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		status  domain.ProgressStatus
		message string
	}{
		{"ahead", 27, domain.ProgressAhead, "3.0h ahead (13%)"},
		{"well ahead", 30, domain.ProgressAhead, "6.0h ahead (25%)"},
		{"behind", 21, domain.ProgressBehind, "3.0h behind (13%)"},
		{"slightly behind stays on track", 23.5, domain.ProgressOnTrack, "on track (0.5h behind, 2%)"},
		{"slightly ahead stays on track", 25, domain.ProgressOnTrack, "on track (1.0h ahead, 4%)"},
		{"exact", 24, domain.ProgressOnTrack, "on track (0.0h ahead, 0%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputeProgress(tt.current, 40, domain.WeekdaysMonToFri, domain.PeriodWeek, wednesday)
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.message, p.Message)
		})
	}
}

func TestComputeProgress_ThresholdsAreInclusive(t *testing.T) {
	monday := at("2024-06-10T12:00:00Z")

	ahead := ComputeProgress(11, 50, domain.WeekdaysMonToFri, domain.PeriodWeek, monday)
	assert.Equal(t, domain.ProgressAhead, ahead.Status)
	assert.Equal(t, "1.0h ahead (10%)", ahead.Message)

	behind := ComputeProgress(9, 50, domain.WeekdaysMonToFri, domain.PeriodWeek, monday)
	assert.Equal(t, domain.ProgressBehind, behind.Status)
	assert.Equal(t, "1.0h behind (10%)", behind.Message)
}

func TestComputeProgress_ZeroTarget(t *testing.T) {
	p := ComputeProgress(12, 0, domain.WeekdaysMonToFri, domain.PeriodWeek, wednesday)

	assert.Equal(t, domain.ProgressOnTrack, p.Status)
	assert.Equal(t, 0.0, p.ExpectedHours)
	assert.False(t, math.IsNaN(p.DeviationPct))
}

func TestComputeProgress_NoWorkDays(t *testing.T) {
	p := ComputeProgress(12, 40, 0, domain.PeriodWeek, wednesday)

	assert.Equal(t, domain.ProgressOnTrack, p.Status)
	assert.Equal(t, 0, p.TotalWorkDays)
}

func TestComputeProgress_NothingExpectedYet(t *testing.T) {
	// Weekend-only schedule evaluated on a Wednesday: no work day has elapsed.
	weekend, err := domain.NewWorkDays(6, 7)
	assert.NoError(t, err)

	worked := ComputeProgress(3, 16, weekend, domain.PeriodWeek, wednesday)
	assert.Equal(t, domain.ProgressAhead, worked.Status)
	assert.Equal(t, "3.0h ahead (no hours expected yet)", worked.Message)

	idle := ComputeProgress(0, 16, weekend, domain.PeriodWeek, wednesday)
	assert.Equal(t, domain.ProgressOnTrack, idle.Status)
}

func TestComputeProgress_Month(t *testing.T) {
	// June 2024: 20 weekdays, 8 of them elapsed by Wednesday the 12th.
	p := ComputeProgress(64, 160, domain.WeekdaysMonToFri, domain.PeriodMonth, wednesday)

	assert.Equal(t, 8, p.ElapsedWorkDays)
	assert.Equal(t, 20, p.TotalWorkDays)
	assert.InDelta(t, 64.0, p.ExpectedHours, 1e-9)
	assert.Equal(t, domain.ProgressOnTrack, p.Status)
}

func TestComputeProgress_NeverNaN(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	base := at("2024-01-01T00:00:00Z")

	for trial := 0; trial < 300; trial++ {
		now := base.AddDate(0, 0, rng.Intn(366))
		wd := domain.WorkDays(rng.Intn(256)) &^ 1
		period := domain.PeriodWeek
		if rng.Intn(2) == 0 {
			period = domain.PeriodMonth
		}
		current := float64(rng.Intn(80))
		target := float64(rng.Intn(200) - 20)

		p := ComputeProgress(current, target, wd, period, now)

		assert.False(t, math.IsNaN(p.ExpectedHours) || math.IsInf(p.ExpectedHours, 0), "trial %d", trial)
		assert.False(t, math.IsNaN(p.DeviationPct) || math.IsInf(p.DeviationPct, 0), "trial %d", trial)
		assert.LessOrEqual(t, p.ElapsedWorkDays, p.TotalWorkDays, "trial %d", trial)
		assert.NotEmpty(t, p.Message, "trial %d", trial)
	}
}
