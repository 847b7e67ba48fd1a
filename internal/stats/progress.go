package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
)

// Classification thresholds on current/expected hours.
const (
	AheadRatio  = 1.1
	BehindRatio = 0.9
)

// Progress compares worked hours against the pro-rated target of a period.
type Progress struct {
	Period          domain.Period         `json:"period"`
	Status          domain.ProgressStatus `json:"status"`
	Message         string                `json:"message"`
	CurrentHours    float64               `json:"currentHours"`
	TargetHours     float64               `json:"targetHours"`
	ExpectedHours   float64               `json:"expectedHours"`
	DeltaHours      float64               `json:"deltaHours"`
	DeviationPct    float64               `json:"deviationPct"`
	ElapsedWorkDays int                   `json:"elapsedWorkDays"`
	TotalWorkDays   int                   `json:"totalWorkDays"`
}

// ComputeProgress classifies currentHours against the share of targetHours
// that should have been worked by today, given the work days elapsed in the
// period so far. Missing targets and periods without work days are reported
// as on track instead of dividing by zero.
func ComputeProgress(currentHours, targetHours float64, workDays domain.WorkDays, period domain.Period, now time.Time) Progress {
	start, end := PeriodBounds(period, now)
	p := Progress{
		Period:          period,
		Status:          domain.ProgressOnTrack,
		CurrentHours:    currentHours,
		TargetHours:     targetHours,
		ElapsedWorkDays: CountWorkDays(start, now, workDays),
		TotalWorkDays:   CountWorkDays(start, end.AddDate(0, 0, -1), workDays),
	}

	if targetHours <= 0 || math.IsNaN(targetHours) {
		p.Message = "on track (no target set)"
		return p
	}
	if p.TotalWorkDays == 0 {
		p.Message = "on track (no work days configured)"
		return p
	}

	p.ExpectedHours = targetHours * float64(p.ElapsedWorkDays) / float64(p.TotalWorkDays)
	p.DeltaHours = RoundTenth(currentHours - p.ExpectedHours)

	if p.ExpectedHours == 0 {
		if currentHours > 0 {
			p.Status = domain.ProgressAhead
			p.Message = fmt.Sprintf("%.1fh ahead (no hours expected yet)", RoundTenth(currentHours))
			return p
		}
		p.Message = "on track (no hours expected yet)"
		return p
	}

	ratio := currentHours / p.ExpectedHours
	p.DeviationPct = (ratio - 1) * 100

	absDelta := RoundTenth(math.Abs(currentHours - p.ExpectedHours))
	pct := int(math.Round(math.Abs(p.DeviationPct)))

	switch {
	case ratio >= AheadRatio:
		p.Status = domain.ProgressAhead
		p.Message = fmt.Sprintf("%.1fh ahead (%d%%)", absDelta, pct)
	case ratio <= BehindRatio:
		p.Status = domain.ProgressBehind
		p.Message = fmt.Sprintf("%.1fh behind (%d%%)", absDelta, pct)
	default:
		direction := "ahead"
		if currentHours < p.ExpectedHours {
			direction = "behind"
		}
		p.Message = fmt.Sprintf("on track (%.1fh %s, %d%%)", absDelta, direction, pct)
	}
	return p
}
