package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/repository"
	"github.com/alexanderramin/timbang/internal/stats"
)

type statsService struct {
	sessions repository.SessionRepo
	settings repository.SettingsRepo
	clock    Clock
}

func NewStatsService(sessions repository.SessionRepo, settings repository.SettingsRepo, clock Clock) StatsService {
	return &statsService{
		sessions: sessions,
		settings: settings,
		clock:    clockOrNow(clock),
	}
}

func (s *statsService) Summary(ctx context.Context, owner string, loc *time.Location) (*Summary, error) {
	now := s.clock().In(locationOrLocal(loc))

	settings, err := loadSettings(ctx, s.settings, owner)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	sessions, err := s.sessions.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}

	totals := stats.ComputeTotals(sessions, now)
	summary := &Summary{
		Now:          now,
		Totals:       totals,
		Weekly:       stats.ComputeProgress(totals.Weekly, settings.ExpectedWeeklyHours, settings.WorkDays, domain.PeriodWeek, now),
		Monthly:      stats.ComputeProgress(totals.Monthly, settings.ExpectedMonthlyHours, settings.WorkDays, domain.PeriodMonth, now),
		Settings:     settings,
		SessionCount: len(sessions),
	}

	// ListByOwner is newest first, so the first open session is the current one.
	for _, sess := range sessions {
		if sess.IsOpen() {
			summary.Open = sess
			if elapsed := now.Sub(sess.StartTime); elapsed > 0 {
				summary.OpenHours = stats.RoundTenth(elapsed.Hours())
			}
			break
		}
	}
	return summary, nil
}

func (s *statsService) Monthly(ctx context.Context, owner string, ym stats.YearMonth) (*stats.MonthlyStats, error) {
	settings, err := loadSettings(ctx, s.settings, owner)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	sessions, err := s.sessions.ListBetween(ctx, owner, ym.Start(), ym.End())
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}

	monthly := stats.ComputeMonthlyStats(sessions, ym, settings.ExpectedMonthlyHours)
	return &monthly, nil
}
