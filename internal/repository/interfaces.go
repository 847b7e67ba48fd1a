package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
)

// SessionRepo stores work sessions. Every lookup is scoped to an owner; a
// session owned by someone else is reported as ErrNotFound.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.WorkSession) error
	GetByID(ctx context.Context, owner string, id int64) (*domain.WorkSession, error)
	GetOpen(ctx context.Context, owner string) (*domain.WorkSession, error)
	Update(ctx context.Context, s *domain.WorkSession) error
	Delete(ctx context.Context, owner string, id int64) error
	ListByOwner(ctx context.Context, owner string) ([]*domain.WorkSession, error)
	ListBetween(ctx context.Context, owner string, from, to time.Time) ([]*domain.WorkSession, error)
	ListPage(ctx context.Context, owner string, limit, offset int) ([]*domain.WorkSession, error)
	CountByOwner(ctx context.Context, owner string) (int, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, owner string) (*domain.WorkSettings, error)
	Upsert(ctx context.Context, s *domain.WorkSettings) error
}

type HolidayRepo interface {
	ReplaceAll(ctx context.Context, holidays []domain.Holiday) error
	ListByState(ctx context.Context, state domain.RegionCode) ([]domain.Holiday, error)
	ListBetween(ctx context.Context, state domain.RegionCode, from, to time.Time) ([]domain.Holiday, error)
	Count(ctx context.Context) (int, error)
}

// EntryRepo reads and writes the legacy clock-in/clock-out log.
type EntryRepo interface {
	Create(ctx context.Context, e *domain.WorkEntry) error
	ListByOwner(ctx context.Context, owner string) ([]domain.WorkEntry, error)
	Owners(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}
