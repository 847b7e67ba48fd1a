package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/timbang/internal/db"
	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		uow:      uow,
		clock:    clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) ClockIn(ctx context.Context, owner string, at *time.Time, notes string) (session *domain.WorkSession, err error) {
	defer observe(ctx, s.observer, "clock-in", time.Now(), map[string]any{"owner": owner}, &err)

	now := storedNow(s.clock)
	start, err := s.eventTime(at, now)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		open, err := txSessions.GetOpen(ctx, owner)
		if err == nil {
			return fmt.Errorf("%w since %s", ErrAlreadyClockedIn, open.StartTime.Format(time.RFC3339))
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		session = &domain.WorkSession{
			Owner:     owner,
			StartTime: start,
			Notes:     notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return txSessions.Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) ClockOut(ctx context.Context, owner string, at *time.Time, notes string) (session *domain.WorkSession, err error) {
	defer observe(ctx, s.observer, "clock-out", time.Now(), map[string]any{"owner": owner}, &err)

	now := storedNow(s.clock)
	end, err := s.eventTime(at, now)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		open, err := txSessions.GetOpen(ctx, owner)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotClockedIn
		}
		if err != nil {
			return err
		}

		if err := open.Close(end, now); err != nil {
			return err
		}
		open.AppendNote(notes)
		if err := txSessions.Update(ctx, open); err != nil {
			return err
		}
		session = open
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) AddManual(ctx context.Context, owner string, start, end time.Time, notes string) (session *domain.WorkSession, err error) {
	defer observe(ctx, s.observer, "add-session", time.Now(), map[string]any{"owner": owner}, &err)

	now := storedNow(s.clock)
	start = start.UTC().Truncate(time.Second)
	end = end.UTC().Truncate(time.Second)
	if end.After(now) {
		return nil, ErrFutureTimestamp
	}

	session = &domain.WorkSession{
		Owner:     owner,
		StartTime: start,
		Notes:     notes,
		CreatedAt: now,
	}
	if err = session.Close(end, now); err != nil {
		return nil, err
	}
	if err = s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Edit(ctx context.Context, owner string, id int64, req EditRequest) (session *domain.WorkSession, err error) {
	defer observe(ctx, s.observer, "edit-session", time.Now(), map[string]any{"owner": owner, "session_id": id}, &err)

	now := storedNow(s.clock)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		current, err := txSessions.GetByID(ctx, owner, id)
		if err != nil {
			return err
		}

		if req.Start != nil {
			current.StartTime = req.Start.UTC().Truncate(time.Second)
		}
		if req.End != nil {
			end := req.End.UTC().Truncate(time.Second)
			if end.After(now) {
				return ErrFutureTimestamp
			}
			current.EndTime = &end
		}
		if req.Notes != nil {
			current.Notes = *req.Notes
		}
		if current.EndTime != nil && current.EndTime.Before(current.StartTime) {
			return ErrEndBeforeStart
		}
		current.UpdatedAt = now

		if err := txSessions.Update(ctx, current); err != nil {
			return err
		}
		session = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Delete(ctx context.Context, owner string, id int64) (err error) {
	defer observe(ctx, s.observer, "delete-session", time.Now(), map[string]any{"owner": owner, "session_id": id}, &err)
	return s.sessions.Delete(ctx, owner, id)
}

func (s *sessionService) Get(ctx context.Context, owner string, id int64) (*domain.WorkSession, error) {
	return s.sessions.GetByID(ctx, owner, id)
}

func (s *sessionService) List(ctx context.Context, owner string, from, to *time.Time) ([]*domain.WorkSession, error) {
	if from == nil && to == nil {
		return s.sessions.ListByOwner(ctx, owner)
	}

	lo := time.Unix(0, 0)
	hi := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	if from != nil {
		lo = *from
	}
	if to != nil {
		hi = *to
	}
	if lo.After(hi) {
		return nil, ErrInvalidRange
	}

	sessions, err := s.sessions.ListBetween(ctx, owner, lo, hi)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
	return sessions, nil
}

func (s *sessionService) ListPage(ctx context.Context, owner string, page int) (*SessionPage, error) {
	if page < 0 {
		return nil, ErrInvalidPage
	}

	total, err := s.sessions.CountByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListPage(ctx, owner, PageSize, page*PageSize)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []*domain.WorkSession{}
	}

	return &SessionPage{
		Page:       page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: (total + PageSize - 1) / PageSize,
		Sessions:   sessions,
	}, nil
}

func (s *sessionService) Current(ctx context.Context, owner string) (*domain.WorkSession, error) {
	open, err := s.sessions.GetOpen(ctx, owner)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return open, nil
}

// eventTime resolves an optional clock event timestamp against now.
func (s *sessionService) eventTime(at *time.Time, now time.Time) (time.Time, error) {
	if at == nil {
		return now, nil
	}
	t := at.UTC().Truncate(time.Second)
	if t.After(now) {
		return time.Time{}, ErrFutureTimestamp
	}
	return t, nil
}
