package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/timbang/internal/db"
	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/holiday"
	"github.com/alexanderramin/timbang/internal/repository"
	"github.com/alexanderramin/timbang/internal/stats"
)

type holidayService struct {
	holidays repository.HolidayRepo
	client   holiday.Client
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewHolidayService(
	holidays repository.HolidayRepo,
	client holiday.Client,
	uow db.UnitOfWork,
	clock Clock,
	observers ...UseCaseObserver,
) HolidayService {
	return &holidayService{
		holidays: holidays,
		client:   client,
		uow:      uow,
		clock:    clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *holidayService) List(ctx context.Context, state domain.RegionCode, year int) ([]domain.Holiday, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("%q: %w", state, domain.ErrUnknownRegion)
	}
	if year == 0 {
		return s.holidays.ListByState(ctx, state)
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return s.holidays.ListBetween(ctx, state, from, from.AddDate(1, 0, 0))
}

// Refresh fetches the current and the following year so that calendars
// around New Year are covered.
func (s *holidayService) Refresh(ctx context.Context) (count int, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "refresh-holidays", time.Now(), fields, &err)

	year := s.clock().Year()
	fields["year"] = year

	var fetched []domain.Holiday
	for _, y := range []int{year, year + 1} {
		batch, err := s.client.Fetch(ctx, y)
		if err != nil {
			return 0, fmt.Errorf("fetching holidays for %d: %w", y, err)
		}
		fetched = append(fetched, batch...)
	}

	fetched = dedupeHolidays(fetched)
	fields["fetched"] = len(fetched)
	if len(fetched) == 0 {
		return 0, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteHolidayRepo(tx).ReplaceAll(ctx, fetched)
	})
	if err != nil {
		return 0, err
	}
	return len(fetched), nil
}

func (s *holidayService) EnsureLoaded(ctx context.Context) (bool, error) {
	n, err := s.holidays.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if _, err := s.Refresh(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *holidayService) Index(ctx context.Context, state domain.RegionCode, ym stats.YearMonth) (domain.HolidayIndex, error) {
	holidays, err := s.holidays.ListBetween(ctx, state, ym.Start(), ym.End())
	if err != nil {
		return nil, err
	}
	return domain.NewHolidayIndex(holidays), nil
}

func dedupeHolidays(holidays []domain.Holiday) []domain.Holiday {
	type key struct {
		state domain.RegionCode
		date  string
		name  string
	}
	seen := make(map[key]bool, len(holidays))
	out := holidays[:0]
	for _, h := range holidays {
		k := key{h.State, h.Date, h.Name}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, h)
	}
	return out
}
