package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/holiday"
	"github.com/alexanderramin/timbang/internal/stats"
	"github.com/alexanderramin/timbang/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayClient struct {
	byYear map[int][]domain.Holiday
	err    error
	years  []int
}

func (f *fakeHolidayClient) Fetch(_ context.Context, year int) ([]domain.Holiday, error) {
	f.years = append(f.years, year)
	if f.err != nil {
		return nil, f.err
	}
	return f.byYear[year], nil
}

func newFakeHolidayClient() *fakeHolidayClient {
	return &fakeHolidayClient{byYear: map[int][]domain.Holiday{
		2024: {
			testutil.NewTestHoliday(domain.RegionBY, "2024-01-01", "Neujahrstag"),
			testutil.NewTestHoliday(domain.RegionBY, "2024-06-20", "Fronleichnam"),
			testutil.NewTestHoliday(domain.RegionBE, "2024-01-01", "Neujahrstag"),
			testutil.NewTestHoliday(domain.RegionBY, "2024-01-01", "Neujahrstag"),
		},
		2025: {
			testutil.NewTestHoliday(domain.RegionBY, "2025-01-01", "Neujahrstag"),
		},
	}}
}

func TestHolidayRefresh(t *testing.T) {
	env := newTestEnv(t)
	client := newFakeHolidayClient()
	obs := &recordingObserver{}
	svc := NewHolidayService(env.holidays, client, env.uow, env.clock, obs)
	ctx := context.Background()

	n, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n, "duplicates are collapsed")
	assert.Equal(t, []int{2024, 2025}, client.years)

	count, err := env.holidays.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	ev := obs.last()
	assert.Equal(t, "refresh-holidays", ev.Name)
	assert.Equal(t, 2024, ev.Fields["year"])
}

func TestHolidayRefresh_EmptyResponseKeepsData(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.holidays.ReplaceAll(ctx, []domain.Holiday{
		testutil.NewTestHoliday(domain.RegionHH, "2024-10-31", "Reformationstag"),
	}))

	svc := NewHolidayService(env.holidays, &fakeHolidayClient{}, env.uow, env.clock)
	n, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := env.holidays.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHolidayRefresh_FetchErrorKeepsData(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.holidays.ReplaceAll(ctx, []domain.Holiday{
		testutil.NewTestHoliday(domain.RegionHH, "2024-10-31", "Reformationstag"),
	}))

	svc := NewHolidayService(env.holidays, &fakeHolidayClient{err: holiday.ErrUnavailable}, env.uow, env.clock)
	_, err := svc.Refresh(ctx)
	require.ErrorIs(t, err, holiday.ErrUnavailable)

	count, err := env.holidays.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHolidayRefresh_RollbackOnInsertFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.holidays.ReplaceAll(ctx, []domain.Holiday{
		testutil.NewTestHoliday(domain.RegionHH, "2024-10-31", "Reformationstag"),
	}))

	// Exec #1 is the DELETE, #2 the first INSERT.
	failUoW := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: errors.New("injected insert failure")}
	svc := NewHolidayService(env.holidays, newFakeHolidayClient(), failUoW, env.clock)

	_, err := svc.Refresh(ctx)
	require.Error(t, err)

	stored, err := env.holidays.ListByState(ctx, domain.RegionHH)
	require.NoError(t, err)
	require.Len(t, stored, 1, "delete must be rolled back")
	assert.Equal(t, "Reformationstag", stored[0].Name)
}

func TestHolidayEnsureLoaded(t *testing.T) {
	env := newTestEnv(t)
	client := newFakeHolidayClient()
	svc := NewHolidayService(env.holidays, client, env.uow, env.clock)
	ctx := context.Background()

	loaded, err := svc.EnsureLoaded(ctx)
	require.NoError(t, err)
	assert.True(t, loaded)

	loaded, err = svc.EnsureLoaded(ctx)
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Len(t, client.years, 2, "second call must not fetch")
}

func TestHolidayListAndIndex(t *testing.T) {
	env := newTestEnv(t)
	svc := NewHolidayService(env.holidays, newFakeHolidayClient(), env.uow, env.clock)
	ctx := context.Background()
	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	all, err := svc.List(ctx, domain.RegionBY, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	in2024, err := svc.List(ctx, domain.RegionBY, 2024)
	require.NoError(t, err)
	assert.Len(t, in2024, 2)

	_, err = svc.List(ctx, "XX", 2024)
	require.ErrorIs(t, err, domain.ErrUnknownRegion)

	ym, err := stats.ParseYearMonth("2024-06", time.UTC)
	require.NoError(t, err)
	idx, err := svc.Index(ctx, domain.RegionBY, ym)
	require.NoError(t, err)

	on := idx.On(time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC))
	require.Len(t, on, 1)
	assert.Equal(t, "Fronleichnam", on[0].Name)
	assert.Empty(t, idx.On(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)))
}

func TestHolidayService_SatisfiesRefresher(t *testing.T) {
	var _ holiday.Refresher = NewHolidayService(nil, nil, nil, nil)
}
