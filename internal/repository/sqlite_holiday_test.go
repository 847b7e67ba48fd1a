package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holidayFixtures() []domain.Holiday {
	return []domain.Holiday{
		testutil.NewTestHoliday(domain.RegionBY, "2024-01-06", "Heilige Drei Könige"),
		testutil.NewTestHoliday(domain.RegionBY, "2024-01-01", "Neujahrstag"),
		testutil.NewTestHoliday(domain.RegionBY, "2024-10-03", "Tag der Deutschen Einheit"),
		testutil.NewTestHoliday(domain.RegionBE, "2024-03-08", "Frauentag"),
	}
}

func TestHolidayRepo_ReplaceAllAndList(t *testing.T) {
	repo := NewSQLiteHolidayRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, holidayFixtures()))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	by, err := repo.ListByState(ctx, domain.RegionBY)
	require.NoError(t, err)
	require.Len(t, by, 3)
	assert.Equal(t, "2024-01-01", by[0].Date, "ordered by date")
	assert.Equal(t, domain.RegionBY, by[0].State)
}

func TestHolidayRepo_ReplaceAllDropsPreviousRows(t *testing.T) {
	repo := NewSQLiteHolidayRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, holidayFixtures()))
	require.NoError(t, repo.ReplaceAll(ctx, []domain.Holiday{
		testutil.NewTestHoliday(domain.RegionNational, "2025-01-01", "Neujahrstag"),
	}))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHolidayRepo_ReplaceAllToleratesDuplicates(t *testing.T) {
	repo := NewSQLiteHolidayRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	dup := testutil.NewTestHoliday(domain.RegionBY, "2024-01-01", "Neujahrstag")
	withNote := dup
	withNote.Description = "bundesweit"
	require.NoError(t, repo.ReplaceAll(ctx, []domain.Holiday{dup, withNote}))

	by, err := repo.ListByState(ctx, domain.RegionBY)
	require.NoError(t, err)
	require.Len(t, by, 1)
	assert.Equal(t, "bundesweit", by[0].Description)
}

func TestHolidayRepo_ListBetween(t *testing.T) {
	repo := NewSQLiteHolidayRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.ReplaceAll(ctx, holidayFixtures()))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	got, err := repo.ListBetween(ctx, domain.RegionBY, from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Neujahrstag", got[0].Name)
}
