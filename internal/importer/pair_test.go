package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pairBase = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func entry(id int64, offsetMin int, typ domain.EntryType, notes string) domain.WorkEntry {
	return domain.WorkEntry{
		ID:        id,
		Owner:     "ana",
		Timestamp: pairBase.Add(time.Duration(offsetMin) * time.Minute),
		Type:      typ,
		Notes:     notes,
	}
}

func TestPairEntries_PairsInIDOrder(t *testing.T) {
	entries := []domain.WorkEntry{
		entry(4, 600, domain.ClockOut, ""),
		entry(1, 0, domain.ClockIn, "standup"),
		entry(3, 300, domain.ClockIn, ""),
		entry(2, 240, domain.ClockOut, "done"),
	}

	res := PairEntries(entries)

	require.Len(t, res.Sessions, 2)
	assert.Equal(t, 0, res.OrphanedClockOuts)

	first := res.Sessions[0]
	assert.Equal(t, "ana", first.Owner)
	assert.Equal(t, pairBase, first.StartTime)
	require.NotNil(t, first.EndTime)
	assert.Equal(t, pairBase.Add(4*time.Hour), *first.EndTime)
	assert.Equal(t, "standup", first.Notes, "clock-in note wins")

	second := res.Sessions[1]
	assert.Equal(t, 5.0, second.Hours())
	assert.Equal(t, int64(4), entries[0].ID, "input is not reordered")
}

func TestPairEntries_FallsBackToClockOutNote(t *testing.T) {
	res := PairEntries([]domain.WorkEntry{
		entry(1, 0, domain.ClockIn, "  "),
		entry(2, 60, domain.ClockOut, "wrap-up"),
	})

	require.Len(t, res.Sessions, 1)
	assert.Equal(t, "wrap-up", res.Sessions[0].Notes)
}

func TestPairEntries_OrphanedClockOut(t *testing.T) {
	res := PairEntries([]domain.WorkEntry{
		entry(1, 0, domain.ClockOut, ""),
		entry(2, 10, domain.ClockIn, ""),
		entry(3, 70, domain.ClockOut, ""),
		entry(4, 80, domain.ClockOut, ""),
	})

	assert.Equal(t, 2, res.OrphanedClockOuts)
	require.Len(t, res.Sessions, 1)
	assert.True(t, res.Sessions[0].IsClosed())
}

func TestPairEntries_DoubleClockInLeavesFirstOpen(t *testing.T) {
	res := PairEntries([]domain.WorkEntry{
		entry(1, 0, domain.ClockIn, "first"),
		entry(2, 30, domain.ClockIn, "second"),
		entry(3, 90, domain.ClockOut, ""),
	})

	require.Len(t, res.Sessions, 2)
	assert.True(t, res.Sessions[0].IsOpen())
	assert.Equal(t, "first", res.Sessions[0].Notes)
	assert.True(t, res.Sessions[1].IsClosed())
	assert.Equal(t, 1.0, res.Sessions[1].Hours())
}

func TestPairEntries_TrailingClockInStaysOpen(t *testing.T) {
	res := PairEntries([]domain.WorkEntry{entry(1, 0, domain.ClockIn, "")})

	require.Len(t, res.Sessions, 1)
	assert.True(t, res.Sessions[0].IsOpen())
}

func TestPairEntries_Empty(t *testing.T) {
	res := PairEntries(nil)

	assert.Empty(t, res.Sessions)
	assert.Equal(t, 0, res.OrphanedClockOuts)
}

func TestPairEntries_ClockOutBeforeStartIsOrphaned(t *testing.T) {
	res := PairEntries([]domain.WorkEntry{
		entry(1, 0, domain.ClockIn, ""),
		entry(2, 480, domain.ClockOut, ""),
		entry(3, 1440, domain.ClockIn, "tuesday"),
		entry(4, 1380, domain.ClockOut, ""),
		entry(5, 1920, domain.ClockOut, "late"),
	})

	assert.Equal(t, 1, res.OrphanedClockOuts)
	require.Len(t, res.Sessions, 2)
	second := res.Sessions[1]
	require.NotNil(t, second.EndTime)
	assert.Equal(t, pairBase.Add(1920*time.Minute), *second.EndTime)
	assert.Equal(t, 8.0, second.Hours())
	assert.Equal(t, "tuesday", second.Notes)
	for _, s := range res.Sessions {
		assert.False(t, s.EndTime.Before(s.StartTime))
	}
}

func TestPairEntries_EarlyClockOutKeepsSessionOpen(t *testing.T) {
	res := PairEntries([]domain.WorkEntry{
		entry(1, 60, domain.ClockIn, ""),
		entry(2, 0, domain.ClockOut, ""),
	})

	assert.Equal(t, 1, res.OrphanedClockOuts)
	require.Len(t, res.Sessions, 1)
	assert.True(t, res.Sessions[0].IsOpen())
}
