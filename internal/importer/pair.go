package importer

import (
	"sort"

	"github.com/alexanderramin/timbang/internal/domain"
)

// PairResult is the outcome of folding legacy clock entries into sessions.
type PairResult struct {
	Sessions          []*domain.WorkSession
	OrphanedClockOuts int
}

// PairEntries folds clock-in/clock-out entries into sessions. Entries are
// processed in ID order: a CLOCK_IN opens a session and the next CLOCK_OUT
// closes the most recently opened one. A CLOCK_OUT with nothing open, or one
// stamped before the open session started, is counted as orphaned and leaves
// the session open for a later CLOCK_OUT. A CLOCK_IN while a session is open leaves the earlier
// session open. Session notes prefer the clock-in note and fall back to the
// clock-out note. The input slice is not modified.
func PairEntries(entries []domain.WorkEntry) PairResult {
	sorted := make([]domain.WorkEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var (
		res     PairResult
		current *domain.WorkSession
	)
	for _, e := range sorted {
		switch e.Type {
		case domain.ClockIn:
			current = &domain.WorkSession{
				Owner:     e.Owner,
				StartTime: e.Timestamp,
				Notes:     e.Notes,
				CreatedAt: e.Timestamp,
				UpdatedAt: e.Timestamp,
			}
			res.Sessions = append(res.Sessions, current)
		case domain.ClockOut:
			if current == nil || e.Timestamp.Before(current.StartTime) {
				res.OrphanedClockOuts++
				continue
			}
			end := e.Timestamp
			current.EndTime = &end
			current.UpdatedAt = end
			current.Notes = domain.CoalesceStr(current.Notes, e.Notes)
			current = nil
		}
	}
	return res
}
