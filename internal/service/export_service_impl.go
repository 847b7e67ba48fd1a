package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/stats"
)

var exportHeader = []string{"Date", "Start", "End", "Hours", "Notes"}

type exportService struct {
	sessions SessionService
}

func NewExportService(sessions SessionService) ExportService {
	return &exportService{sessions: sessions}
}

// WriteCSV renders one row per session, oldest first, followed by a total
// row. Open sessions have an empty end and contribute no hours.
func (s *exportService) WriteCSV(ctx context.Context, owner string, from, to *time.Time, loc *time.Location, w io.Writer) (int, error) {
	loc = locationOrLocal(loc)

	sessions, err := s.sessions.List(ctx, owner, from, to)
	if err != nil {
		return 0, err
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("writing csv header: %w", err)
	}

	var total time.Duration
	for _, sess := range sessions {
		total += sess.Duration()
		if err := cw.Write(exportRow(sess, loc)); err != nil {
			return 0, fmt.Errorf("writing csv row: %w", err)
		}
	}
	if err := cw.Write([]string{"Total", "", "", formatHours(total.Hours()), ""}); err != nil {
		return 0, fmt.Errorf("writing csv total: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing csv: %w", err)
	}
	return len(sessions), nil
}

func exportRow(s *domain.WorkSession, loc *time.Location) []string {
	start := s.StartTime.In(loc)
	end := ""
	if s.EndTime != nil {
		end = s.EndTime.In(loc).Format("15:04")
	}
	hours := ""
	if s.IsClosed() {
		hours = formatHours(s.Hours())
	}
	return []string{start.Format("2006-01-02"), start.Format("15:04"), end, hours, s.Notes}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(stats.RoundTenth(h), 'f', 1, 64)
}
