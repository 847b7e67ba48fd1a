package stats

import (
	"time"

	"github.com/alexanderramin/timbang/internal/domain"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func closed(id int64, start, end string) *domain.WorkSession {
	e := at(end)
	return &domain.WorkSession{ID: id, StartTime: at(start), EndTime: &e}
}

func open(id int64, start string) *domain.WorkSession {
	return &domain.WorkSession{ID: id, StartTime: at(start)}
}
