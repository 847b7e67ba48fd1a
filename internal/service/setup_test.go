package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/timbang/internal/db"
	"github.com/alexanderramin/timbang/internal/repository"
	"github.com/alexanderramin/timbang/internal/testutil"
)

// wednesday is the fixed "now" of most service tests.
var wednesday = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

type testEnv struct {
	db       *sql.DB
	sessions *repository.SQLiteSessionRepo
	settings *repository.SQLiteSettingsRepo
	holidays *repository.SQLiteHolidayRepo
	entries  *repository.SQLiteEntryRepo
	uow      db.UnitOfWork
	clock    Clock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:       database,
		sessions: repository.NewSQLiteSessionRepo(database),
		settings: repository.NewSQLiteSettingsRepo(database),
		holidays: repository.NewSQLiteHolidayRepo(database),
		entries:  repository.NewSQLiteEntryRepo(database),
		uow:      testutil.NewTestUoW(database),
		clock:    testutil.FixedClock(wednesday),
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func ptrTime(t time.Time) *time.Time { return &t }

func ptrString(s string) *string { return &s }
