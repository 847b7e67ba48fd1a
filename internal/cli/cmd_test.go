package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/repository"
	"github.com/alexanderramin/timbang/internal/service"
	"github.com/alexanderramin/timbang/internal/testutil"
)

// now is the fixed clock of every CLI test: Wednesday afternoon.
var now = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

type stubHolidayClient struct{}

func (stubHolidayClient) Fetch(_ context.Context, year int) ([]domain.Holiday, error) {
	if year != 2024 {
		return nil, nil
	}
	return []domain.Holiday{
		testutil.NewTestHoliday(domain.RegionBY, "2024-06-20", "Fronleichnam"),
		testutil.NewTestHoliday(domain.RegionBY, "2024-01-01", "Neujahrstag"),
		testutil.NewTestHoliday(domain.RegionNational, "2024-01-01", "Neujahrstag"),
	}, nil
}

type testEnv struct {
	app      *App
	sessions *repository.SQLiteSessionRepo
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	clock := testutil.FixedClock(now)

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	sessions := service.NewSessionService(sessionRepo, uow, clock)

	app := &App{
		Sessions: sessions,
		Settings: service.NewSettingsService(settingsRepo, uow, clock),
		Stats:    service.NewStatsService(sessionRepo, settingsRepo, clock),
		Holidays: service.NewHolidayService(repository.NewSQLiteHolidayRepo(database), stubHolidayClient{}, uow, clock),
		Export:   service.NewExportService(sessions),
		Import:   service.NewImportService(uow, clock),
		Owner:    testutil.DefaultOwner,
		Location: time.UTC,
		Clock:    clock,
		Version:  "test",
	}
	return &testEnv{app: app, sessions: sessionRepo}
}

func (e *testEnv) seed(t *testing.T, s *domain.WorkSession) *domain.WorkSession {
	t.Helper()
	require.NoError(t, e.sessions.Create(context.Background(), s))
	return s
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestClockFlow(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "clock", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Clocked out")

	out, err = executeCmd(t, env.app, "clock", "in", "--at", "09:00", "--note", "standup")
	require.NoError(t, err)
	assert.Contains(t, out, "Clocked in at 12. Jun 09:00")

	_, err = executeCmd(t, env.app, "clock", "in")
	require.ErrorIs(t, err, service.ErrAlreadyClockedIn)

	out, err = executeCmd(t, env.app, "clock", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Clocked in since 12. Jun 09:00")
	assert.Contains(t, out, "6h 0m")
	assert.Contains(t, out, "standup")

	out, err = executeCmd(t, env.app, "clock", "out", "--at", "12:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Clocked out at 12. Jun 12:30")
	assert.Contains(t, out, "3h 30m")

	_, err = executeCmd(t, env.app, "clock", "out")
	require.ErrorIs(t, err, service.ErrNotClockedIn)
}

func TestClockInRejectsBadTime(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "clock", "in", "--at", "half past nine")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time")

	_, err = executeCmd(t, env.app, "clock", "in", "--at", "2024-06-13T09:00:00Z")
	require.ErrorIs(t, err, service.ErrFutureTimestamp)
}

func TestSessionAddListEdit(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "session", "add", "--start", "2024-06-10 08:00:00", "--end", "2024-06-10T16:00", "--note", "onsite")
	require.NoError(t, err)
	assert.Contains(t, out, "Added #1")
	assert.Contains(t, out, "10. Jun 08:00 - 16:00")
	assert.Contains(t, out, "8h 0m")

	out, err = executeCmd(t, env.app, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "onsite")
	assert.Contains(t, out, "8.0h")
	assert.Contains(t, out, "page 1 of 1 · 1 sessions")

	out, err = executeCmd(t, env.app, "session", "edit", "1", "--end", "2024-06-10T14:00:00Z", "--note", "remote")
	require.NoError(t, err)
	assert.Contains(t, out, "6h 0m")
	assert.Contains(t, out, "remote")

	_, err = executeCmd(t, env.app, "session", "edit", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")

	_, err = executeCmd(t, env.app, "session", "edit", "1", "--end", "2024-06-10T07:00:00Z")
	require.ErrorIs(t, err, service.ErrEndBeforeStart)

	_, err = executeCmd(t, env.app, "session", "edit", "abc", "--note", "x")
	require.Error(t, err)

	_, err = executeCmd(t, env.app, "session", "add", "--start", "09:00")
	require.Error(t, err, "--end is required")
}

func TestSessionListRange(t *testing.T) {
	env := testApp(t)
	env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), 2*time.Hour, testutil.WithNotes("early")))
	env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), 3*time.Hour, testutil.WithNotes("middle")))
	env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC), time.Hour, testutil.WithNotes("late")))

	out, err := executeCmd(t, env.app, "session", "list", "--from", "2024-06-05", "--to", "2024-06-10")
	require.NoError(t, err)
	assert.Contains(t, out, "middle", "a bare --to date includes that day")
	assert.NotContains(t, out, "early")
	assert.NotContains(t, out, "late")

	out, err = executeCmd(t, env.app, "session", "list", "--from", "2025-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions in range")

	_, err = executeCmd(t, env.app, "session", "list", "--page", "0")
	require.ErrorIs(t, err, service.ErrInvalidPage)
}

func TestSessionRemove(t *testing.T) {
	t.Run("non-interactive deletes without asking", func(t *testing.T) {
		env := testApp(t)
		s := env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), time.Hour))

		out, err := executeCmd(t, env.app, "session", "remove", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Removed session #1")

		_, err = env.sessions.GetByID(context.Background(), testutil.DefaultOwner, s.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("interactive asks and honours no", func(t *testing.T) {
		env := testApp(t)
		s := env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), time.Hour))
		var asked string
		env.app.IsInteractive = func() bool { return true }
		env.app.Confirm = func(title string) (bool, error) {
			asked = title
			return false, nil
		}

		out, err := executeCmd(t, env.app, "session", "remove", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Cancelled")
		assert.Contains(t, asked, "Delete session #1")

		_, err = env.sessions.GetByID(context.Background(), testutil.DefaultOwner, s.ID)
		assert.NoError(t, err)
	})

	t.Run("--yes skips the prompt", func(t *testing.T) {
		env := testApp(t)
		env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), time.Hour))
		env.app.IsInteractive = func() bool { return true }
		env.app.Confirm = func(string) (bool, error) {
			t.Fatal("confirm must not be called")
			return false, nil
		}

		_, err := executeCmd(t, env.app, "session", "rm", "1", "--yes")
		require.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		env := testApp(t)
		_, err := executeCmd(t, env.app, "session", "remove", "99")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestOwnerFlagScopesData(t *testing.T) {
	env := testApp(t)
	env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), time.Hour, testutil.WithOwner("bob"), testutil.WithNotes("bobs")))

	out, err := executeCmd(t, env.app, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded")

	out, err = executeCmd(t, env.app, "--owner", "bob", "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "bobs")
}

func TestSummaryAndMonth(t *testing.T) {
	env := testApp(t)
	env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC), 3*time.Hour))
	env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC), 4*time.Hour, testutil.WithNotes("long day")))

	out, err := executeCmd(t, env.app, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "WORK SUMMARY")
	assert.Contains(t, out, "Clocked out")
	assert.Contains(t, out, "7.0h / 160.0h")

	out, err = executeCmd(t, env.app, "month")
	require.NoError(t, err)
	assert.Contains(t, out, "MONTHLY SUMMARY · June 2024")
	assert.Contains(t, out, "long day")

	out, err = executeCmd(t, env.app, "month", "2024-05")
	require.NoError(t, err)
	assert.Contains(t, out, "No completed sessions")

	_, err = executeCmd(t, env.app, "month", "May")
	require.Error(t, err)
}

func TestConfigSetAndShow(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "config", "set", "--weekly", "32", "--work-days", "1,2,3,4", "--state", "by", "--lunch=false")
	require.NoError(t, err)
	assert.Contains(t, out, "32.0h")
	assert.Contains(t, out, "Mon Tue Wed Thu")
	assert.Contains(t, out, "Bayern")

	out, err = executeCmd(t, env.app, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "32.0h")
	assert.Contains(t, out, "160.0h", "untouched fields keep their value")
	assert.Contains(t, out, "timezone UTC")

	_, err = executeCmd(t, env.app, "config", "set")
	require.Error(t, err)

	_, err = executeCmd(t, env.app, "config", "set", "--work-days", "0")
	require.Error(t, err)

	_, err = executeCmd(t, env.app, "config", "set", "--state", "XX")
	require.ErrorIs(t, err, domain.ErrUnknownRegion)

	_, err = executeCmd(t, env.app, "config", "set", "--weekly", "inf")
	require.ErrorIs(t, err, domain.ErrInvalidSettings)

	_, err = executeCmd(t, env.app, "config", "set", "--monthly", "NaN")
	require.ErrorIs(t, err, domain.ErrInvalidSettings)

	out, err = executeCmd(t, env.app, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "32.0h", "rejected values leave the settings untouched")

	_, err = executeCmd(t, env.app, "config", "edit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}

func TestHolidayCommands(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "holiday", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "holiday refresh")

	out, err = executeCmd(t, env.app, "holiday", "refresh")
	require.NoError(t, err)
	assert.Contains(t, out, "Stored 3 holidays")

	out, err = executeCmd(t, env.app, "holiday", "list", "BY")
	require.NoError(t, err)
	assert.Contains(t, out, "BAYERN 2024")
	assert.Contains(t, out, "Fronleichnam")
	assert.Contains(t, out, "Neujahrstag")

	out, err = executeCmd(t, env.app, "holiday", "list", "--year", "2025", "BY")
	require.NoError(t, err)
	assert.NotContains(t, out, "Fronleichnam")

	_, err = executeCmd(t, env.app, "holiday", "list", "nowhere")
	require.ErrorIs(t, err, domain.ErrUnknownRegion)
}

func TestExportToFile(t *testing.T) {
	env := testApp(t)
	env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC), 4*time.Hour, testutil.WithNotes("alpha")))
	env.seed(t, testutil.NewTestSession(time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC), 2*time.Hour, testutil.WithNotes("beta")))
	path := filepath.Join(t.TempDir(), "june.csv")

	out, err := executeCmd(t, env.app, "export", "--from", "2024-06-01", "--to", "2024-06-30", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 sessions")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date,Start,End,Hours,Notes\n"))
	assert.Contains(t, string(data), "alpha")
	assert.NotContains(t, string(data), "beta")
}

func TestExportToStdout(t *testing.T) {
	env := testApp(t)
	env.seed(t, testutil.NewTestSession(time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC), 4*time.Hour))

	out, err := executeCmd(t, env.app, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "Date,Start,End,Hours,Notes")
	assert.Contains(t, out, "2024-06-03")
}

func TestImport(t *testing.T) {
	env := testApp(t)
	dir := t.TempDir()

	sessionsFile := filepath.Join(dir, "sessions.json")
	require.NoError(t, os.WriteFile(sessionsFile, []byte(`{
	  "sessions": [
	    {"startTime": "2024-06-10T09:00:00Z", "endTime": "2024-06-10T12:00:00Z"},
	    {"startTime": "2024-06-12T08:00:00Z"}
	  ],
	  "settings": {"expectedWeeklyHours": 30}
	}`), 0o600))

	out, err := executeCmd(t, env.app, "import", sessionsFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 sessions (1 still open)")
	assert.Contains(t, out, "Work settings replaced")

	legacyFile := filepath.Join(dir, "entries.json")
	require.NoError(t, os.WriteFile(legacyFile, []byte(`[
	  {"id": 1, "timestamp": "2024-06-03T09:00:00", "type": "CLOCK_IN"},
	  {"id": 2, "timestamp": "2024-06-03T17:00:00", "type": "CLOCK_OUT"},
	  {"id": 3, "timestamp": "2024-06-04T18:00:00", "type": "CLOCK_OUT"}
	]`), 0o600))

	out, err = executeCmd(t, env.app, "--owner", "legacy", "import", "--legacy", legacyFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 sessions")
	assert.Contains(t, out, "Archived 3 clock entries")
	assert.Contains(t, out, "Skipped 1 clock-outs")

	_, err = executeCmd(t, env.app, "import", filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestServeRequiresTokens(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API tokens")
}

func TestVersionFlag(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "test")
}
