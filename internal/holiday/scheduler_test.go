package holiday

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	calls int
	n     int
	err   error
}

func (f *fakeRefresher) Refresh(context.Context) (int, error) {
	f.calls++
	return f.n, f.err
}

func TestScheduler_RunOnceLogsResult(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := &fakeRefresher{n: 42}

	NewScheduler(r, "", logger).RunOnce()

	assert.Equal(t, 1, r.calls)
	assert.Contains(t, buf.String(), "holiday refresh complete")
	assert.Contains(t, buf.String(), "holidays=42")
}

func TestScheduler_RunOnceLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := &fakeRefresher{err: errors.New("api down")}

	NewScheduler(r, "", logger).RunOnce()

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "api down")
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(&fakeRefresher{}, "@every 1h", nil)
	require.NoError(t, s.Start())
	assert.Error(t, s.Start(), "second start must fail")
	s.Stop()
	s.Stop()
}

func TestScheduler_DefaultSpec(t *testing.T) {
	s := NewScheduler(&fakeRefresher{}, "", nil)
	assert.Equal(t, DefaultSchedule, s.spec)
	require.NoError(t, s.Start())
	s.Stop()
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := NewScheduler(&fakeRefresher{}, "not a cron", nil)
	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a cron")
}
