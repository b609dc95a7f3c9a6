package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	calls atomic.Int32
	err   error
}

func (f *countingFetcher) FetchAll(ctx context.Context) error {
	f.calls.Add(1)
	return f.err
}

type staticSession bool

func (s staticSession) SignedIn() bool { return bool(s) }

func TestRefreshNow(t *testing.T) {
	tests := []struct {
		name     string
		signedIn bool
		err      error
		want     int32
	}{
		{"已登录时刷新", true, nil, 1},
		{"未登录跳过", false, nil, 0},
		{"失败不重试", true, errors.New("network unreachable"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &countingFetcher{err: tt.err}
			r := NewRefresher(f, staticSession(tt.signedIn), "*/5 * * * *", time.Second)
			r.RefreshNow()
			assert.Equal(t, tt.want, f.calls.Load())
		})
	}
}

func TestStart_InvalidSpec(t *testing.T) {
	r := NewRefresher(&countingFetcher{}, staticSession(true), "not a cron", time.Second)
	require.Error(t, r.Start())
}

func TestStartStop(t *testing.T) {
	f := &countingFetcher{}
	r := NewRefresher(f, staticSession(true), "@every 1s", time.Second)
	require.NoError(t, r.Start())

	assert.Eventually(t, func() bool { return f.calls.Load() > 0 }, 3*time.Second, 20*time.Millisecond)
	r.Stop()

	stopped := f.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, f.calls.Load())
}
