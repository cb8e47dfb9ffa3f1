package cron_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fotoflo/cloudhunter/app/cron"
	"github.com/fotoflo/cloudhunter/app/models"
	"github.com/stretchr/testify/require"
)

var errDeleteFailed = errors.New("delete failed")

type fakeSessionStore struct {
	sessions []models.Session
	failOn   map[string]bool
	findErr  error

	gotLimit int64

	inFlight    int64
	maxInFlight int64

	mu      sync.Mutex
	deleted []string
}

func (f *fakeSessionStore) FindExpired(ctx context.Context, now time.Time, limit int64) ([]models.Session, error) {
	f.gotLimit = limit
	if f.findErr != nil {
		return nil, f.findErr
	}
	if int64(len(f.sessions)) > limit {
		return f.sessions[:limit], nil
	}
	return f.sessions, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, sessionToken string) error {
	current := atomic.AddInt64(&f.inFlight, 1)
	for {
		observed := atomic.LoadInt64(&f.maxInFlight)
		if current <= observed || atomic.CompareAndSwapInt64(&f.maxInFlight, observed, current) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt64(&f.inFlight, -1)

	f.mu.Lock()
	f.deleted = append(f.deleted, sessionToken)
	f.mu.Unlock()

	if f.failOn[sessionToken] {
		return errDeleteFailed
	}
	return nil
}

func expiredSessions(n int) []models.Session {
	sessions := make([]models.Session, 0, n)
	for i := 0; i < n; i++ {
		sessions = append(sessions, models.Session{
			SessionToken: fmt.Sprintf("sess-%d", i),
			UserID:       "user-1",
			Expires:      time.Now().Add(-time.Hour),
		})
	}
	return sessions
}

func TestSweepBoundsDeleteConcurrency(t *testing.T) {
	store := &fakeSessionStore{sessions: expiredSessions(100)}
	reaper := cron.NewReaper(store)

	err := reaper.Sweep(context.Background(), 100, 30)
	require.NoError(t, err)
	require.Len(t, store.deleted, 100)
	require.LessOrEqual(t, store.maxInFlight, int64(30))
	require.Greater(t, store.maxInFlight, int64(1))
}

func TestSweepFetchesSinglePage(t *testing.T) {
	store := &fakeSessionStore{sessions: expiredSessions(250)}
	reaper := cron.NewReaper(store)

	err := reaper.Sweep(context.Background(), 100, 30)
	require.NoError(t, err)
	require.EqualValues(t, 100, store.gotLimit)
	require.Len(t, store.deleted, 100)
}

func TestSweepIsBestEffort(t *testing.T) {
	store := &fakeSessionStore{
		sessions: expiredSessions(10),
		failOn:   map[string]bool{"sess-4": true},
	}
	reaper := cron.NewReaper(store)

	err := reaper.Sweep(context.Background(), 10, 3)
	require.Error(t, err)
	require.ErrorIs(t, err, errDeleteFailed)
	// the failed record did not stop the rest of the batch
	require.Len(t, store.deleted, 10)
}

func TestSweepAppliesDefaults(t *testing.T) {
	store := &fakeSessionStore{sessions: expiredSessions(5)}
	reaper := cron.NewReaper(store)

	err := reaper.Sweep(context.Background(), 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, cron.DefaultSweepLimit, store.gotLimit)
	require.Len(t, store.deleted, 5)
}

func TestSweepPropagatesQueryError(t *testing.T) {
	store := &fakeSessionStore{findErr: errors.New("query failed")}
	reaper := cron.NewReaper(store)

	err := reaper.Sweep(context.Background(), 100, 30)
	require.Error(t, err)
	require.Empty(t, store.deleted)
}
