package cron

import (
	"context"
	"time"

	"github.com/fotoflo/cloudhunter/app/models"
	"github.com/fotoflo/cloudhunter/pkg/async"
)

// Sweep defaults, overridable per call.
const (
	DefaultSweepLimit    = 100
	DefaultMaxConcurrent = 30
)

// SessionStore is the slice of the session collection the reaper needs.
type SessionStore interface {
	FindExpired(ctx context.Context, now time.Time, limit int64) ([]models.Session, error)
	Delete(ctx context.Context, sessionToken string) error
}

// Reaper removes session records that are past their expiry.
type Reaper struct {
	sessions SessionStore
}

func NewReaper(sessions SessionStore) *Reaper {
	return &Reaper{sessions: sessions}
}

// Sweep fetches one page of up to limit expired sessions and deletes
// them with at most maxConcurrent deletes in flight. The store enforces
// a request-rate ceiling, so the fan-out must stay bounded. Deletes are
// best effort: one failure does not stop the others, every error ends
// up joined in the returned error, and Sweep returns only after every
// scheduled delete has settled.
func (r *Reaper) Sweep(ctx context.Context, limit, maxConcurrent int) error {
	if limit <= 0 {
		limit = DefaultSweepLimit
	}
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}

	expired, err := r.sessions.FindExpired(ctx, time.Now(), int64(limit))
	if err != nil {
		return err
	}

	tasks := make([]async.Task, 0, len(expired))
	for _, session := range expired {
		session := session
		tasks = append(tasks, func(ctx context.Context) error {
			return r.sessions.Delete(ctx, session.SessionToken)
		})
	}

	return async.Run(ctx, maxConcurrent, tasks)
}
