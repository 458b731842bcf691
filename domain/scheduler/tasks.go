package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/session"
)

// SessionSweepTask expires idle visitor sessions.
func SessionSweepTask(m *session.Manager, log *slog.Logger) TaskFunc {
	return func(context.Context) error {
		if n := m.Sweep(); n > 0 {
			log.Info("swept idle sessions", slog.Int("removed", n), slog.Int("remaining", m.Len()))
		}
		return nil
	}
}

// LimiterPruneTask forgets rate-limit buckets of clients idle for maxIdle.
func LimiterPruneTask(l *contact.ClientLimiter, maxIdle time.Duration) TaskFunc {
	return func(context.Context) error {
		l.Prune(maxIdle)
		return nil
	}
}
