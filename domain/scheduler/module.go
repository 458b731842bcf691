package scheduler

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/session"
	"github.com/ahbiggie/Bigeen-web/internal/config"
)

var Module = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(
		RegisterTasks,
		RegisterSchedulerLifecycle,
	),
)

type TaskParams struct {
	fx.In
	Scheduler *Scheduler
	Sessions  *session.Manager
	Limiter   *contact.ClientLimiter
	Cfg       *config.Config
	Log       *slog.Logger
}

// RegisterTasks wires the housekeeping jobs.
func RegisterTasks(p TaskParams) error {
	schedule := p.Cfg.Session.SweepSchedule
	if err := p.Scheduler.AddTask("session_sweep", schedule, SessionSweepTask(p.Sessions, p.Log)); err != nil {
		return err
	}
	if err := p.Scheduler.AddTask("rate_limit_prune", schedule, LimiterPruneTask(p.Limiter, 10*time.Minute)); err != nil {
		return err
	}
	return nil
}

func RegisterSchedulerLifecycle(lc fx.Lifecycle, s *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
