// Package scheduler runs the site's housekeeping jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ahbiggie/Bigeen-web/pkg/logger"
)

// TaskFunc is one run of a scheduled job.
type TaskFunc func(ctx context.Context) error

// task is a registered job and the result of its latest run.
type task struct {
	id       cron.EntryID
	schedule string
	fn       TaskFunc

	mu      sync.Mutex
	runs    int
	lastErr error
}

func (t *task) record(err error) {
	t.mu.Lock()
	t.runs++
	t.lastErr = err
	t.mu.Unlock()
}

// Scheduler runs named tasks. A task still running when its next tick fires
// is skipped, and a panicking task is logged instead of crashing the process.
type Scheduler struct {
	cron    *cron.Cron
	log     *slog.Logger
	timeout time.Duration

	mu      sync.RWMutex
	tasks   map[string]*task
	running bool
}

func NewScheduler(log *slog.Logger) *Scheduler {
	log = log.With(logger.Scope("scheduler"))
	cl := cronLogger{log: log}
	return &Scheduler{
		cron:    cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		log:     log,
		timeout: time.Minute,
		tasks:   make(map[string]*task),
	}
}

func (s *Scheduler) Start(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		s.cron.Start()
		s.running = true
		s.log.Info("scheduler started", slog.Int("tasks", len(s.tasks)))
	}
	return nil
}

// Stop waits for in-flight tasks until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.running = false

	select {
	case <-s.cron.Stop().Done():
		s.log.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out, abandoning running tasks")
		return nil
	}
}

// AddTask registers fn under name, replacing any task with the same name.
// schedule is a five-field cron spec or a descriptor such as "@every 1m".
func (s *Scheduler) AddTask(name, schedule string, fn TaskFunc) error {
	t := &task{schedule: schedule, fn: fn}
	id, err := s.cron.AddFunc(schedule, func() { s.run(name, t) })
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	t.id = id

	s.mu.Lock()
	if old, ok := s.tasks[name]; ok {
		s.cron.Remove(old.id)
	}
	s.tasks[name] = t
	s.mu.Unlock()

	s.log.Info("task scheduled", slog.String("name", name), slog.String("schedule", schedule))
	return nil
}

func (s *Scheduler) run(name string, t *task) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	err := t.fn(ctx)
	t.record(err)

	attrs := []any{slog.String("name", name), slog.Duration("duration", time.Since(start))}
	if err != nil {
		s.log.Error("task failed", append(attrs, logger.Error(err))...)
		return
	}
	s.log.Debug("task finished", attrs...)
}

// TaskInfo describes a registered task.
type TaskInfo struct {
	Name      string    `json:"name"`
	Schedule  string    `json:"schedule"`
	NextRun   time.Time `json:"next_run"`
	PrevRun   time.Time `json:"prev_run"`
	Runs      int       `json:"runs"`
	LastError string    `json:"last_error,omitempty"`
}

// Tasks lists registered tasks sorted by name.
func (s *Scheduler) Tasks() []TaskInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]TaskInfo, 0, len(s.tasks))
	for name, t := range s.tasks {
		entry := s.cron.Entry(t.id)
		info := TaskInfo{Name: name, Schedule: t.schedule, NextRun: entry.Next, PrevRun: entry.Prev}

		t.mu.Lock()
		info.Runs = t.runs
		if t.lastErr != nil {
			info.LastError = t.lastErr.Error()
		}
		t.mu.Unlock()

		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// cronLogger routes robfig/cron's own messages to slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, logger.Error(err))...)
}
