package contact

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ahbiggie/Bigeen-web/domain/content"
	"github.com/ahbiggie/Bigeen-web/pkg/logger"
	"github.com/ahbiggie/Bigeen-web/pkg/tracing"
)

// ErrSubmitInProgress is returned when a submission is already in flight.
var ErrSubmitInProgress = errors.New("a submission is already in progress")

// ControllerConfig tunes one controller.
type ControllerConfig struct {
	// Timeout bounds the sink call.
	Timeout time.Duration
	// SuccessHold is how long the success notice stays before returning to idle.
	// Zero keeps it until Dismiss.
	SuccessHold time.Duration
	// FailureHold is the same for failure notices.
	FailureHold time.Duration
}

// DefaultControllerConfig mirrors the site defaults.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		Timeout:     10 * time.Second,
		SuccessHold: 5 * time.Second,
		FailureHold: 4 * time.Second,
	}
}

// View is what the rendering layer needs to draw the form.
type View struct {
	Fields       Fields           `json:"fields"`
	Mode         content.Mode     `json:"mode"`
	TopicOptions []string         `json:"topicOptions"`
	Errors       ValidationErrors `json:"errors"`
	Status       Status           `json:"status"`
	Notice       *Notice          `json:"notice,omitempty"`
}

// Controller drives validation and delivery for one visitor's form.
// Status changes only through the controller.
type Controller struct {
	store   *Store
	sink    Sink
	cfg     ControllerConfig
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time

	mu      sync.Mutex
	status  Status
	errors  ValidationErrors
	notice  *Notice
	run     uint64
	dismiss *time.Timer
}

// NewController wires a controller around store and sink. metrics may be nil.
func NewController(store *Store, sink Sink, cfg ControllerConfig, log *slog.Logger, metrics *Metrics) *Controller {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultControllerConfig().Timeout
	}
	return &Controller{
		store:   store,
		sink:    sink,
		cfg:     cfg,
		log:     log.With(logger.Scope("contact")),
		metrics: metrics,
		now:     time.Now,
		status:  StatusIdle,
		errors:  ValidationErrors{},
	}
}

// Store returns the field store the controller owns.
func (c *Controller) Store() *Store {
	return c.store
}

// Status returns the current submission status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// SetField updates one field and clears its validation error.
func (c *Controller) SetField(field Field, value string) error {
	if err := c.store.SetField(field, value); err != nil {
		return err
	}
	c.mu.Lock()
	delete(c.errors, field)
	c.mu.Unlock()
	return nil
}

// SetMode switches the display mode of the form.
func (c *Controller) SetMode(mode content.Mode) {
	c.store.SetMode(mode)
}

// View returns a snapshot for rendering.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	v := View{
		Fields:       c.store.Snapshot(),
		Mode:         c.store.Mode(),
		TopicOptions: c.store.TopicOptions(),
		Errors:       c.errors.clone(),
		Status:       c.status,
	}
	if c.notice != nil {
		n := *c.notice
		v.Notice = &n
	}
	return v
}

// Dismiss acknowledges a success or failure notice and returns to idle.
// It does nothing in any other state.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dismissLocked()
}

func (c *Controller) dismissLocked() {
	if c.dismiss != nil {
		c.dismiss.Stop()
		c.dismiss = nil
	}
	if c.status.Resolved() {
		c.transitionLocked(StatusIdle)
		c.notice = nil
		return
	}
	// the validation notice is not tied to a status change
	if c.status == StatusIdle && c.notice != nil && c.notice.Kind == NoticeFixFields {
		c.notice = nil
	}
}

// Submit validates the form and, when valid, delivers it to the sink once.
// A call made while a previous attempt is in flight returns ErrSubmitInProgress
// and changes nothing. A pending success or failure notice is dismissed first.
func (c *Controller) Submit(ctx context.Context) (View, error) {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		v := c.viewLocked()
		c.mu.Unlock()
		c.metrics.observeBusy()
		return v, ErrSubmitInProgress
	}
	c.dismissLocked()

	fields := c.store.Snapshot()
	mode := c.store.Mode()

	c.errors = Validate(fields)
	if !c.errors.Valid() {
		c.notice = noticeFor(NoticeFixFields)
		v := c.viewLocked()
		c.mu.Unlock()
		c.metrics.observeInvalid(c.errors)
		c.log.Debug("submission blocked by validation", slog.Int("invalid_fields", len(c.errors)))
		return v, nil
	}

	c.run++
	run := c.run
	c.transitionLocked(StatusSubmitting)
	c.notice = noticeFor(NoticeSending)
	c.mu.Unlock()

	// An in-flight submission cannot be cancelled by the visitor leaving.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout)
	defer cancel()

	ctx, span := tracing.Start(ctx, "contact.submit",
		attribute.String("bigeen.contact.sink", c.sink.Name()),
		attribute.String("bigeen.mode", string(mode)),
	)
	defer span.End()

	started := c.now()
	if err := c.sink.Ready(); err != nil {
		c.log.Error("contact sink is not configured, submission dropped",
			slog.String("sink", c.sink.Name()),
			logger.Error(err),
		)
		span.SetStatus(codes.Error, "sink not configured")
		c.metrics.observeOutcome(c.sink.Name(), "configuration_error", 0)
		return c.resolve(run, StatusFailed, NoticeConfiguration), nil
	}

	outcome := c.sink.Deliver(ctx, NewPayload(fields, mode, started))
	elapsed := c.now().Sub(started)
	c.metrics.observeOutcome(c.sink.Name(), outcome.Kind.String(), elapsed)
	span.SetAttributes(
		attribute.String("bigeen.contact.outcome", outcome.Kind.String()),
		attribute.Int("http.response.status_code", outcome.StatusCode),
	)

	attrs := []any{
		slog.String("sink", c.sink.Name()),
		slog.String("outcome", outcome.Kind.String()),
		slog.Int("status", outcome.StatusCode),
		slog.Duration("elapsed", elapsed),
	}

	switch outcome.Kind {
	case OutcomeDelivered:
		c.log.Info("contact submission delivered", attrs...)
		return c.resolve(run, StatusSucceeded, NoticeSent), nil
	case OutcomeRejected:
		span.SetStatus(codes.Error, "rejected by sink")
		c.log.Warn("contact submission rejected", attrs...)
		return c.resolve(run, StatusFailed, NoticeRejected), nil
	case OutcomeTimeout:
		span.RecordError(outcome.Err)
		span.SetStatus(codes.Error, "timeout")
		c.log.Warn("contact submission timed out", append(attrs, logger.Error(outcome.Err))...)
		return c.resolve(run, StatusFailed, NoticeTimeout), nil
	default:
		span.RecordError(outcome.Err)
		span.SetStatus(codes.Error, "transport error")
		c.log.Warn("contact submission transport error", append(attrs, logger.Error(outcome.Err))...)
		return c.resolve(run, StatusFailed, NoticeNetwork), nil
	}
}

// resolve finishes run with a terminal status and schedules the notice to clear.
func (c *Controller) resolve(run uint64, status Status, kind NoticeKind) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.transitionLocked(status)
	c.notice = noticeFor(kind)
	if status == StatusSucceeded {
		c.store.Reset()
		c.errors = ValidationErrors{}
	}

	hold := c.cfg.FailureHold
	if status == StatusSucceeded {
		hold = c.cfg.SuccessHold
	}
	if hold > 0 {
		c.dismiss = time.AfterFunc(hold, func() { c.expire(run) })
	}

	return c.viewLocked()
}

// expire returns to idle when run's notice is still showing.
func (c *Controller) expire(run uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.run != run || !c.status.Resolved() {
		return
	}
	c.dismiss = nil
	c.transitionLocked(StatusIdle)
	c.notice = nil
}

func (c *Controller) transitionLocked(to Status) {
	if !CanTransition(c.status, to) {
		// unreachable unless the state machine above is broken
		c.log.Error("refusing submission transition", logger.Error(transitionError{c.status, to}))
		return
	}
	c.status = to
}
