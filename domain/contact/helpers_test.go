package contact

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubSink records deliveries and answers with a fixed outcome.
type stubSink struct {
	outcome  Outcome
	notReady error
	// release, when set, blocks Deliver until it is closed
	release chan struct{}
	started chan struct{}

	calls atomic.Int32
	mu    sync.Mutex
	last  Payload
}

func (s *stubSink) Name() string { return "stub" }

func (s *stubSink) Ready() error { return s.notReady }

func (s *stubSink) Deliver(ctx context.Context, p Payload) Outcome {
	s.calls.Add(1)
	s.mu.Lock()
	s.last = p
	s.mu.Unlock()
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
	return s.outcome
}

func (s *stubSink) lastPayload() Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func validFields() Fields {
	return Fields{
		FullName:    "Jane Doe",
		WorkEmail:   "jane@acme.com",
		CompanyName: "Acme",
		Topic:       "Technical Audit",
		Message:     "We need help with a large migration project.",
	}
}
