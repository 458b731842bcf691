package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahbiggie/Bigeen-web/domain/content"
)

// ErrSinkNotConfigured means the delivery destination is missing or invalid.
var ErrSinkNotConfigured = errors.New("contact sink is not configured")

// submittedAtLayout matches JavaScript's Date.toISOString.
const submittedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Payload is the JSON body delivered to the sink.
type Payload struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Company     string       `json:"company"`
	ProjectType string       `json:"projectType"`
	Message     string       `json:"message"`
	Mode        content.Mode `json:"mode"`
	SubmittedAt string       `json:"submittedAt"`
}

// NewPayload builds the delivery body from a field snapshot.
func NewPayload(f Fields, mode content.Mode, at time.Time) Payload {
	return Payload{
		Name:        f.FullName,
		Email:       f.WorkEmail,
		Company:     f.CompanyName,
		ProjectType: f.Topic,
		Message:     f.Message,
		Mode:        mode,
		SubmittedAt: at.UTC().Format(submittedAtLayout),
	}
}

// OutcomeKind classifies a delivery attempt.
type OutcomeKind int

const (
	OutcomeDelivered OutcomeKind = iota
	OutcomeRejected
	OutcomeTransportError
	OutcomeTimeout
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeTimeout:
		return "timeout"
	}
	return fmt.Sprintf("outcome(%d)", int(k))
}

// Outcome is the result of one delivery attempt.
type Outcome struct {
	Kind OutcomeKind
	// StatusCode is the sink's HTTP status, when it answered.
	StatusCode int
	// Err is the transport fault for OutcomeTransportError and OutcomeTimeout.
	Err error
}

func Delivered(status int) Outcome { return Outcome{Kind: OutcomeDelivered, StatusCode: status} }
func Rejected(status int) Outcome  { return Outcome{Kind: OutcomeRejected, StatusCode: status} }

// TransportFailure classifies err as a timeout or a generic transport error.
func TransportFailure(err error) Outcome {
	if isTimeout(err) {
		return Outcome{Kind: OutcomeTimeout, Err: err}
	}
	return Outcome{Kind: OutcomeTransportError, Err: err}
}

// Sink delivers a submission to its destination.
type Sink interface {
	// Name identifies the sink in logs and metrics.
	Name() string
	// Ready returns an error wrapping ErrSinkNotConfigured when delivery cannot
	// be attempted. It never touches the network.
	Ready() error
	// Deliver makes exactly one delivery attempt.
	Deliver(ctx context.Context, p Payload) Outcome
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
