package contact

import "fmt"

// Status is the submission state of one form.
//
//	idle ──► submitting ──► succeeded ──► idle
//	              │
//	              └───────► failed ─────► idle
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

var validTransitions = map[Status][]Status{
	StatusIdle:       {StatusSubmitting},
	StatusSubmitting: {StatusSucceeded, StatusFailed},
	StatusSucceeded:  {StatusIdle},
	StatusFailed:     {StatusIdle},
}

// CanTransition reports whether from → to is permitted.
func CanTransition(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Resolved reports whether the status carries an outcome notice.
func (s Status) Resolved() bool {
	return s == StatusSucceeded || s == StatusFailed
}

type transitionError struct {
	from, to Status
}

func (e transitionError) Error() string {
	return fmt.Sprintf("invalid submission transition %s -> %s", e.from, e.to)
}
