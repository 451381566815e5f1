// Package transition decides which status changes an issue may make.
//
// Every change is allowed except moving an Open issue straight to Done.
// Self-transitions are allowed no-ops and issues may leave Done freely.
package transition

import (
	"errors"
	"fmt"

	"github.com/Kavirubc/gh-tracker/pkg/models"
)

// ErrSkipToDone is matched by the rejection for Open -> Done
var ErrSkipToDone = errors.New("cannot skip directly to Done; must pass through InProgress")

// ErrInvalidStatus is returned for values outside the lifecycle
var ErrInvalidStatus = errors.New("invalid status")

// RejectedError is the business-rule outcome of a disallowed transition.
// Reason is meant to be shown to users verbatim.
type RejectedError struct {
	From   models.Status
	To     models.Status
	Reason string
}

func (e *RejectedError) Error() string {
	return e.Reason
}

// Is lets errors.Is(err, ErrSkipToDone) identify the rejection
func (e *RejectedError) Is(target error) bool {
	return target == ErrSkipToDone && e.Reason == ErrSkipToDone.Error()
}

// CanTransition reports whether an issue in current may move to requested
func CanTransition(current, requested models.Status) bool {
	return !(current == models.StatusOpen && requested == models.StatusDone)
}

// Check returns nil when the transition is allowed, a *RejectedError when
// the policy forbids it, or an error wrapping ErrInvalidStatus when either
// status is not a lifecycle state.
func Check(current, requested models.Status) error {
	if !current.IsValid() {
		return fmt.Errorf("%w: current status %q", ErrInvalidStatus, current)
	}
	if !requested.IsValid() {
		return fmt.Errorf("%w: requested status %q", ErrInvalidStatus, requested)
	}

	if !CanTransition(current, requested) {
		return &RejectedError{
			From:   current,
			To:     requested,
			Reason: ErrSkipToDone.Error(),
		}
	}
	return nil
}

// IsRejection reports whether err is a policy rejection rather than a fault
func IsRejection(err error) bool {
	var rejected *RejectedError
	return errors.As(err, &rejected)
}

// IsNoop reports whether the transition leaves the status unchanged
func IsNoop(current, requested models.Status) bool {
	return current == requested
}
