package core

import (
	"errors"
	"fmt"
)

// ErrCommandRejected is wrapped by every error of an error decision.
var ErrCommandRejected = errors.New("command rejected")

// DecisionResult is what a Decide function returns. Build it with IdempotentDecision,
// SuccessDecision or ErrorDecision only.
type DecisionResult struct {
	Outcome string
	Event   DomainEvent
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision means the command is already fulfilled; nothing is appended.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: idempotentOutcome}
}

// SuccessDecision carries the event to append.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{Outcome: successOutcome, Event: event}
}

// ErrorDecision carries a failure event, which is appended too, and the error for the caller.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{Outcome: errorOutcome, Event: event, Err: err}
}

// RejectionDecision is an ErrorDecision whose error wraps ErrCommandRejected and reason,
// prefixed with the failure event type.
func RejectionDecision(event DomainEvent, reason error) DecisionResult {
	return ErrorDecision(event, fmt.Errorf("%w: %s: %w", ErrCommandRejected, event.IsEventType(), reason))
}

func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == idempotentOutcome
}

func (r DecisionResult) HasEventToAppend() bool {
	return r.Outcome != idempotentOutcome
}

// HasError returns the business error of an error decision, nil otherwise.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
