package deactivatemember

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/eventstore"
)

var (
	ErrMemberNotRegistered      = errors.New("member is not registered")
	ErrMemberHasOpenLoans       = errors.New("member has open loans")
	ErrMemberHasUnpaidPenalties = errors.New("member has unpaid penalties")
)

// Decide deactivates a registered member that neither holds a copy nor owes a penalty.
// Deactivating twice is idempotent.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	state := core.Replay(history)
	memberID := command.MemberID.String()

	member, ok := state.Member(memberID)
	if !ok {
		return reject(command, ErrMemberNotRegistered)
	}

	if member.Deactivated {
		return core.IdempotentDecision()
	}

	if state.OpenLoanCount(memberID) > 0 {
		return reject(command, ErrMemberHasOpenLoans)
	}

	if state.HasUnpaidPenalty(memberID) {
		return reject(command, ErrMemberHasUnpaidPenalties)
	}

	return core.SuccessDecision(core.BuildMemberDeactivated(command.MemberID, command.Reason, command.OccurredAt))
}

func reject(command Command, reason error) core.DecisionResult {
	return core.RejectionDecision(
		core.BuildDeactivatingMemberFailed(command.MemberID.String(), reason.Error(), command.OccurredAt),
		reason,
	)
}

func BuildEventFilter(memberID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.MemberRegisteredEventType,
			core.MemberDeactivatedEventType,
			core.BorrowRequestedEventType,
			core.BorrowApprovedEventType,
			core.BorrowDisapprovedEventType,
			core.CopyReturnedEventType,
			core.PenaltyPaidEventType,
		).
		AndAnyPredicateOf(eventstore.P(core.MemberIDKey, memberID.String())).
		Finalize()
}
