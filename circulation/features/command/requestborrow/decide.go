package requestborrow

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

var (
	ErrLoanIDInUse         = errors.New("loan ID is already used by another borrow request")
	ErrMemberNotRegistered = errors.New("member is not registered")
	ErrMemberDeactivated   = errors.New("member is deactivated")
	ErrCopyNotFound        = errors.New("copy does not exist")
	ErrCopyNotAvailable    = errors.New("copy is not available")
	ErrBookingQuotaReached = errors.New("booking quota reached")
	ErrMemberOwesPenalty   = errors.New("member has an unpaid penalty")
)

// Decide opens a loan for an available copy. The due date follows the loan policy of the
// member's category and is fixed from here on.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	state := core.Replay(history)
	memberID := command.MemberID.String()

	if loan, exists := state.Loan(command.LoanID.String()); exists {
		if loan.MemberID == memberID && loan.CopyID == command.CopyID.String() {
			return core.IdempotentDecision()
		}

		return reject(command, ErrLoanIDInUse)
	}

	member, ok := state.Member(memberID)
	if !ok {
		return reject(command, ErrMemberNotRegistered)
	}

	if member.Deactivated {
		return reject(command, ErrMemberDeactivated)
	}

	copyState, ok := state.Copy(command.CopyID.String())
	if !ok || copyState.Removed {
		return reject(command, ErrCopyNotFound)
	}

	if copyState.Status != rules.CopyAvailable {
		return reject(command, ErrCopyNotAvailable)
	}

	if state.OpenLoanCount(memberID) >= int(member.BookingQuota) {
		return reject(command, ErrBookingQuotaReached)
	}

	if state.HasUnpaidPenalty(memberID) {
		return reject(command, ErrMemberOwesPenalty)
	}

	itemID, err := copyState.ItemUUID()
	if err != nil {
		return reject(command, err)
	}

	return core.SuccessDecision(
		core.BuildBorrowRequested(
			command.LoanID,
			command.CopyID,
			itemID,
			command.MemberID,
			member.Category,
			rules.ComputeDueDate(member.Category, command.OccurredAt),
			command.OccurredAt,
		),
	)
}

func reject(command Command, reason error) core.DecisionResult {
	return core.RejectionDecision(
		core.BuildRequestingBorrowFailed(command.LoanID.String(), reason.Error(), command.OccurredAt),
		reason,
	)
}

// BuildEventFilter selects the member with all their loans, the copy with its status history,
// and anything already recorded under the LoanID.
func BuildEventFilter(memberID, copyID, loanID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.MemberRegisteredEventType,
			core.MemberDeactivatedEventType,
			core.CopyRegisteredEventType,
			core.CopyStatusChangedEventType,
			core.CopyRemovedEventType,
			core.BorrowRequestedEventType,
			core.BorrowApprovedEventType,
			core.BorrowDisapprovedEventType,
			core.CopyReturnedEventType,
			core.PenaltyPaidEventType,
		).
		AndAnyPredicateOf(
			eventstore.P(core.MemberIDKey, memberID.String()),
			eventstore.P(core.CopyIDKey, copyID.String()),
			eventstore.P(core.LoanIDKey, loanID.String()),
		).
		Finalize()
}
