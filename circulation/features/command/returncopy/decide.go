package returncopy

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

var (
	ErrLoanNotFound    = errors.New("loan does not exist")
	ErrLoanNotApproved = errors.New("loan was not approved")
)

// Decide settles a return: lateness, penalty and settlement status are computed once, here.
func Decide(history core.DomainEvents, command Command, rates rules.PenaltyRates) core.DecisionResult {
	condition, err := rules.ParseReturnCondition(string(command.Condition))
	if err != nil {
		return reject(command, err)
	}

	state := core.Replay(history)

	loan, ok := state.Loan(command.LoanID.String())
	if !ok {
		return reject(command, ErrLoanNotFound)
	}

	if loan.Returned {
		return core.IdempotentDecision()
	}

	if loan.Approval != rules.ApprovalApproved {
		return reject(command, ErrLoanNotApproved)
	}

	ref, err := loan.Ref()
	if err != nil {
		return reject(command, err)
	}

	daysOverdue := rules.DaysOverdue(loan.DueAt, command.OccurredAt)
	penalty := rules.ComputePenalty(daysOverdue, condition, rates)

	return core.SuccessDecision(
		core.BuildCopyReturned(
			ref,
			condition,
			loan.DueAt,
			daysOverdue,
			penalty,
			rules.ClassifyReturnStatus(penalty, condition),
			command.OccurredAt,
		),
	)
}

func reject(command Command, reason error) core.DecisionResult {
	return core.RejectionDecision(
		core.BuildReturningCopyFailed(command.LoanID.String(), reason.Error(), command.OccurredAt),
		reason,
	)
}

func BuildEventFilter(loanID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BorrowRequestedEventType,
			core.BorrowApprovedEventType,
			core.BorrowDisapprovedEventType,
			core.CopyReturnedEventType,
			core.PenaltyPaidEventType,
		).
		AndAnyPredicateOf(eventstore.P(core.LoanIDKey, loanID.String())).
		Finalize()
}
