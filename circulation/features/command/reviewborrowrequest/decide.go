package reviewborrowrequest

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

var (
	ErrLoanNotFound        = errors.New("borrow request does not exist")
	ErrInvalidDecision     = errors.New("decision must be Approved or Disapproved")
	ErrLoanAlreadyReviewed = errors.New("borrow request was already reviewed with another decision")
)

func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if command.Decision != rules.ApprovalApproved && command.Decision != rules.ApprovalDisapproved {
		return reject(command, ErrInvalidDecision)
	}

	state := core.Replay(history)

	loan, ok := state.Loan(command.LoanID.String())
	if !ok {
		return reject(command, ErrLoanNotFound)
	}

	switch loan.Approval {
	case command.Decision:
		return core.IdempotentDecision()
	case rules.ApprovalApproved, rules.ApprovalDisapproved:
		return reject(command, ErrLoanAlreadyReviewed)
	}

	ref, err := loan.Ref()
	if err != nil {
		return reject(command, err)
	}

	if command.Decision == rules.ApprovalApproved {
		return core.SuccessDecision(
			core.BuildBorrowApproved(ref.LoanID, ref.CopyID, ref.ItemID, ref.MemberID, loan.DueAt, command.OccurredAt),
		)
	}

	return core.SuccessDecision(
		core.BuildBorrowDisapproved(ref.LoanID, ref.CopyID, ref.ItemID, ref.MemberID, command.Reason, command.OccurredAt),
	)
}

func reject(command Command, reason error) core.DecisionResult {
	return core.RejectionDecision(
		core.BuildReviewingBorrowRequestFailed(command.LoanID.String(), reason.Error(), command.OccurredAt),
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
