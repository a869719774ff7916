package paypenalty

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

var (
	ErrLoanNotReturned = errors.New("loan was not returned")
	ErrNothingOwed     = errors.New("nothing is owed for this return")
	ErrAmountMismatch  = errors.New("amount does not match the penalty")
)

// Decide collects the full penalty of a return. Partial payments are not accepted.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	state := core.Replay(history)

	loan, ok := state.Loan(command.LoanID.String())
	if !ok || !loan.Returned {
		return reject(command, ErrLoanNotReturned)
	}

	switch loan.Settlement {
	case rules.SettlementPaid:
		return core.IdempotentDecision()
	case rules.SettlementReturned:
		return reject(command, ErrNothingOwed)
	}

	if !command.Amount.Equal(loan.Penalty) {
		return reject(command, ErrAmountMismatch)
	}

	ref, err := loan.Ref()
	if err != nil {
		return reject(command, err)
	}

	return core.SuccessDecision(core.BuildPenaltyPaid(ref, command.Amount, command.PaymentRef, command.OccurredAt))
}

func reject(command Command, reason error) core.DecisionResult {
	return core.RejectionDecision(
		core.BuildPayingPenaltyFailed(command.LoanID.String(), reason.Error(), command.OccurredAt),
		reason,
	)
}

func BuildEventFilter(loanID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.CopyReturnedEventType, core.PenaltyPaidEventType).
		AndAnyPredicateOf(eventstore.P(core.LoanIDKey, loanID.String())).
		Finalize()
}
