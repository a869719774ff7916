package dueloans

import (
	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

// Project lists the loans in due date order.
func Project(
	history core.DomainEvents,
	query Query,
	rates rules.PenaltyRates,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
) DueLoans {

	state := core.Replay(history)
	loans := state.AllLoans()
	core.SortLoansByDueDate(loans)

	due := make([]DueLoan, 0)
	for _, loan := range loans {
		if loan.Returned || loan.Approval != rules.ApprovalApproved {
			continue
		}

		daysRemaining := rules.DaysRemaining(loan.DueAt, query.AsOf)
		if daysRemaining > DueWithinDays {
			continue
		}

		daysOverdue := rules.DaysOverdue(loan.DueAt, query.AsOf)
		due = append(due, DueLoan{
			LoanID:         loan.LoanID,
			CopyID:         loan.CopyID,
			ItemID:         loan.ItemID,
			MemberID:       loan.MemberID,
			DueAt:          loan.DueAt,
			DaysRemaining:  daysRemaining,
			DaysOverdue:    daysOverdue,
			Severity:       rules.ComputeSeverity(daysOverdue),
			AccruedPenalty: rules.ComputePenalty(daysOverdue, rules.ConditionGood, rates),
		})
	}

	return DueLoans{
		AsOf:           query.AsOf,
		Loans:          due,
		Count:          len(due),
		SequenceNumber: maxSequenceNumber,
	}
}

func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BorrowRequestedEventType,
			core.BorrowApprovedEventType,
			core.CopyReturnedEventType,
		).
		Finalize()
}
