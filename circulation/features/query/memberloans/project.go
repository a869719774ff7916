package memberloans

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

// Project splits the member's loans into open loans, ordered by due date, and returns in
// return order. Disapproved requests are left out.
func Project(history core.DomainEvents, query Query, maxSequenceNumber eventstore.MaxSequenceNumberUint) MemberLoans {
	state := core.Replay(history)
	memberID := query.MemberID.String()

	result := MemberLoans{
		MemberID:       memberID,
		OpenLoans:      make([]OpenLoan, 0),
		Returns:        make([]SettledReturn, 0),
		AmountOwed:     decimal.Zero,
		SequenceNumber: maxSequenceNumber,
	}

	if member, ok := state.Member(memberID); ok {
		result.Name = member.Name
		result.Category = member.Category
		result.Deactivated = member.Deactivated
	}

	loans := state.LoansOf(memberID)
	core.SortLoansByDueDate(loans)

	for _, loan := range loans {
		if !loan.IsOpen() {
			continue
		}

		daysOverdue := rules.DaysOverdue(loan.DueAt, query.AsOf)
		result.OpenLoans = append(result.OpenLoans, OpenLoan{
			LoanID:        loan.LoanID,
			CopyID:        loan.CopyID,
			ItemID:        loan.ItemID,
			Approval:      loan.Approval,
			RequestedAt:   loan.RequestedAt,
			DueAt:         loan.DueAt,
			DaysRemaining: rules.DaysRemaining(loan.DueAt, query.AsOf),
			DaysOverdue:   daysOverdue,
			Severity:      rules.ComputeSeverity(daysOverdue),
		})
	}

	returns := state.LoansOf(memberID)
	core.SortLoansByReturnDate(returns)

	for _, loan := range returns {
		if !loan.Returned {
			continue
		}

		result.Returns = append(result.Returns, SettledReturn{
			LoanID:      loan.LoanID,
			CopyID:      loan.CopyID,
			ItemID:      loan.ItemID,
			DueAt:       loan.DueAt,
			ReturnedAt:  loan.ReturnedAt,
			Condition:   loan.Condition,
			DaysOverdue: loan.DaysOverdue,
			Penalty:     loan.Penalty,
			Settlement:  loan.Settlement,
		})

		if loan.OwesPenalty() {
			result.AmountOwed = result.AmountOwed.Add(loan.Penalty)
		}
	}

	return result
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
