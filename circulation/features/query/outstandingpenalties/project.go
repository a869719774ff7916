package outstandingpenalties

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/eventstore"
)

// Project lists the unpaid returns in return order and sums them up.
func Project(history core.DomainEvents, query Query, maxSequenceNumber eventstore.MaxSequenceNumberUint) OutstandingPenalties {
	state := core.Replay(history)

	result := OutstandingPenalties{
		Penalties:      make([]OutstandingPenalty, 0),
		Total:          decimal.Zero,
		SequenceNumber: maxSequenceNumber,
	}

	loans := state.AllLoans()
	core.SortLoansByReturnDate(loans)

	for _, loan := range loans {
		if !loan.OwesPenalty() {
			continue
		}

		if query.MemberID != uuid.Nil && loan.MemberID != query.MemberID.String() {
			continue
		}

		result.Penalties = append(result.Penalties, OutstandingPenalty{
			LoanID:      loan.LoanID,
			CopyID:      loan.CopyID,
			ItemID:      loan.ItemID,
			MemberID:    loan.MemberID,
			Condition:   loan.Condition,
			DaysOverdue: loan.DaysOverdue,
			Amount:      loan.Penalty,
			ReturnedAt:  loan.ReturnedAt,
		})
		result.Total = result.Total.Add(loan.Penalty)
	}

	result.Count = len(result.Penalties)

	return result
}

func BuildEventFilter(memberID uuid.UUID) eventstore.Filter {
	builder := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.CopyReturnedEventType, core.PenaltyPaidEventType)

	if memberID == uuid.Nil {
		return builder.Finalize()
	}

	return builder.AndAnyPredicateOf(eventstore.P(core.MemberIDKey, memberID.String())).Finalize()
}
