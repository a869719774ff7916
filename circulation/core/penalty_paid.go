package core

import (
	"time"

	"github.com/shopspring/decimal"
)

const PenaltyPaidEventType = "PenaltyPaid"

// PenaltyPaid settles a pending return. After it the return is immutable.
type PenaltyPaid struct {
	LoanID     LoanIDString
	CopyID     CopyIDString
	ItemID     ItemIDString
	MemberID   MemberIDString
	Amount     decimal.Decimal
	PaymentRef string
	OccurredAt OccurredAtTS
}

func BuildPenaltyPaid(loan LoanRef, amount decimal.Decimal, paymentRef string, occurredAt time.Time) PenaltyPaid {
	return PenaltyPaid{
		LoanID:     loan.LoanID.String(),
		CopyID:     loan.CopyID.String(),
		ItemID:     loan.ItemID.String(),
		MemberID:   loan.MemberID.String(),
		Amount:     amount,
		PaymentRef: paymentRef,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e PenaltyPaid) IsEventType() string {
	return PenaltyPaidEventType
}

func (e PenaltyPaid) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e PenaltyPaid) IsErrorEvent() bool {
	return false
}
