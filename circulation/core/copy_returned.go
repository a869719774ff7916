package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shelfwise/circulation/circulation/rules"
)

const CopyReturnedEventType = "CopyReturned"

// CopyReturned records a settled return. Penalty and SettlementStatus are computed once, at return time.
type CopyReturned struct {
	LoanID           LoanIDString
	CopyID           CopyIDString
	ItemID           ItemIDString
	MemberID         MemberIDString
	Condition        rules.ReturnCondition
	DueAt            time.Time
	DaysOverdue      int
	Penalty          decimal.Decimal
	SettlementStatus rules.SettlementStatus
	OccurredAt       OccurredAtTS
}

// LoanRef identifies the loan a return or payment belongs to.
type LoanRef struct {
	LoanID   uuid.UUID
	CopyID   uuid.UUID
	ItemID   uuid.UUID
	MemberID uuid.UUID
}

func BuildCopyReturned(
	loan LoanRef,
	condition rules.ReturnCondition,
	dueAt time.Time,
	daysOverdue int,
	penalty decimal.Decimal,
	settlementStatus rules.SettlementStatus,
	occurredAt time.Time,
) CopyReturned {

	return CopyReturned{
		LoanID:           loan.LoanID.String(),
		CopyID:           loan.CopyID.String(),
		ItemID:           loan.ItemID.String(),
		MemberID:         loan.MemberID.String(),
		Condition:        condition,
		DueAt:            dueAt,
		DaysOverdue:      daysOverdue,
		Penalty:          penalty,
		SettlementStatus: settlementStatus,
		OccurredAt:       ToOccurredAt(occurredAt),
	}
}

func (e CopyReturned) IsEventType() string {
	return CopyReturnedEventType
}

func (e CopyReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e CopyReturned) IsErrorEvent() bool {
	return false
}
