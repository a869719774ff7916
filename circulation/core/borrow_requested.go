package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/rules"
)

const BorrowRequestedEventType = "BorrowRequested"

// BorrowRequested opens a loan in approval status Pending and reserves the copy.
// DueAt is fixed here and never moves afterward.
type BorrowRequested struct {
	LoanID     LoanIDString
	CopyID     CopyIDString
	ItemID     ItemIDString
	MemberID   MemberIDString
	Category   rules.MemberCategory
	DueAt      time.Time
	OccurredAt OccurredAtTS
}

func BuildBorrowRequested(
	loanID uuid.UUID,
	copyID uuid.UUID,
	itemID uuid.UUID,
	memberID uuid.UUID,
	category rules.MemberCategory,
	dueAt time.Time,
	occurredAt time.Time,
) BorrowRequested {

	return BorrowRequested{
		LoanID:     loanID.String(),
		CopyID:     copyID.String(),
		ItemID:     itemID.String(),
		MemberID:   memberID.String(),
		Category:   category,
		DueAt:      dueAt,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BorrowRequested) IsEventType() string {
	return BorrowRequestedEventType
}

func (e BorrowRequested) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BorrowRequested) IsErrorEvent() bool {
	return false
}
