package core

import (
	"time"

	"github.com/google/uuid"
)

const BorrowDisapprovedEventType = "BorrowDisapproved"

// BorrowDisapproved closes a pending loan and releases the reserved copy.
type BorrowDisapproved struct {
	LoanID     LoanIDString
	CopyID     CopyIDString
	ItemID     ItemIDString
	MemberID   MemberIDString
	Reason     string
	OccurredAt OccurredAtTS
}

func BuildBorrowDisapproved(
	loanID uuid.UUID,
	copyID uuid.UUID,
	itemID uuid.UUID,
	memberID uuid.UUID,
	reason string,
	occurredAt time.Time,
) BorrowDisapproved {

	return BorrowDisapproved{
		LoanID:     loanID.String(),
		CopyID:     copyID.String(),
		ItemID:     itemID.String(),
		MemberID:   memberID.String(),
		Reason:     reason,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BorrowDisapproved) IsEventType() string {
	return BorrowDisapprovedEventType
}

func (e BorrowDisapproved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BorrowDisapproved) IsErrorEvent() bool {
	return false
}
