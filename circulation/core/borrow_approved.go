package core

import (
	"time"

	"github.com/google/uuid"
)

const BorrowApprovedEventType = "BorrowApproved"

// BorrowApproved hands the reserved copy over to the member.
type BorrowApproved struct {
	LoanID     LoanIDString
	CopyID     CopyIDString
	ItemID     ItemIDString
	MemberID   MemberIDString
	DueAt      time.Time
	OccurredAt OccurredAtTS
}

func BuildBorrowApproved(
	loanID uuid.UUID,
	copyID uuid.UUID,
	itemID uuid.UUID,
	memberID uuid.UUID,
	dueAt time.Time,
	occurredAt time.Time,
) BorrowApproved {

	return BorrowApproved{
		LoanID:     loanID.String(),
		CopyID:     copyID.String(),
		ItemID:     itemID.String(),
		MemberID:   memberID.String(),
		DueAt:      dueAt,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BorrowApproved) IsEventType() string {
	return BorrowApprovedEventType
}

func (e BorrowApproved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BorrowApproved) IsErrorEvent() bool {
	return false
}
