package requestborrow

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
)

const commandType = "RequestBorrow"

// Command asks to borrow one copy. OccurredAt is the request date the due date is computed from.
type Command struct {
	LoanID     uuid.UUID
	CopyID     uuid.UUID
	MemberID   uuid.UUID
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(loanID, copyID, memberID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		CopyID:     copyID,
		MemberID:   memberID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
