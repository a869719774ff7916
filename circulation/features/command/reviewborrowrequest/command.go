package reviewborrowrequest

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
)

const commandType = "ReviewBorrowRequest"

// Command approves or disapproves a pending borrow request. Reason is recorded on disapproval.
type Command struct {
	LoanID     uuid.UUID
	Decision   rules.ApprovalStatus
	Reason     string
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(loanID uuid.UUID, decision rules.ApprovalStatus, reason string, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		Decision:   decision,
		Reason:     reason,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
