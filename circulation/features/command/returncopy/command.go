package returncopy

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
)

const commandType = "ReturnCopy"

// Command brings a borrowed copy back. OccurredAt is the evaluation date for lateness.
type Command struct {
	LoanID     uuid.UUID
	Condition  rules.ReturnCondition
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(loanID uuid.UUID, condition rules.ReturnCondition, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		Condition:  condition,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
