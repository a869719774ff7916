package changecopystatus

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
)

const commandType = "ChangeCopyStatus"

type Command struct {
	CopyID     uuid.UUID
	Status     rules.CopyStatus
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(copyID uuid.UUID, status rules.CopyStatus, occurredAt time.Time) Command {
	return Command{
		CopyID:     copyID,
		Status:     status,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
