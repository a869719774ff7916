package removecopy

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
)

const commandType = "RemoveCopy"

type Command struct {
	CopyID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(copyID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		CopyID:     copyID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
