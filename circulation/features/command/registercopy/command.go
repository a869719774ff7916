package registercopy

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
)

const commandType = "RegisterCopy"

type Command struct {
	CopyID          uuid.UUID
	ItemID          uuid.UUID
	AccessionNumber string
	Location        string
	OccurredAt      core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(copyID, itemID uuid.UUID, accessionNumber, location string, occurredAt time.Time) Command {
	return Command{
		CopyID:          copyID,
		ItemID:          itemID,
		AccessionNumber: accessionNumber,
		Location:        location,
		OccurredAt:      core.ToOccurredAt(occurredAt),
	}
}
