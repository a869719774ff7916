package deactivatemember

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
)

const commandType = "DeactivateMember"

// Command soft deletes a member. Loans and returns of the member stay in the history.
type Command struct {
	MemberID   uuid.UUID
	Reason     string
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(memberID uuid.UUID, reason string, occurredAt time.Time) Command {
	return Command{
		MemberID:   memberID,
		Reason:     reason,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
