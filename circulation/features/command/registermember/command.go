package registermember

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
)

const commandType = "RegisterMember"

type Command struct {
	MemberID     uuid.UUID
	Name         string
	Category     rules.MemberCategory
	BookingQuota *uint // nil means rules.DefaultBookingQuota
	OccurredAt   core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand registers a member with the default quota of the category.
func BuildCommand(
	memberID uuid.UUID,
	name string,
	category rules.MemberCategory,
	occurredAt time.Time,
) Command {

	return Command{
		MemberID:   memberID,
		Name:       name,
		Category:   category,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// BuildCommandWithQuota registers a member with a quota set by an administrator. Zero is a valid quota.
func BuildCommandWithQuota(
	memberID uuid.UUID,
	name string,
	category rules.MemberCategory,
	bookingQuota uint,
	occurredAt time.Time,
) Command {

	command := BuildCommand(memberID, name, category, occurredAt)
	command.BookingQuota = &bookingQuota

	return command
}
