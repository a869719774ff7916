package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/rules"
)

const MemberRegisteredEventType = "MemberRegistered"

// MemberRegistered is recorded when a student or faculty member gets library privileges.
type MemberRegistered struct {
	MemberID     MemberIDString
	Name         string
	Category     rules.MemberCategory
	BookingQuota uint
	OccurredAt   OccurredAtTS
}

func BuildMemberRegistered(
	memberID uuid.UUID,
	name string,
	category rules.MemberCategory,
	bookingQuota uint,
	occurredAt time.Time,
) MemberRegistered {

	return MemberRegistered{
		MemberID:     memberID.String(),
		Name:         name,
		Category:     category,
		BookingQuota: bookingQuota,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e MemberRegistered) IsEventType() string {
	return MemberRegisteredEventType
}

func (e MemberRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e MemberRegistered) IsErrorEvent() bool {
	return false
}
