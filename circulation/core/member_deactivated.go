package core

import (
	"time"

	"github.com/google/uuid"
)

const MemberDeactivatedEventType = "MemberDeactivated"

// MemberDeactivated is a soft delete. The member's loan history stays intact.
type MemberDeactivated struct {
	MemberID   MemberIDString
	Reason     string
	OccurredAt OccurredAtTS
}

func BuildMemberDeactivated(memberID uuid.UUID, reason string, occurredAt time.Time) MemberDeactivated {
	return MemberDeactivated{
		MemberID:   memberID.String(),
		Reason:     reason,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e MemberDeactivated) IsEventType() string {
	return MemberDeactivatedEventType
}

func (e MemberDeactivated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e MemberDeactivated) IsErrorEvent() bool {
	return false
}
