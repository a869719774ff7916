package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/rules"
)

const CopyStatusChangedEventType = "CopyStatusChanged"

// CopyStatusChanged is an administrative status edit, e.g. sending a copy to repair.
type CopyStatusChanged struct {
	CopyID     CopyIDString
	ItemID     ItemIDString
	From       rules.CopyStatus
	To         rules.CopyStatus
	OccurredAt OccurredAtTS
}

func BuildCopyStatusChanged(
	copyID uuid.UUID,
	itemID uuid.UUID,
	from rules.CopyStatus,
	to rules.CopyStatus,
	occurredAt time.Time,
) CopyStatusChanged {

	return CopyStatusChanged{
		CopyID:     copyID.String(),
		ItemID:     itemID.String(),
		From:       from,
		To:         to,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e CopyStatusChanged) IsEventType() string {
	return CopyStatusChangedEventType
}

func (e CopyStatusChanged) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e CopyStatusChanged) IsErrorEvent() bool {
	return false
}
