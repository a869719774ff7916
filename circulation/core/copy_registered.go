package core

import (
	"time"

	"github.com/google/uuid"
)

const CopyRegisteredEventType = "CopyRegistered"

// CopyRegistered is recorded when a physical copy of a catalog item is shelved. A new copy is Available.
type CopyRegistered struct {
	CopyID          CopyIDString
	ItemID          ItemIDString
	AccessionNumber AccessionNumberString
	Location        string
	OccurredAt      OccurredAtTS
}

func BuildCopyRegistered(
	copyID uuid.UUID,
	itemID uuid.UUID,
	accessionNumber string,
	location string,
	occurredAt time.Time,
) CopyRegistered {

	return CopyRegistered{
		CopyID:          copyID.String(),
		ItemID:          itemID.String(),
		AccessionNumber: accessionNumber,
		Location:        location,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

func (e CopyRegistered) IsEventType() string {
	return CopyRegisteredEventType
}

func (e CopyRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e CopyRegistered) IsErrorEvent() bool {
	return false
}
