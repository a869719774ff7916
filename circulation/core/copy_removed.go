package core

import (
	"time"

	"github.com/google/uuid"
)

const CopyRemovedEventType = "CopyRemoved"

// CopyRemoved takes a copy out of the catalog. Its accession number becomes free again.
type CopyRemoved struct {
	CopyID          CopyIDString
	ItemID          ItemIDString
	AccessionNumber AccessionNumberString
	OccurredAt      OccurredAtTS
}

func BuildCopyRemoved(copyID uuid.UUID, itemID uuid.UUID, accessionNumber string, occurredAt time.Time) CopyRemoved {
	return CopyRemoved{
		CopyID:          copyID.String(),
		ItemID:          itemID.String(),
		AccessionNumber: accessionNumber,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

func (e CopyRemoved) IsEventType() string {
	return CopyRemovedEventType
}

func (e CopyRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e CopyRemoved) IsErrorEvent() bool {
	return false
}
