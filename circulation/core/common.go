package core

import (
	"time"
)

// Instead of value objects the events use alias types for IDs.

type MemberIDString = string
type ItemIDString = string
type CopyIDString = string
type LoanIDString = string
type AccessionNumberString = string

// OccurredAtTS is when an event happened.
type OccurredAtTS = time.Time

// ToOccurredAt normalizes to UTC with microsecond precision, which is what Postgres stores.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// Payload keys used as event store predicates.
const (
	MemberIDKey        = "MemberID"
	ItemIDKey          = "ItemID"
	CopyIDKey          = "CopyID"
	LoanIDKey          = "LoanID"
	AccessionNumberKey = "AccessionNumber"
)
