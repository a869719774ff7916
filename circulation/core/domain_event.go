package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent.
type DomainEvents = []DomainEvent

// DomainEvent is something that happened in the library.
type DomainEvent interface {
	IsEventType() string
	HasOccurredAt() time.Time

	// IsErrorEvent reports whether the event records a rejected command.
	IsErrorEvent() bool
}
