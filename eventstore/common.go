package eventstore

import (
	"context"
	"errors"
)

var (
	ErrEmptyEventsTableName        = errors.New("empty events table name supplied")
	ErrNilDatabaseConnection       = errors.New("nil database connection supplied")
	ErrConcurrencyConflict         = errors.New("concurrency conflict: the event stream was modified since it was queried")
	ErrQueryingEventsFailed        = errors.New("querying events failed")
	ErrScanningDBRowFailed         = errors.New("scanning db row failed")
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")
	ErrBuildingQueryFailed         = errors.New("building query failed")
	ErrAppendingEventFailed        = errors.New("appending the event failed")
	ErrGettingRowsAffectedFailed   = errors.New("getting rows affected failed")
)

// MaxSequenceNumberUint is the highest sequence number inside a dynamic event stream.
// Zero means the stream is empty.
type MaxSequenceNumberUint = uint

// QueriesEvents is implemented by every engine.
type QueriesEvents interface {
	Query(ctx context.Context, filter Filter) (StorableEvents, MaxSequenceNumberUint, error)
}

// AppendsEvents is implemented by every engine.
//
// The filter must be the one that was used for the Query the business decision was based on,
// and expectedMaxSequenceNumber the max sequence number that Query returned.
type AppendsEvents interface {
	Append(
		ctx context.Context,
		filter Filter,
		expectedMaxSequenceNumber MaxSequenceNumberUint,
		event StorableEvent,
		additionalEvents ...StorableEvent,
	) error
}

// EventStore combines reading and conditional appending.
type EventStore interface {
	QueriesEvents
	AppendsEvents
}
