package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/shelfwise/circulation/eventstore"
	"github.com/shelfwise/circulation/eventstore/postgresengine/internal/adapters"
)

const defaultEventTableName = "events"

// EventStore persists events in a single PostgreSQL table.
type EventStore struct {
	db               adapters.DBAdapter
	eventTableName   string
	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
	tracingCollector eventstore.TracingCollector
}

// NewEventStoreFromPGXPool creates an EventStore on top of a pgx pool.
func NewEventStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapter(db), options...)
}

// NewEventStoreFromPGXPoolAndReplica creates an EventStore that serves queries running under
// eventstore.WithEventualConsistency from the replica pool.
func NewEventStoreFromPGXPoolAndReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	if replica == nil {
		return newEventStore(adapters.NewPGXAdapter(db), options...)
	}

	return newEventStore(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewEventStoreFromSQLDB creates an EventStore on top of a database/sql handle.
func NewEventStoreFromSQLDB(db *sql.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLAdapter(db), options...)
}

// NewEventStoreFromSQLX creates an EventStore on top of a sqlx handle.
func NewEventStoreFromSQLX(db *sqlx.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLXAdapter(db), options...)
}

func newEventStore(db adapters.DBAdapter, options ...Option) (*EventStore, error) {
	es := &EventStore{
		db:             db,
		eventTableName: defaultEventTableName,
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Query returns all events matching filter in sequence order, together with the
// max sequence number of this dynamic event stream.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	obs := es.startQueryObservation(ctx)
	ctx = obs.ctx

	sqlQuery, buildErr := es.buildSelectQuery(filter)
	if buildErr != nil {
		es.logError(ctx, logMsgBuildSelectQueryFailed, buildErr)
		obs.finishError(errorTypeBuildQuery, 0)

		return nil, 0, buildErr
	}

	start := time.Now()
	rows, queryErr := es.db.Query(ctx, sqlQuery)
	es.logSQL(ctx, sqlQuery, operationQuery, time.Since(start))

	if queryErr != nil {
		es.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		obs.finishError(classifyError(queryErr, errorTypeDatabaseQuery), time.Since(start))

		return nil, 0, errors.Join(eventstore.ErrQueryingEventsFailed, queryErr)
	}
	defer es.closeRows(ctx, rows)

	events, maxSequenceNumber, scanErr := es.scanEvents(ctx, rows)
	duration := time.Since(start)

	if scanErr != nil {
		obs.finishError(errorTypeRowScan, duration)

		return nil, 0, scanErr
	}

	es.logOperation(ctx, logMsgQueryCompleted, logAttrEventCount, len(events), logAttrDurationMS, toMilliseconds(duration))
	obs.finishSuccess(len(events), maxSequenceNumber, duration)

	return events, maxSequenceNumber, nil
}

func (es *EventStore) scanEvents(ctx context.Context, rows adapters.DBRows) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	var (
		eventType      string
		occurredAt     time.Time
		payload        []byte
		metadata       []byte
		sequenceNumber int64
	)

	events := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for rows.Next() {
		if err := rows.Scan(&eventType, &occurredAt, &payload, &metadata, &sequenceNumber); err != nil {
			es.logError(ctx, logMsgScanRowFailed, err)

			return nil, 0, errors.Join(eventstore.ErrScanningDBRowFailed, err)
		}

		event, buildErr := eventstore.BuildStorableEvent(eventType, occurredAt, payload, metadata)
		if buildErr != nil {
			es.logError(ctx, logMsgBuildStorableEventFailed, buildErr, logAttrEventType, eventType)

			return nil, 0, errors.Join(eventstore.ErrBuildingStorableEventFailed, buildErr)
		}

		events = append(events, event.WithSequenceNumber(eventstore.MaxSequenceNumberUint(sequenceNumber)))
		maxSequenceNumber = eventstore.MaxSequenceNumberUint(sequenceNumber)
	}

	if err := rows.Err(); err != nil {
		es.logError(ctx, logMsgScanRowFailed, err)

		return nil, 0, errors.Join(eventstore.ErrScanningDBRowFailed, err)
	}

	return events, maxSequenceNumber, nil
}

func (es *EventStore) closeRows(ctx context.Context, rows adapters.DBRows) {
	if err := rows.Close(); err != nil {
		es.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, err.Error())
	}
}

// Append writes the events atomically, but only if the max sequence number of the stream
// selected by filter still equals expectedMaxSequenceNumber. Otherwise it returns
// eventstore.ErrConcurrencyConflict.
//
// Use the filter of the Query the decision was based on. One command should normally produce
// one event; the multi-event statement is heavier.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	obs := es.startAppendObservation(ctx, allEvents, expectedMaxSequenceNumber)
	ctx = obs.ctx

	sqlQuery, buildErr := es.buildInsertQuery(allEvents, filter, expectedMaxSequenceNumber)
	if buildErr != nil {
		es.logError(ctx, logMsgBuildInsertQueryFailed, buildErr, logAttrEventCount, len(allEvents))
		obs.finishError(errorTypeBuildQuery, 0)

		return buildErr
	}

	start := time.Now()
	result, execErr := es.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	es.logSQL(ctx, sqlQuery, operationAppend, duration)

	if execErr != nil {
		es.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		obs.finishError(classifyError(execErr, errorTypeDatabaseExec), duration)

		return errors.Join(eventstore.ErrAppendingEventFailed, execErr)
	}

	rowsAffected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		es.logError(ctx, logMsgRowsAffectedFailed, rowsErr)
		obs.finishError(errorTypeRowsAffected, duration)

		return errors.Join(eventstore.ErrGettingRowsAffectedFailed, rowsErr)
	}

	if rowsAffected < int64(len(allEvents)) {
		es.logOperation(
			ctx,
			logMsgConcurrencyConflict,
			logAttrExpectedEvents, len(allEvents),
			logAttrRowsAffected, rowsAffected,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
		)
		obs.finishConflict(duration)

		return eventstore.ErrConcurrencyConflict
	}

	es.logOperation(ctx, logMsgEventsAppended, logAttrEventCount, len(allEvents), logAttrDurationMS, toMilliseconds(duration))
	obs.finishSuccess(len(allEvents), rowsAffected, duration)

	return nil
}
