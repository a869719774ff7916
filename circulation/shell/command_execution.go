package shell

import (
	"context"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/eventstore"
)

// DecideFunc makes the business decision on the history selected by the handler's filter.
type DecideFunc func(history core.DomainEvents) core.DecisionResult

// HandleCommand runs Query, Unmarshal, Decide, Append with strong consistency and retries
// the whole cycle on concurrency conflicts. Failure events are appended before their error is returned.
func HandleCommand(
	ctx context.Context,
	store EventStore,
	filter eventstore.Filter,
	decide DecideFunc,
	retryOptions ...RetryOption,
) (HandlerResult, error) {

	var isIdempotent bool

	retryMetrics, err := RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		idempotent, execErr := executeCommand(retryCtx, store, filter, decide)
		isIdempotent = idempotent

		return execErr
	}, retryOptions...)

	if isIdempotent && err == nil {
		return NewIdempotentResult(retryMetrics), nil
	}

	if err != nil {
		return NewErrorResult(retryMetrics), err
	}

	return NewSuccessResult(retryMetrics), nil
}

func executeCommand(ctx context.Context, store EventStore, filter eventstore.Filter, decide DecideFunc) (bool, error) {
	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := store.Query(ctx, filter)
	if err != nil {
		return false, err
	}

	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return false, err
	}

	result := decide(history)
	if !result.HasEventToAppend() {
		return true, nil
	}

	storableEvent, err := StorableEventFrom(result.Event, NewCommandEventMetadata())
	if err != nil {
		return false, err
	}

	if err = store.Append(ctx, filter, maxSequenceNumber, storableEvent); err != nil {
		return false, err
	}

	return false, result.HasError()
}

// QueryHistory is the read side counterpart: Query and Unmarshal with eventual consistency,
// unless the caller already chose a consistency level.
func QueryHistory(
	ctx context.Context,
	store QueriesEvents,
	filter eventstore.Filter,
) (core.DomainEvents, eventstore.MaxSequenceNumberUint, error) {

	if !hasConsistencyLevel(ctx) {
		ctx = eventstore.WithEventualConsistency(ctx)
	}

	storableEvents, maxSequenceNumber, err := store.Query(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return nil, 0, err
	}

	return history, maxSequenceNumber, nil
}

func hasConsistencyLevel(ctx context.Context) bool {
	_, ok := eventstore.ConsistencyLevelFrom(ctx)
	return ok
}
