package memoryengine_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/eventstore"
	"github.com/shelfwise/circulation/eventstore/memoryengine"
)

func givenEvent(t *testing.T, eventType string, occurredAt time.Time, payload string) eventstore.StorableEvent {
	t.Helper()

	event, err := eventstore.BuildStorableEventWithEmptyMetadata(eventType, occurredAt, []byte(payload))
	require.NoError(t, err)

	return event
}

func givenAppended(t *testing.T, es *memoryengine.EventStore, events ...eventstore.StorableEvent) {
	t.Helper()

	ctx := context.Background()
	anyEvent := eventstore.BuildEventFilter().MatchingAnyEvent().Finalize()

	for _, event := range events {
		_, maxSeq, err := es.Query(ctx, anyEvent)
		require.NoError(t, err)
		require.NoError(t, es.Append(ctx, anyEvent, maxSeq, event))
	}
}

func Test_Query_FiltersByEventTypeAndPredicate(t *testing.T) {
	// arrange
	es := memoryengine.NewEventStore()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	givenAppended(
		t,
		es,
		givenEvent(t, "CopyRegistered", now, `{"CopyID":"c-1"}`),
		givenEvent(t, "CopyRegistered", now, `{"CopyID":"c-2"}`),
		givenEvent(t, "BorrowRequested", now, `{"CopyID":"c-1","MemberID":"m-1"}`),
		givenEvent(t, "MemberRegistered", now, `{"MemberID":"m-1"}`),
	)

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("CopyRegistered", "BorrowRequested").
		AndAnyPredicateOf(eventstore.P("CopyID", "c-1")).
		Finalize()

	// act
	events, maxSeq, err := es.Query(context.Background(), filter)

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "CopyRegistered", events[0].EventType)
	assert.Equal(t, "BorrowRequested", events[1].EventType)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(3), maxSeq, "max sequence of the filtered stream")
}

func Test_Query_AllPredicatesMustMatch(t *testing.T) {
	// arrange
	es := memoryengine.NewEventStore()
	now := time.Now()
	givenAppended(
		t,
		es,
		givenEvent(t, "BorrowRequested", now, `{"CopyID":"c-1","MemberID":"m-1"}`),
		givenEvent(t, "BorrowRequested", now, `{"CopyID":"c-1","MemberID":"m-2"}`),
	)

	filter := eventstore.BuildEventFilter().
		Matching().
		AllPredicatesOf(eventstore.P("CopyID", "c-1"), eventstore.P("MemberID", "m-2")).
		Finalize()

	// act
	events, _, err := es.Query(context.Background(), filter)

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.JSONEq(t, `{"CopyID":"c-1","MemberID":"m-2"}`, string(events[0].PayloadJSON))
}

func Test_Query_RespectsTimeRange(t *testing.T) {
	// arrange
	es := memoryengine.NewEventStore()
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	givenAppended(
		t,
		es,
		givenEvent(t, "CopyReturned", day(1), `{}`),
		givenEvent(t, "CopyReturned", day(2), `{}`),
		givenEvent(t, "CopyReturned", day(3), `{}`),
	)

	filter := eventstore.BuildEventFilter().MatchingAnyEvent().OccurredFrom(day(2)).OccurredUntil(day(2)).Finalize()

	// act
	events, maxSeq, err := es.Query(context.Background(), filter)

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(2), maxSeq)
}

func Test_Append_DetectsConcurrencyConflict(t *testing.T) {
	// arrange
	es := memoryengine.NewEventStore()
	ctx := context.Background()
	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("CopyID", "c-1")).Finalize()

	_, maxSeq, err := es.Query(ctx, filter)
	require.NoError(t, err)
	require.NoError(t, es.Append(ctx, filter, maxSeq, givenEvent(t, "CopyRegistered", time.Now(), `{"CopyID":"c-1"}`)))

	// act
	err = es.Append(ctx, filter, maxSeq, givenEvent(t, "CopyRemoved", time.Now(), `{"CopyID":"c-1"}`))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, 1, es.Len())
}

func Test_Append_UnrelatedStreamsDoNotConflict(t *testing.T) {
	// arrange
	es := memoryengine.NewEventStore()
	ctx := context.Background()
	copy1 := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("CopyID", "c-1")).Finalize()
	copy2 := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("CopyID", "c-2")).Finalize()

	_, maxSeq1, err := es.Query(ctx, copy1)
	require.NoError(t, err)
	_, maxSeq2, err := es.Query(ctx, copy2)
	require.NoError(t, err)

	// act
	err1 := es.Append(ctx, copy1, maxSeq1, givenEvent(t, "CopyRegistered", time.Now(), `{"CopyID":"c-1"}`))
	err2 := es.Append(ctx, copy2, maxSeq2, givenEvent(t, "CopyRegistered", time.Now(), `{"CopyID":"c-2"}`))

	// assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
}

func Test_Append_ConcurrentWritersOnSameStream_OnlyOneWins(t *testing.T) {
	// arrange
	es := memoryengine.NewEventStore()
	ctx := context.Background()
	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("CopyID", "c-1")).Finalize()
	event := givenEvent(t, "BorrowRequested", time.Now(), `{"CopyID":"c-1"}`)

	const writers = 10
	results := make(chan error, writers)
	var wg sync.WaitGroup

	// act
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- es.Append(ctx, filter, 0, event)
		}()
	}
	wg.Wait()
	close(results)

	// assert
	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, es.Len())
}

func Test_Query_ReturnsCopies(t *testing.T) {
	// arrange
	es := memoryengine.NewEventStore()
	givenAppended(t, es, givenEvent(t, "CopyRegistered", time.Now(), `{"CopyID":"c-1"}`))
	anyEvent := eventstore.BuildEventFilter().MatchingAnyEvent().Finalize()

	// act
	first, _, err := es.Query(context.Background(), anyEvent)
	require.NoError(t, err)
	first[0].PayloadJSON[2] = 'X'
	second, _, err := es.Query(context.Background(), anyEvent)

	// assert
	require.NoError(t, err)
	assert.JSONEq(t, `{"CopyID":"c-1"}`, string(second[0].PayloadJSON))
}

func Test_Query_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := memoryengine.NewEventStore().Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent().Finalize())

	assert.ErrorIs(t, err, context.Canceled)
}
