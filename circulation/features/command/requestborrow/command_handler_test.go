package requestborrow_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/command/addcatalogitem"
	"github.com/shelfwise/circulation/circulation/features/command/registercopy"
	"github.com/shelfwise/circulation/circulation/features/command/registermember"
	"github.com/shelfwise/circulation/circulation/features/command/requestborrow"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/circulation/shell"
	"github.com/shelfwise/circulation/eventstore"
	"github.com/shelfwise/circulation/eventstore/memoryengine"
)

type seeded struct {
	memberID uuid.UUID
	copyID   uuid.UUID
}

func givenMemberAndCopy(t *testing.T, ctx context.Context, store shell.EventStore, quota uint) seeded {
	t.Helper()

	s := seeded{memberID: uuid.New(), copyID: uuid.New()}
	itemID := uuid.New()
	now := time.Now()

	_, err := registermember.NewCommandHandler(store).
		Handle(ctx, registermember.BuildCommandWithQuota(s.memberID, "Barbara", rules.CategoryStudent, quota, now))
	require.NoError(t, err)

	_, err = addcatalogitem.NewCommandHandler(store).
		Handle(ctx, addcatalogitem.BuildCommand(itemID, core.ItemBook, "Structured Programming", nil, "", 1972, now))
	require.NoError(t, err)

	_, err = registercopy.NewCommandHandler(store).
		Handle(ctx, registercopy.BuildCommand(s.copyID, itemID, "424242", "Stack C", now))
	require.NoError(t, err)

	return s
}

func Test_CommandHandler_Success_ThenIdempotent(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewEventStore()
	s := givenMemberAndCopy(t, ctx, store, 2)
	handler := requestborrow.NewCommandHandler(store)
	command := requestborrow.BuildCommand(uuid.New(), s.copyID, s.memberID, time.Now())

	// act
	first, firstErr := handler.Handle(ctx, command)
	second, secondErr := handler.Handle(ctx, command)

	// assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.False(t, first.Idempotent)
	assert.Equal(t, 1, first.RetryAttempts)
	assert.True(t, second.Idempotent)
	assert.Equal(t, 4, store.Len())
}

func Test_CommandHandler_Rejection_AppendsFailureEvent(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewEventStore()
	s := givenMemberAndCopy(t, ctx, store, 2)
	handler := requestborrow.NewCommandHandler(store)
	_, err := handler.Handle(ctx, requestborrow.BuildCommand(uuid.New(), s.copyID, s.memberID, time.Now()))
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, requestborrow.BuildCommand(uuid.New(), s.copyID, s.memberID, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrCommandRejected)
	assert.ErrorIs(t, err, requestborrow.ErrCopyNotAvailable)
	assert.False(t, result.Idempotent)
	assert.Equal(t, 5, store.Len())

	failures, _, queryErr := store.Query(ctx, eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.RequestingBorrowFailedEventType).
		Finalize())
	require.NoError(t, queryErr)
	assert.Len(t, failures, 1)
}

// conflictingStore lets a competing writer slip in before the first Append.
type conflictingStore struct {
	*memoryengine.EventStore
	once    sync.Once
	compete func()
}

func (s *conflictingStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	s.once.Do(s.compete)

	return s.EventStore.Append(ctx, filter, expectedMaxSequenceNumber, event, additionalEvents...)
}

func Test_CommandHandler_RetriesOnConcurrencyConflict_ThenRejects(t *testing.T) {
	// arrange
	ctx := context.Background()
	memory := memoryengine.NewEventStore()
	s := givenMemberAndCopy(t, ctx, memory, 2)
	store := &conflictingStore{
		EventStore: memory,
		compete: func() {
			_, err := requestborrow.NewCommandHandler(memory).
				Handle(ctx, requestborrow.BuildCommand(uuid.New(), s.copyID, s.memberID, time.Now()))
			require.NoError(t, err)
		},
	}
	handler := requestborrow.NewCommandHandler(store, requestborrow.WithRetryOptions(shell.WithBaseDelay(time.Millisecond)))

	// act
	result, err := handler.Handle(ctx, requestborrow.BuildCommand(uuid.New(), s.copyID, s.memberID, time.Now()))

	// assert
	assert.ErrorIs(t, err, requestborrow.ErrCopyNotAvailable)
	assert.Equal(t, 2, result.RetryAttempts)
	assert.Equal(t, shell.ErrorTypeOther, result.LastErrorType, "the last attempt was rejected")
	assert.False(t, result.RetriesExhausted)
}
