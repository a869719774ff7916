package given

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/shell"
	"github.com/shelfwise/circulation/eventstore"
)

func UniqueID(t testing.TB) uuid.UUID {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}

func ToStorable(t testing.TB, domainEvent core.DomainEvent) eventstore.StorableEvent {
	t.Helper()

	storableEvent, err := shell.StorableEventWithEmptyMetadataFrom(domainEvent)
	require.NoError(t, err, "error in arranging test data")

	return storableEvent
}

// EventsWereAppended appends the events in order, each guarded by the whole store.
func EventsWereAppended(t testing.TB, ctx context.Context, es shell.EventStore, events ...core.DomainEvent) {
	t.Helper()

	everything := eventstore.BuildEventFilter().MatchingAnyEvent().Finalize()

	for _, event := range events {
		_, maxSequenceNumber, err := es.Query(ctx, everything)
		require.NoError(t, err, "error in arranging test data")

		err = es.Append(ctx, everything, maxSequenceNumber, ToStorable(t, event))
		require.NoError(t, err, "error in arranging test data")
	}
}
