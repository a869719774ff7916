package addcatalogitem_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/command/addcatalogitem"
	"github.com/shelfwise/circulation/circulation/shell"
	"github.com/shelfwise/circulation/eventstore/memoryengine"
	"github.com/shelfwise/circulation/testutil/given"
)

func Test_CommandHandler_Success_ThenIdempotent(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewEventStore()
	itemID := given.UniqueID(t)
	handler := addcatalogitem.NewCommandHandler(store)
	command := addcatalogitem.BuildCommand(itemID, core.ItemBook, " The C Programming Language ",
		[]string{"Kernighan", "Ritchie"}, "Prentice Hall", 1978, time.Now())

	// act
	first, firstErr := handler.Handle(ctx, command)
	second, secondErr := handler.Handle(ctx, command)

	// assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.False(t, first.Idempotent)
	assert.True(t, second.Idempotent)

	history, _, err := shell.QueryHistory(ctx, store, addcatalogitem.BuildEventFilter(itemID))
	require.NoError(t, err)
	require.Len(t, history, 1)
	added, ok := history[0].(core.CatalogItemAdded)
	require.True(t, ok)
	assert.Equal(t, "The C Programming Language", added.Title)
	assert.Equal(t, []string{"Kernighan", "Ritchie"}, added.Authors)
}

func Test_CommandHandler_OtherItems_DoNotMakeItIdempotent(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewEventStore()
	given.EventsWereAppended(t, ctx, store,
		core.BuildCatalogItemAdded(given.UniqueID(t), core.ItemJournal, "CACM", nil, "ACM", 1958, time.Now()),
	)

	// act
	result, err := addcatalogitem.NewCommandHandler(store).
		Handle(ctx, addcatalogitem.BuildCommand(given.UniqueID(t), core.ItemThesis, "A Relational Model", nil, "", 1970, time.Now()))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)
	assert.Equal(t, 2, store.Len())
}

func Test_CommandHandler_UnknownKind_IsRejected(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewEventStore()

	// act
	_, err := addcatalogitem.NewCommandHandler(store).
		Handle(ctx, addcatalogitem.BuildCommand(given.UniqueID(t), core.ItemKind("Pamphlet"), "Leaflet", nil, "", 2001, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrCommandRejected)
	assert.ErrorIs(t, err, addcatalogitem.ErrUnknownItemKind)
	assert.Equal(t, 1, store.Len())
}
