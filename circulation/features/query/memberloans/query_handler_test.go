package memberloans_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/query/memberloans"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore/memoryengine"
	"github.com/shelfwise/circulation/testutil/given"
)

func Test_QueryHandler_IgnoresOtherMembers(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewEventStore()
	now := time.Now()
	memberID, otherMemberID, itemID := given.UniqueID(t), given.UniqueID(t), given.UniqueID(t)
	due := rules.ComputeDueDate(rules.CategoryStudent, now)

	given.EventsWereAppended(t, ctx, store,
		core.BuildMemberRegistered(memberID, "Niklaus", rules.CategoryStudent, 3, now),
		core.BuildMemberRegistered(otherMemberID, "Tony", rules.CategoryStudent, 3, now),
		core.BuildBorrowRequested(given.UniqueID(t), given.UniqueID(t), itemID, memberID, rules.CategoryStudent, due, now),
		core.BuildBorrowRequested(given.UniqueID(t), given.UniqueID(t), itemID, otherMemberID, rules.CategoryStudent, due, now),
	)

	// act
	result, err := memberloans.NewQueryHandler(store).Handle(ctx, memberloans.BuildQuery(memberID, now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Niklaus", result.Name)
	assert.Len(t, result.OpenLoans, 1)
	assert.Equal(t, uint(3), result.SequenceNumber)
}
