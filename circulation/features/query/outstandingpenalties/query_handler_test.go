package outstandingpenalties_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/query/outstandingpenalties"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore/memoryengine"
	"github.com/shelfwise/circulation/testutil/given"
)

func Test_QueryHandler_FiltersByMember(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewEventStore()
	memberID := given.UniqueID(t)
	_, mine := givenReturn(memberID, 5)
	_, theirs := givenReturn(given.UniqueID(t), 5)
	given.EventsWereAppended(t, ctx, store, mine, theirs)

	// act
	result, err := outstandingpenalties.NewQueryHandler(store).Handle(ctx, outstandingpenalties.BuildQuery(memberID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, uint(1), result.SequenceNumber)
}

func Test_QueryHandler_ListsUnpaidReturnsInReturnOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewEventStore()
	memberID := given.UniqueID(t)
	dueAt := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	loanOf := func() core.LoanRef {
		return core.LoanRef{LoanID: given.UniqueID(t), CopyID: given.UniqueID(t), ItemID: given.UniqueID(t), MemberID: memberID}
	}
	requestedFirst, requestedSecond, paid := loanOf(), loanOf(), loanOf()

	given.EventsWereAppended(t, ctx, store,
		core.BuildCopyReturned(requestedFirst, rules.ConditionGood, dueAt, 4, decimal.NewFromInt(20),
			rules.SettlementPending, dueAt.AddDate(0, 0, 4)),
		core.BuildCopyReturned(requestedSecond, rules.ConditionDamaged, dueAt, 1, decimal.NewFromInt(55),
			rules.SettlementPending, dueAt.AddDate(0, 0, 1)),
		core.BuildCopyReturned(paid, rules.ConditionGood, dueAt, 2, decimal.NewFromInt(10),
			rules.SettlementPending, dueAt.AddDate(0, 0, 2)),
		core.BuildPenaltyPaid(paid, decimal.NewFromInt(10), "RCPT-3", dueAt.AddDate(0, 0, 2)),
	)

	// act
	result, err := outstandingpenalties.NewQueryHandler(store).Handle(ctx, outstandingpenalties.BuildQueryForAllMembers())

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, requestedSecond.LoanID.String(), result.Penalties[0].LoanID)
	assert.Equal(t, requestedFirst.LoanID.String(), result.Penalties[1].LoanID)
	assert.True(t, decimal.NewFromInt(75).Equal(result.Total))
	assert.Equal(t, uint(4), result.SequenceNumber)
}
