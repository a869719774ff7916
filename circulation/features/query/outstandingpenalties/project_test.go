package outstandingpenalties_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/query/outstandingpenalties"
	"github.com/shelfwise/circulation/circulation/rules"
)

func givenReturn(memberID uuid.UUID, amount int64) (core.LoanRef, core.DomainEvent) {
	ref := core.LoanRef{LoanID: uuid.New(), CopyID: uuid.New(), ItemID: uuid.New(), MemberID: memberID}
	penalty := decimal.NewFromInt(amount)
	settlement := rules.ClassifyReturnStatus(penalty, rules.ConditionGood)

	return ref, core.BuildCopyReturned(ref, rules.ConditionGood, time.Now(), int(amount/5), penalty, settlement, time.Now())
}

func Test_Project_SumsUnpaidReturns(t *testing.T) {
	// arrange
	memberID, otherMemberID := uuid.New(), uuid.New()
	_, unpaid := givenReturn(memberID, 15)
	paidRef, paid := givenReturn(memberID, 10)
	_, nothingOwed := givenReturn(memberID, 0)
	_, otherMember := givenReturn(otherMemberID, 25)

	history := core.DomainEvents{
		unpaid,
		paid,
		core.BuildPenaltyPaid(paidRef, decimal.NewFromInt(10), "RCPT", time.Now()),
		nothingOwed,
		otherMember,
	}

	// act
	forMember := outstandingpenalties.Project(history, outstandingpenalties.BuildQuery(memberID), 5)
	forAll := outstandingpenalties.Project(history, outstandingpenalties.BuildQueryForAllMembers(), 5)

	// assert
	require.Equal(t, 1, forMember.Count)
	assert.True(t, decimal.NewFromInt(15).Equal(forMember.Total))
	assert.Equal(t, memberID.String(), forMember.Penalties[0].MemberID)

	assert.Equal(t, 2, forAll.Count)
	assert.True(t, decimal.NewFromInt(40).Equal(forAll.Total))
}
