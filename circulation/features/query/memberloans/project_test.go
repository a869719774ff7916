package memberloans_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/query/memberloans"
	"github.com/shelfwise/circulation/circulation/rules"
)

//nolint:funlen
func Test_Project_OpenLoansAndReturns(t *testing.T) {
	// arrange
	memberID, itemID := uuid.New(), uuid.New()
	requestedAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	asOf := time.Date(2025, 4, 8, 12, 0, 0, 0, time.UTC)

	soon := core.LoanRef{LoanID: uuid.New(), CopyID: uuid.New(), ItemID: itemID, MemberID: memberID}
	late := core.LoanRef{LoanID: uuid.New(), CopyID: uuid.New(), ItemID: itemID, MemberID: memberID}
	returned := core.LoanRef{LoanID: uuid.New(), CopyID: uuid.New(), ItemID: itemID, MemberID: memberID}
	rejected := core.LoanRef{LoanID: uuid.New(), CopyID: uuid.New(), ItemID: itemID, MemberID: memberID}

	dueSoon := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	dueLate := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)

	history := core.DomainEvents{
		core.BuildMemberRegistered(memberID, "Frances", rules.CategoryFaculty, 5, requestedAt),
		core.BuildBorrowRequested(soon.LoanID, soon.CopyID, itemID, memberID, rules.CategoryFaculty, dueSoon, requestedAt),
		core.BuildBorrowRequested(late.LoanID, late.CopyID, itemID, memberID, rules.CategoryFaculty, dueLate, requestedAt),
		core.BuildBorrowApproved(late.LoanID, late.CopyID, itemID, memberID, dueLate, requestedAt),
		core.BuildBorrowRequested(rejected.LoanID, rejected.CopyID, itemID, memberID, rules.CategoryFaculty, dueSoon, requestedAt),
		core.BuildBorrowDisapproved(rejected.LoanID, rejected.CopyID, itemID, memberID, "", requestedAt),
		core.BuildCopyReturned(returned, rules.ConditionDamaged, dueLate, 2, decimal.NewFromInt(60), rules.SettlementPending, requestedAt),
	}

	// act
	result := memberloans.Project(history, memberloans.BuildQuery(memberID, asOf), 7)

	// assert
	assert.Equal(t, "Frances", result.Name)
	assert.Equal(t, uint(7), result.GetSequenceNumber())
	require.Len(t, result.OpenLoans, 2)

	overdue := result.OpenLoans[0]
	assert.Equal(t, late.LoanID.String(), overdue.LoanID)
	assert.Equal(t, rules.ApprovalApproved, overdue.Approval)
	assert.Equal(t, 5, overdue.DaysOverdue)
	assert.Equal(t, -5, overdue.DaysRemaining)
	assert.Equal(t, rules.SeverityMedium, overdue.Severity)

	pending := result.OpenLoans[1]
	assert.Equal(t, soon.LoanID.String(), pending.LoanID)
	assert.Equal(t, rules.ApprovalPending, pending.Approval)
	assert.Equal(t, 0, pending.DaysOverdue)
	assert.Equal(t, 2, pending.DaysRemaining)
	assert.Equal(t, rules.SeverityNone, pending.Severity)

	require.Len(t, result.Returns, 1)
	assert.Equal(t, rules.SettlementPending, result.Returns[0].Settlement)
	assert.True(t, decimal.NewFromInt(60).Equal(result.AmountOwed))
}

func Test_Project_UnknownMember_IsEmpty(t *testing.T) {
	result := memberloans.Project(nil, memberloans.BuildQuery(uuid.New(), time.Now()), 0)

	assert.Empty(t, result.OpenLoans)
	assert.Empty(t, result.Returns)
	assert.True(t, result.AmountOwed.IsZero())
}

func Test_Project_ReturnsAreInReturnOrder(t *testing.T) {
	// arrange
	memberID, itemID := uuid.New(), uuid.New()
	requestedAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	dueAt := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	first := core.LoanRef{LoanID: uuid.New(), CopyID: uuid.New(), ItemID: itemID, MemberID: memberID}
	second := core.LoanRef{LoanID: uuid.New(), CopyID: uuid.New(), ItemID: itemID, MemberID: memberID}

	history := core.DomainEvents{
		core.BuildBorrowRequested(first.LoanID, first.CopyID, itemID, memberID, rules.CategoryStudent, dueAt, requestedAt),
		core.BuildBorrowRequested(second.LoanID, second.CopyID, itemID, memberID, rules.CategoryStudent, dueAt, requestedAt),
		core.BuildCopyReturned(second, rules.ConditionGood, dueAt, 0, decimal.Zero, rules.SettlementReturned, requestedAt.Add(24*time.Hour)),
		core.BuildCopyReturned(first, rules.ConditionGood, dueAt, 0, decimal.Zero, rules.SettlementReturned, requestedAt.Add(48*time.Hour)),
	}

	// act
	result := memberloans.Project(history, memberloans.BuildQuery(memberID, requestedAt), 4)

	// assert
	require.Len(t, result.Returns, 2)
	assert.Equal(t, second.LoanID.String(), result.Returns[0].LoanID)
	assert.Equal(t, first.LoanID.String(), result.Returns[1].LoanID)
}
