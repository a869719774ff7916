package requestborrow_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/command/requestborrow"
	"github.com/shelfwise/circulation/circulation/rules"
)

type fixture struct {
	memberID uuid.UUID
	itemID   uuid.UUID
	copyID   uuid.UUID
	loanID   uuid.UUID
	at       time.Time
}

func givenFixture(t *testing.T) fixture {
	t.Helper()
	return fixture{
		memberID: uuid.New(),
		itemID:   uuid.New(),
		copyID:   uuid.New(),
		loanID:   uuid.New(),
		at:       time.Date(2024, 12, 29, 10, 0, 0, 0, time.UTC),
	}
}

func (f fixture) member(category rules.MemberCategory, quota uint) core.DomainEvent {
	return core.BuildMemberRegistered(f.memberID, "Grace", category, quota, f.at.AddDate(0, -1, 0))
}

func (f fixture) copyRegistered(copyID uuid.UUID) core.DomainEvent {
	return core.BuildCopyRegistered(copyID, f.itemID, "100001", "", f.at.AddDate(0, -1, 0))
}

func (f fixture) command() requestborrow.Command {
	return requestborrow.BuildCommand(f.loanID, f.copyID, f.memberID, f.at)
}

func Test_Decide_Success_DueDateFollowsCategory(t *testing.T) {
	// arrange
	f := givenFixture(t)
	history := core.DomainEvents{f.member(rules.CategoryFaculty, 5), f.copyRegistered(f.copyID)}

	// act
	result := requestborrow.Decide(history, f.command())

	// assert
	require.NoError(t, result.HasError())
	requested, ok := result.Event.(core.BorrowRequested)
	require.True(t, ok)
	assert.Equal(t, f.itemID.String(), requested.ItemID)
	assert.Equal(t, rules.CategoryFaculty, requested.Category)
	assert.Equal(t, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), requested.DueAt)
}

func Test_Decide_Idempotent_WhenSameLoanWasRequested(t *testing.T) {
	f := givenFixture(t)
	history := core.DomainEvents{
		f.member(rules.CategoryStudent, 3),
		f.copyRegistered(f.copyID),
		core.BuildBorrowRequested(f.loanID, f.copyID, f.itemID, f.memberID, rules.CategoryStudent, f.at.AddDate(0, 0, 2), f.at),
	}

	result := requestborrow.Decide(history, f.command())

	assert.True(t, result.IsIdempotent())
}

//nolint:funlen
func Test_Decide_BusinessErrors(t *testing.T) {
	f := givenFixture(t)
	otherCopyID := uuid.New()
	otherLoanID := uuid.New()
	due := f.at.AddDate(0, 0, 2)
	otherLoan := core.LoanRef{LoanID: otherLoanID, CopyID: otherCopyID, ItemID: f.itemID, MemberID: f.memberID}

	tests := []struct {
		name     string
		history  core.DomainEvents
		expected error
	}{
		{
			name: "loan ID used for another copy",
			history: core.DomainEvents{
				f.member(rules.CategoryStudent, 3),
				core.BuildBorrowRequested(f.loanID, otherCopyID, f.itemID, f.memberID, rules.CategoryStudent, due, f.at),
			},
			expected: requestborrow.ErrLoanIDInUse,
		},
		{
			name:     "member not registered",
			history:  core.DomainEvents{f.copyRegistered(f.copyID)},
			expected: requestborrow.ErrMemberNotRegistered,
		},
		{
			name: "member deactivated",
			history: core.DomainEvents{
				f.member(rules.CategoryStudent, 3),
				core.BuildMemberDeactivated(f.memberID, "graduated", f.at),
				f.copyRegistered(f.copyID),
			},
			expected: requestborrow.ErrMemberDeactivated,
		},
		{
			name:     "copy not registered",
			history:  core.DomainEvents{f.member(rules.CategoryStudent, 3)},
			expected: requestborrow.ErrCopyNotFound,
		},
		{
			name: "copy under repair",
			history: core.DomainEvents{
				f.member(rules.CategoryStudent, 3),
				f.copyRegistered(f.copyID),
				core.BuildCopyStatusChanged(f.copyID, f.itemID, rules.CopyAvailable, rules.CopyUnderRepair, f.at),
			},
			expected: requestborrow.ErrCopyNotAvailable,
		},
		{
			name: "booking quota reached by a pending request",
			history: core.DomainEvents{
				f.member(rules.CategoryStudent, 1),
				f.copyRegistered(f.copyID),
				core.BuildBorrowRequested(otherLoanID, otherCopyID, f.itemID, f.memberID, rules.CategoryStudent, due, f.at),
			},
			expected: requestborrow.ErrBookingQuotaReached,
		},
		{
			name: "unpaid penalty",
			history: core.DomainEvents{
				f.member(rules.CategoryStudent, 3),
				f.copyRegistered(f.copyID),
				core.BuildCopyReturned(otherLoan, rules.ConditionGood, due, 3, decimal.NewFromInt(15), rules.SettlementPending, f.at),
			},
			expected: requestborrow.ErrMemberOwesPenalty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := requestborrow.Decide(tt.history, f.command())

			assert.ErrorIs(t, result.HasError(), tt.expected)
			assert.IsType(t, core.RequestingBorrowFailed{}, result.Event)
		})
	}
}

func Test_Decide_Success_AfterDisapprovedRequestFreedQuota(t *testing.T) {
	// arrange
	f := givenFixture(t)
	otherLoanID, otherCopyID := uuid.New(), uuid.New()
	due := f.at.AddDate(0, 0, 2)
	history := core.DomainEvents{
		f.member(rules.CategoryStudent, 1),
		f.copyRegistered(f.copyID),
		core.BuildBorrowRequested(otherLoanID, otherCopyID, f.itemID, f.memberID, rules.CategoryStudent, due, f.at),
		core.BuildBorrowDisapproved(otherLoanID, otherCopyID, f.itemID, f.memberID, "reference only", f.at),
	}

	// act
	result := requestborrow.Decide(history, f.command())

	// assert
	assert.NoError(t, result.HasError())
	assert.IsType(t, core.BorrowRequested{}, result.Event)
}
