package registermember_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/command/registermember"
	"github.com/shelfwise/circulation/circulation/rules"
)

func Test_Decide_Success_UsesDefaultQuotaOfCategory(t *testing.T) {
	// arrange
	memberID := uuid.New()
	command := registermember.BuildCommand(memberID, " Ada Lovelace ", rules.CategoryFaculty, time.Now())

	// act
	result := registermember.Decide(nil, command)

	// assert
	require.Equal(t, "success", result.Outcome)
	registered, ok := result.Event.(core.MemberRegistered)
	require.True(t, ok)
	assert.Equal(t, memberID.String(), registered.MemberID)
	assert.Equal(t, "Ada Lovelace", registered.Name)
	assert.Equal(t, rules.CategoryFaculty, registered.Category)
	assert.Equal(t, uint(5), registered.BookingQuota)
}

func Test_Decide_Success_KeepsExplicitQuota(t *testing.T) {
	command := registermember.BuildCommandWithQuota(uuid.New(), "Alan", rules.CategoryStudent, 1, time.Now())

	result := registermember.Decide(nil, command)

	require.NoError(t, result.HasError())
	assert.Equal(t, uint(1), result.Event.(core.MemberRegistered).BookingQuota)
}

func Test_Decide_Success_KeepsZeroQuota(t *testing.T) {
	command := registermember.BuildCommandWithQuota(uuid.New(), "Alan", rules.CategoryFaculty, 0, time.Now())

	result := registermember.Decide(nil, command)

	require.NoError(t, result.HasError())
	assert.Equal(t, uint(0), result.Event.(core.MemberRegistered).BookingQuota)
}

func Test_Decide_Idempotent_WhenAlreadyRegistered(t *testing.T) {
	// arrange
	memberID := uuid.New()
	history := core.DomainEvents{
		core.BuildMemberRegistered(memberID, "Ada", rules.CategoryFaculty, 5, time.Now().Add(-time.Hour)),
	}
	command := registermember.BuildCommand(memberID, "Ada", rules.CategoryStudent, time.Now())

	// act
	result := registermember.Decide(history, command)

	// assert
	assert.True(t, result.IsIdempotent())
	assert.Nil(t, result.Event)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	tests := []struct {
		name     string
		command  registermember.Command
		expected error
	}{
		{
			name:     "unspecified category",
			command:  registermember.BuildCommand(uuid.New(), "Ada", rules.CategoryUnspecified, time.Now()),
			expected: registermember.ErrCategoryUnspecified,
		},
		{
			name:     "blank name",
			command:  registermember.BuildCommand(uuid.New(), "  ", rules.CategoryStudent, time.Now()),
			expected: registermember.ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			result := registermember.Decide(nil, tt.command)

			// assert
			assert.ErrorIs(t, result.HasError(), tt.expected)
			assert.ErrorIs(t, result.HasError(), core.ErrCommandRejected)
			failed, ok := result.Event.(core.RegisteringMemberFailed)
			require.True(t, ok)
			assert.Equal(t, tt.command.MemberID.String(), failed.EntityID)
			assert.Equal(t, tt.expected.Error(), failed.FailureInfo)
		})
	}
}
