package registermember

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

var (
	ErrCategoryUnspecified = errors.New("member category is unspecified")
	ErrEmptyName           = errors.New("member name is empty")
)

func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	state := core.Replay(history)

	if _, ok := state.Member(command.MemberID.String()); ok {
		return core.IdempotentDecision()
	}

	if !command.Category.IsSpecified() {
		return reject(command, ErrCategoryUnspecified)
	}

	if strings.TrimSpace(command.Name) == "" {
		return reject(command, ErrEmptyName)
	}

	quota := rules.DefaultBookingQuota(command.Category)
	if command.BookingQuota != nil {
		quota = *command.BookingQuota
	}

	return core.SuccessDecision(
		core.BuildMemberRegistered(
			command.MemberID,
			strings.TrimSpace(command.Name),
			command.Category,
			quota,
			command.OccurredAt,
		),
	)
}

func reject(command Command, reason error) core.DecisionResult {
	return core.RejectionDecision(
		core.BuildRegisteringMemberFailed(command.MemberID.String(), reason.Error(), command.OccurredAt),
		reason,
	)
}

func BuildEventFilter(memberID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.MemberRegisteredEventType).
		AndAnyPredicateOf(eventstore.P(core.MemberIDKey, memberID.String())).
		Finalize()
}
