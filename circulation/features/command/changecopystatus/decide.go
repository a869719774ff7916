package changecopystatus

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

var (
	ErrCopyNotFound      = errors.New("copy does not exist")
	ErrBorrowRequestOpen = errors.New("copy is held by a pending borrow request")
)

func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	state := core.Replay(history)

	status, err := rules.ParseCopyStatus(string(command.Status))
	if err != nil {
		return reject(command, err)
	}

	copyState, ok := state.Copy(command.CopyID.String())
	if !ok || copyState.Removed {
		return reject(command, ErrCopyNotFound)
	}

	if copyState.Status == status {
		return core.IdempotentDecision()
	}

	if _, pending := state.PendingLoanFor(copyState.CopyID); pending {
		return reject(command, ErrBorrowRequestOpen)
	}

	if err := rules.ValidateDirectStatusChange(copyState.Status, status); err != nil {
		return reject(command, err)
	}

	itemID, err := copyState.ItemUUID()
	if err != nil {
		return reject(command, err)
	}

	return core.SuccessDecision(
		core.BuildCopyStatusChanged(command.CopyID, itemID, copyState.Status, status, command.OccurredAt),
	)
}

func reject(command Command, reason error) core.DecisionResult {
	return core.RejectionDecision(
		core.BuildChangingCopyStatusFailed(command.CopyID.String(), reason.Error(), command.OccurredAt),
		reason,
	)
}

func BuildEventFilter(copyID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.CopyRegisteredEventType,
			core.CopyStatusChangedEventType,
			core.CopyRemovedEventType,
			core.BorrowRequestedEventType,
			core.BorrowApprovedEventType,
			core.BorrowDisapprovedEventType,
			core.CopyReturnedEventType,
			core.PenaltyPaidEventType,
		).
		AndAnyPredicateOf(eventstore.P(core.CopyIDKey, copyID.String())).
		Finalize()
}
