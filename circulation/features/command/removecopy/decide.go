package removecopy

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

var ErrCopyInUse = errors.New("copy is reserved, on loan or awaiting payment")

// Decide removes a copy from the shelf. Removing an unknown or removed copy is idempotent.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	state := core.Replay(history)

	copyState, ok := state.Copy(command.CopyID.String())
	if !ok || copyState.Removed {
		return core.IdempotentDecision()
	}

	switch copyState.Status {
	case rules.CopyBorrowed, rules.CopyReserved, rules.CopyPending:
		return reject(command, ErrCopyInUse)
	}

	itemID, err := copyState.ItemUUID()
	if err != nil {
		return reject(command, err)
	}

	return core.SuccessDecision(
		core.BuildCopyRemoved(command.CopyID, itemID, copyState.AccessionNumber, command.OccurredAt),
	)
}

func reject(command Command, reason error) core.DecisionResult {
	return core.RejectionDecision(
		core.BuildRemovingCopyFailed(command.CopyID.String(), reason.Error(), command.OccurredAt),
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
