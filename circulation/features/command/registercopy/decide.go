package registercopy

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

var (
	ErrItemNotInCatalog      = errors.New("catalog item does not exist")
	ErrAccessionNumberInUse  = errors.New("accession number already in use")
	ErrCopyAlreadyRegistered = errors.New("copy is already registered with another accession number")
)

// Decide shelves a new copy of a catalog item under a unique accession number.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	state := core.Replay(history)

	if existing, ok := state.Copy(command.CopyID.String()); ok && !existing.Removed {
		if existing.AccessionNumber == command.AccessionNumber {
			return core.IdempotentDecision()
		}

		return reject(command, ErrCopyAlreadyRegistered)
	}

	if err := rules.ValidateAccessionNumber(command.AccessionNumber); err != nil {
		return reject(command, err)
	}

	if _, ok := state.Items[command.ItemID.String()]; !ok {
		return reject(command, ErrItemNotInCatalog)
	}

	if _, inUse := state.CopyWithAccessionNumber(command.AccessionNumber); inUse {
		return reject(command, ErrAccessionNumberInUse)
	}

	return core.SuccessDecision(
		core.BuildCopyRegistered(
			command.CopyID,
			command.ItemID,
			command.AccessionNumber,
			command.Location,
			command.OccurredAt,
		),
	)
}

func reject(command Command, reason error) core.DecisionResult {
	return core.RejectionDecision(
		core.BuildRegisteringCopyFailed(command.CopyID.String(), reason.Error(), command.OccurredAt),
		reason,
	)
}

// BuildEventFilter selects the catalog item plus every copy that holds the accession number
// or has the CopyID.
func BuildEventFilter(copyID, itemID uuid.UUID, accessionNumber string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.CatalogItemAddedEventType).
		AndAnyPredicateOf(eventstore.P(core.ItemIDKey, itemID.String())).
		OrMatching().
		AnyEventTypeOf(core.CopyRegisteredEventType, core.CopyRemovedEventType).
		AndAnyPredicateOf(
			eventstore.P(core.CopyIDKey, copyID.String()),
			eventstore.P(core.AccessionNumberKey, accessionNumber),
		).
		Finalize()
}
