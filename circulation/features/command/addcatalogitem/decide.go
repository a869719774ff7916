package addcatalogitem

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/eventstore"
)

var (
	ErrEmptyTitle      = errors.New("title is empty")
	ErrUnknownItemKind = errors.New("item kind must be Book, Journal or Thesis")
)

// Decide adds a title to the catalog. Adding the same ItemID again is idempotent.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	state := core.Replay(history)

	if _, ok := state.Items[command.ItemID.String()]; ok {
		return core.IdempotentDecision()
	}

	if strings.TrimSpace(command.Title) == "" {
		return reject(command, ErrEmptyTitle)
	}

	switch command.Kind {
	case core.ItemBook, core.ItemJournal, core.ItemThesis:
	default:
		return reject(command, ErrUnknownItemKind)
	}

	return core.SuccessDecision(
		core.BuildCatalogItemAdded(
			command.ItemID,
			command.Kind,
			strings.TrimSpace(command.Title),
			command.Authors,
			command.Publisher,
			command.PublicationYear,
			command.OccurredAt,
		),
	)
}

func reject(command Command, reason error) core.DecisionResult {
	return core.RejectionDecision(
		core.BuildAddingCatalogItemFailed(command.ItemID.String(), reason.Error(), command.OccurredAt),
		reason,
	)
}

func BuildEventFilter(itemID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.CatalogItemAddedEventType).
		AndAnyPredicateOf(eventstore.P(core.ItemIDKey, itemID.String())).
		Finalize()
}
