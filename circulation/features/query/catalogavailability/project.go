package catalogavailability

import (
	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/eventstore"
)

// Project lists the catalog items in the order they were added. Removed copies are not listed,
// and items without copies are reported as "No Copies".
func Project(history core.DomainEvents, query Query, maxSequenceNumber eventstore.MaxSequenceNumberUint) CatalogAvailability {
	state := core.Replay(history)
	items := make([]ItemAvailability, 0)

	for _, item := range state.CatalogItems() {
		if query.ItemID != uuid.Nil && item.ItemID != query.ItemID.String() {
			continue
		}

		copies := make([]rules.Copy, 0)
		for _, c := range state.CopiesOf(item.ItemID) {
			copies = append(copies, c.View())
		}

		items = append(items, ItemAvailability{
			ItemID:          item.ItemID,
			Kind:            item.Kind,
			Title:           item.Title,
			Authors:         item.Authors,
			Publisher:       item.Publisher,
			PublicationYear: item.PublicationYear,
			Copies:          copies,
			Availability:    rules.ComputeStatus(copies),
		})
	}

	return CatalogAvailability{
		Items:          items,
		Count:          len(items),
		SequenceNumber: maxSequenceNumber,
	}
}

func BuildEventFilter(itemID uuid.UUID) eventstore.Filter {
	builder := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.CatalogItemAddedEventType,
			core.CopyRegisteredEventType,
			core.CopyStatusChangedEventType,
			core.CopyRemovedEventType,
			core.BorrowRequestedEventType,
			core.BorrowApprovedEventType,
			core.BorrowDisapprovedEventType,
			core.CopyReturnedEventType,
			core.PenaltyPaidEventType,
		)

	if itemID == uuid.Nil {
		return builder.Finalize()
	}

	return builder.AndAnyPredicateOf(eventstore.P(core.ItemIDKey, itemID.String())).Finalize()
}
