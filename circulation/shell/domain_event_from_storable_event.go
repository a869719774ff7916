package shell

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/eventstore"
)

var (
	ErrMappingToDomainEventFailed           = errors.New("mapping to domain event failed")
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

type unmarshalFunc func(payloadJSON []byte) (core.DomainEvent, error)

var unmarshalers = map[string]unmarshalFunc{
	core.MemberRegisteredEventType:  unmarshalAs[core.MemberRegistered],
	core.MemberDeactivatedEventType: unmarshalAs[core.MemberDeactivated],
	core.CatalogItemAddedEventType:  unmarshalAs[core.CatalogItemAdded],
	core.CopyRegisteredEventType:    unmarshalAs[core.CopyRegistered],
	core.CopyStatusChangedEventType: unmarshalAs[core.CopyStatusChanged],
	core.CopyRemovedEventType:       unmarshalAs[core.CopyRemoved],
	core.BorrowRequestedEventType:   unmarshalAs[core.BorrowRequested],
	core.BorrowApprovedEventType:    unmarshalAs[core.BorrowApproved],
	core.BorrowDisapprovedEventType: unmarshalAs[core.BorrowDisapproved],
	core.CopyReturnedEventType:      unmarshalAs[core.CopyReturned],
	core.PenaltyPaidEventType:       unmarshalAs[core.PenaltyPaid],

	core.RegisteringMemberFailedEventType:      unmarshalAs[core.RegisteringMemberFailed],
	core.DeactivatingMemberFailedEventType:     unmarshalAs[core.DeactivatingMemberFailed],
	core.AddingCatalogItemFailedEventType:      unmarshalAs[core.AddingCatalogItemFailed],
	core.RegisteringCopyFailedEventType:        unmarshalAs[core.RegisteringCopyFailed],
	core.ChangingCopyStatusFailedEventType:     unmarshalAs[core.ChangingCopyStatusFailed],
	core.RemovingCopyFailedEventType:           unmarshalAs[core.RemovingCopyFailed],
	core.RequestingBorrowFailedEventType:       unmarshalAs[core.RequestingBorrowFailed],
	core.ReviewingBorrowRequestFailedEventType: unmarshalAs[core.ReviewingBorrowRequestFailed],
	core.ReturningCopyFailedEventType:          unmarshalAs[core.ReturningCopyFailed],
	core.PayingPenaltyFailedEventType:          unmarshalAs[core.PayingPenaltyFailed],
}

// DomainEventsFrom converts stored events in order.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts one stored event into its concrete domain event type.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	unmarshal, ok := unmarshalers[storableEvent.EventType]
	if !ok {
		return nil, errors.Join(
			ErrMappingToDomainEventFailed,
			fmt.Errorf("%w: %q", ErrMappingToDomainEventUnknownEventType, storableEvent.EventType),
		)
	}

	return unmarshal(storableEvent.PayloadJSON)
}

func unmarshalAs[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event E
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(payloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
