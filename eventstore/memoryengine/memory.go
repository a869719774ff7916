package memoryengine

import (
	"context"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/shelfwise/circulation/eventstore"
)

// EventStore keeps all events in a slice guarded by a RWMutex.
type EventStore struct {
	mu     sync.RWMutex
	events []storedEvent
	logger eventstore.Logger
}

type storedEvent struct {
	event   eventstore.StorableEvent
	payload map[string]any
}

// Option configures an EventStore.
type Option func(*EventStore)

// WithLogger sets a logger that receives one Debug record per Query and Append.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) {
		es.logger = logger
	}
}

func NewEventStore(options ...Option) *EventStore {
	es := &EventStore{}

	for _, option := range options {
		option(es)
	}

	return es
}

// Query returns copies of all events matching filter and the max sequence number among them.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	es.mu.RLock()
	defer es.mu.RUnlock()

	events := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for _, stored := range es.events {
		if !matches(filter, stored) {
			continue
		}

		events = append(events, cloneEvent(stored.event))
		maxSequenceNumber = stored.event.SequenceNumber
	}

	es.debug("query completed", "event_count", len(events), "max_sequence", maxSequenceNumber)

	return events, maxSequenceNumber, nil
}

// Append stores the events atomically unless something matching filter was appended
// after expectedMaxSequenceNumber.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	decoded := make([]map[string]any, 0, len(allEvents))
	for _, e := range allEvents {
		payload, err := decodePayload(e.PayloadJSON)
		if err != nil {
			return err
		}

		decoded = append(decoded, payload)
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	current := eventstore.MaxSequenceNumberUint(0)
	for _, stored := range es.events {
		if matches(filter, stored) {
			current = stored.event.SequenceNumber
		}
	}

	if current != expectedMaxSequenceNumber {
		es.debug("concurrency conflict detected", "expected_sequence", expectedMaxSequenceNumber, "actual_sequence", current)

		return eventstore.ErrConcurrencyConflict
	}

	for i, e := range allEvents {
		sequenceNumber := eventstore.MaxSequenceNumberUint(len(es.events) + 1)
		es.events = append(es.events, storedEvent{
			event:   cloneEvent(e).WithSequenceNumber(sequenceNumber),
			payload: decoded[i],
		})
	}

	es.debug("events appended", "event_count", len(allEvents))

	return nil
}

// Len returns the number of stored events.
func (es *EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(es.events)
}

func (es *EventStore) debug(msg string, args ...any) {
	if es.logger != nil {
		es.logger.Debug("memoryengine: "+msg, args...)
	}
}

func matches(filter eventstore.Filter, stored storedEvent) bool {
	occurredAt := stored.event.OccurredAt

	if from := filter.OccurredFrom(); !from.IsZero() && occurredAt.Before(from) {
		return false
	}

	if until := filter.OccurredUntil(); !until.IsZero() && occurredAt.After(until) {
		return false
	}

	if len(filter.Items()) == 0 {
		return true
	}

	for _, item := range filter.Items() {
		if matchesItem(item, stored) {
			return true
		}
	}

	return false
}

func matchesItem(item eventstore.FilterItem, stored storedEvent) bool {
	if len(item.EventTypes()) > 0 && !slices.Contains(item.EventTypes(), stored.event.EventType) {
		return false
	}

	if len(item.Predicates()) == 0 {
		return true
	}

	predicateMatches := func(p eventstore.FilterPredicate) bool {
		val, ok := stored.payload[p.Key()].(string)
		return ok && val == p.Val()
	}

	if item.AllPredicatesMustMatch() {
		for _, p := range item.Predicates() {
			if !predicateMatches(p) {
				return false
			}
		}

		return true
	}

	return slices.ContainsFunc(item.Predicates(), predicateMatches)
}

func decodePayload(payloadJSON []byte) (map[string]any, error) {
	payload := make(map[string]any)

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, eventstore.ErrInvalidPayloadJSON
	}

	return payload, nil
}

func cloneEvent(e eventstore.StorableEvent) eventstore.StorableEvent {
	e.PayloadJSON = slices.Clone(e.PayloadJSON)
	e.MetadataJSON = slices.Clone(e.MetadataJSON)

	return e
}
