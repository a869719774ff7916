package eventstore

import (
	"cmp"
	"slices"
	"time"
)

type FilterEventTypeString = string
type FilterKeyString = string
type FilterValString = string

// Filter selects a dynamic event stream. Its FilterItem(s) are OR-ed, the time range is AND-ed
// with all of them. An empty Filter matches every event.
type Filter struct {
	items         []FilterItem
	occurredFrom  time.Time
	occurredUntil time.Time
}

func (f Filter) Items() []FilterItem {
	return f.items
}

// OccurredFrom is the inclusive lower bound, zero if unbounded.
func (f Filter) OccurredFrom() time.Time {
	return f.occurredFrom
}

// OccurredUntil is the inclusive upper bound, zero if unbounded.
func (f Filter) OccurredUntil() time.Time {
	return f.occurredUntil
}

// FilterItem matches when the event type is one of EventTypes (or EventTypes is empty)
// and the predicates match (any or all of them, or Predicates is empty).
type FilterItem struct {
	eventTypes             []FilterEventTypeString
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

func (fi FilterItem) EventTypes() []FilterEventTypeString {
	return fi.eventTypes
}

func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.allPredicatesMustMatch
}

// FilterPredicate compares a top-level string field of the JSON payload.
type FilterPredicate struct {
	key FilterKeyString
	val FilterValString
}

// P builds a FilterPredicate.
func P(key FilterKeyString, val FilterValString) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

func (fp FilterPredicate) Key() FilterKeyString {
	return fp.key
}

func (fp FilterPredicate) Val() FilterValString {
	return fp.val
}

// FilterBuilder only allows combinations that are useful for event-sourced workflows:
//
//   - empty filter
//   - (eventType OR eventType...)
//   - (predicate OR predicate...) or (predicate AND predicate...)
//   - ((eventType OR eventType...) AND (predicate OR/AND predicate...))
//   - several of the above OR-ed together, via OrMatching
//
// Every filter can additionally be restricted to an occurred-at time range.
type FilterBuilder interface {
	// Matching starts the first FilterItem.
	Matching() EmptyFilterItemBuilder

	// MatchingAnyEvent returns a filter without items, optionally restricted in time.
	MatchingAnyEvent() TimeBoundableFilterBuilder
}

type EmptyFilterItemBuilder interface {
	AnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) FilterItemBuilderLackingPredicates
	AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
	AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
}

type FilterItemBuilderLackingPredicates interface {
	AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	CompletedFilterItemBuilder
}

type FilterItemBuilderLackingEventTypes interface {
	AndAnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) CompletedFilterItemBuilder
	CompletedFilterItemBuilder
}

type CompletedFilterItemBuilder interface {
	// OrMatching closes the current FilterItem and starts the next one.
	OrMatching() EmptyFilterItemBuilder
	TimeBoundableFilterBuilder
}

type TimeBoundableFilterBuilder interface {
	OccurredFrom(from time.Time) TimeBoundableFilterBuilder
	OccurredUntil(until time.Time) TimeBoundableFilterBuilder

	// Finalize returns the Filter.
	Finalize() Filter
}

type filterBuilder struct {
	filter      Filter
	currentItem FilterItem
	hasItem     bool
}

// BuildEventFilter starts a FilterBuilder.
func BuildEventFilter() FilterBuilder {
	return filterBuilder{}
}

func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentItem = FilterItem{}
	fb.hasItem = true

	return fb
}

func (fb filterBuilder) MatchingAnyEvent() TimeBoundableFilterBuilder {
	fb.hasItem = false

	return fb
}

// AnyEventTypeOf adds event types to the current item. Empty values are dropped,
// the rest is sorted and deduplicated.
func (fb filterBuilder) AnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) FilterItemBuilderLackingPredicates {

	fb.currentItem.eventTypes = sanitized(
		append(slices.Clone(fb.currentItem.eventTypes), append([]FilterEventTypeString{eventType}, eventTypes...)...),
		func(e FilterEventTypeString) bool { return e == "" },
		cmp.Compare[FilterEventTypeString],
	)

	return fb
}

func (fb filterBuilder) AndAnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) CompletedFilterItemBuilder {

	return fb.AnyEventTypeOf(eventType, eventTypes...)
}

// AnyPredicateOf adds predicates of which at least one must match. Partial predicates
// (empty key or value) are dropped, the rest is sorted and deduplicated.
func (fb filterBuilder) AnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingEventTypes {

	fb.currentItem.predicates = sanitizedPredicates(fb.currentItem.predicates, predicate, predicates...)

	return fb
}

func (fb filterBuilder) AndAnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AnyPredicateOf(predicate, predicates...)
}

// AllPredicatesOf adds predicates which must all match.
func (fb filterBuilder) AllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingEventTypes {

	fb.currentItem.allPredicatesMustMatch = true
	fb.currentItem.predicates = sanitizedPredicates(fb.currentItem.predicates, predicate, predicates...)

	return fb
}

func (fb filterBuilder) AndAllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AllPredicatesOf(predicate, predicates...)
}

func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentItem)
	fb.currentItem = FilterItem{}

	return fb
}

func (fb filterBuilder) OccurredFrom(from time.Time) TimeBoundableFilterBuilder {
	fb.filter.occurredFrom = from

	return fb
}

func (fb filterBuilder) OccurredUntil(until time.Time) TimeBoundableFilterBuilder {
	fb.filter.occurredUntil = until

	return fb
}

func (fb filterBuilder) Finalize() Filter {
	if fb.hasItem {
		fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentItem)
	}

	return fb.filter
}

func sanitizedPredicates(existing []FilterPredicate, predicate FilterPredicate, predicates ...FilterPredicate) []FilterPredicate {
	return sanitized(
		append(slices.Clone(existing), append([]FilterPredicate{predicate}, predicates...)...),
		func(p FilterPredicate) bool { return p.key == "" || p.val == "" },
		func(a, b FilterPredicate) int {
			return cmp.Or(cmp.Compare(a.key, b.key), cmp.Compare(a.val, b.val))
		},
	)
}

func sanitized[T comparable](values []T, isEmpty func(T) bool, compare func(a, b T) int) []T {
	values = slices.DeleteFunc(values, isEmpty)
	slices.SortFunc(values, compare)
	values = slices.Compact(values)

	return slices.Clip(values)
}
