package eventstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shelfwise/circulation/eventstore"
)

//nolint:funlen
func Test_FilterBuilder_ValidCombinations(t *testing.T) {
	from := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	until := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		build    func() eventstore.Filter
		validate func(t *testing.T, f eventstore.Filter)
	}{
		{
			name: "matching_any_event_creates_empty_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().MatchingAnyEvent().Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Empty(t, f.Items())
				assert.True(t, f.OccurredFrom().IsZero())
				assert.True(t, f.OccurredUntil().IsZero())
			},
		},
		{
			name: "matching_any_event_in_time_range",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					MatchingAnyEvent().
					OccurredFrom(from).
					OccurredUntil(until).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Empty(t, f.Items())
				assert.Equal(t, from, f.OccurredFrom())
				assert.Equal(t, until, f.OccurredUntil())
			},
		},
		{
			name: "event_types_are_sorted_and_deduplicated",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("CopyReturned", "", "BorrowRequested", "CopyReturned").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BorrowRequested", "CopyReturned"}, f.Items()[0].EventTypes())
				assert.Empty(t, f.Items()[0].Predicates())
			},
		},
		{
			name: "partial_predicates_are_dropped",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyPredicateOf(
						eventstore.P("MemberID", "m-1"),
						eventstore.P("", "x"),
						eventstore.P("CopyID", ""),
						eventstore.P("CopyID", "c-1"),
						eventstore.P("MemberID", "m-1"),
					).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(
					t,
					[]eventstore.FilterPredicate{eventstore.P("CopyID", "c-1"), eventstore.P("MemberID", "m-1")},
					f.Items()[0].Predicates(),
				)
				assert.False(t, f.Items()[0].AllPredicatesMustMatch())
			},
		},
		{
			name: "event_types_and_all_predicates",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BorrowRequested").
					AndAllPredicatesOf(eventstore.P("MemberID", "m-1"), eventstore.P("CopyID", "c-1")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BorrowRequested"}, f.Items()[0].EventTypes())
				assert.Len(t, f.Items()[0].Predicates(), 2)
				assert.True(t, f.Items()[0].AllPredicatesMustMatch())
			},
		},
		{
			name: "predicates_then_event_types",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyPredicateOf(eventstore.P("LoanID", "l-1")).
					AndAnyEventTypeOf("CopyReturned", "PenaltyPaid").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"CopyReturned", "PenaltyPaid"}, f.Items()[0].EventTypes())
				assert.Equal(t, []eventstore.FilterPredicate{eventstore.P("LoanID", "l-1")}, f.Items()[0].Predicates())
			},
		},
		{
			name: "multiple_items_are_kept_in_order",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("CatalogItemAdded").
					AndAnyPredicateOf(eventstore.P("ItemID", "i-1")).
					OrMatching().
					AnyEventTypeOf("CopyRegistered", "CopyRemoved").
					AndAnyPredicateOf(eventstore.P("AccessionNumber", "000001")).
					OccurredUntil(until).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 2)
				assert.Equal(t, []string{"CatalogItemAdded"}, f.Items()[0].EventTypes())
				assert.Equal(t, []string{"CopyRegistered", "CopyRemoved"}, f.Items()[1].EventTypes())
				assert.Equal(t, until, f.OccurredUntil())
				assert.True(t, f.OccurredFrom().IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.build())
		})
	}
}

func Test_FilterBuilder_IsNotMutatedByBranching(t *testing.T) {
	// arrange
	base := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("MemberRegistered").
		OrMatching()

	// act
	first := base.AnyEventTypeOf("CopyRegistered").Finalize()
	second := base.AnyEventTypeOf("CopyRemoved").Finalize()

	// assert
	assert.Len(t, first.Items(), 2)
	assert.Len(t, second.Items(), 2)
	assert.Equal(t, []string{"CopyRegistered"}, first.Items()[1].EventTypes())
	assert.Equal(t, []string{"CopyRemoved"}, second.Items()[1].EventTypes())
}
