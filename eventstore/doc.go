// Package eventstore provides the storage abstractions behind the circulation service:
// an append-only log of events that is read and guarded through "dynamic event streams".
//
// A dynamic event stream is not a physical stream. It is whatever subset of the log a Filter
// selects, e.g. "all events about copy X or member Y". Command handlers query that subset,
// decide, and append with the highest sequence number they saw. The engine rejects the append
// with ErrConcurrencyConflict if anything matching the same filter was written in between.
//
// Filters combine:
//   - event types
//   - JSON payload predicates (top-level string fields)
//   - an occurred-at time range
//
// Usage:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(core.CopyRegisteredEventType, core.BorrowRequestedEventType).
//		AndAnyPredicateOf(eventstore.P("CopyID", copyID.String())).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	if err != nil {
//		return err
//	}
//
//	err = store.Append(ctx, filter, maxSeq, newEvent)
//
// Engines live in subpackages: postgresengine for PostgreSQL and memoryengine for
// in-process use. The observability interfaces declared here carry no third-party imports;
// oteladapters implements them with OpenTelemetry.
package eventstore
