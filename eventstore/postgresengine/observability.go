package postgresengine

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/shelfwise/circulation/eventstore"
)

const (
	logMsgBuildSelectQueryFailed   = "failed to build select query"
	logMsgDBQueryFailed            = "database query execution failed"
	logMsgCloseRowsFailed          = "failed to close database rows"
	logMsgScanRowFailed            = "failed to scan database row"
	logMsgBuildStorableEventFailed = "failed to build storable event from database row"
	logMsgBuildInsertQueryFailed   = "failed to build insert query"
	logMsgDBExecFailed             = "database execution failed during event append"
	logMsgRowsAffectedFailed       = "failed to get rows affected count"
	logMsgQueryCompleted           = "query completed"
	logMsgEventsAppended           = "events appended"
	logMsgConcurrencyConflict      = "concurrency conflict detected"
	logMsgSQLExecuted              = "executed sql for: "
	logMsgOperation                = "eventstore operation: "

	logAttrError            = "error"
	logAttrQuery            = "query"
	logAttrEventType        = "event_type"
	logAttrEventCount       = "event_count"
	logAttrDurationMS       = "duration_ms"
	logAttrExpectedEvents   = "expected_events"
	logAttrRowsAffected     = "rows_affected"
	logAttrExpectedSequence = "expected_sequence"

	operationQuery  = "query"
	operationAppend = "append"

	spanNameQuery  = "eventstore.query"
	spanNameAppend = "eventstore.append"

	spanAttrOperation    = "operation"
	spanAttrEventCount   = "event_count"
	spanAttrEventType    = "event_type"
	spanAttrExpectedSeq  = "expected_sequence"
	spanAttrMaxSequence  = "max_sequence"
	spanAttrRowsAffected = "rows_affected"
	spanAttrDurationMS   = "duration_ms"
	spanAttrErrorType    = "error_type"
	spanAttrConsistency  = "consistency"

	metricQueryDuration        = "eventstore_query_duration_seconds"
	metricAppendDuration       = "eventstore_append_duration_seconds"
	metricEventsQueried        = "eventstore_events_queried_total"
	metricEventsAppended       = "eventstore_events_appended_total"
	metricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"
	metricDatabaseErrors       = "eventstore_database_errors_total"

	labelOperation = "operation"
	labelStatus    = "status"
	labelErrorType = "error_type"

	statusSuccess  = "success"
	statusError    = "error"
	statusConflict = "conflict"

	errorTypeBuildQuery    = "build_query"
	errorTypeDatabaseQuery = "database_query"
	errorTypeDatabaseExec  = "database_exec"
	errorTypeRowScan       = "row_scan"
	errorTypeRowsAffected  = "rows_affected"
	errorTypeCanceled      = "context_canceled"
	errorTypeTimeout       = "context_timeout"
	errorTypeConcurrency   = "concurrency_conflict"
)

// observation bundles the span and metric bookkeeping of one Query or Append.
type observation struct {
	es        *EventStore
	ctx       context.Context
	span      eventstore.SpanContext
	operation string
}

func (es *EventStore) startQueryObservation(ctx context.Context) observation {
	return es.startObservation(ctx, operationQuery, spanNameQuery, map[string]string{
		spanAttrOperation:   operationQuery,
		spanAttrConsistency: eventstore.GetConsistencyLevel(ctx).String(),
	})
}

func (es *EventStore) startAppendObservation(
	ctx context.Context,
	events eventstore.StorableEvents,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) observation {

	return es.startObservation(ctx, operationAppend, spanNameAppend, map[string]string{
		spanAttrOperation:   operationAppend,
		spanAttrEventCount:  strconv.Itoa(len(events)),
		spanAttrEventType:   events[0].EventType,
		spanAttrExpectedSeq: strconv.FormatUint(uint64(expectedMaxSequenceNumber), 10),
	})
}

func (es *EventStore) startObservation(ctx context.Context, operation, spanName string, attrs map[string]string) observation {
	obs := observation{es: es, ctx: ctx, operation: operation}

	if es.tracingCollector != nil {
		obs.ctx, obs.span = es.tracingCollector.StartSpan(ctx, spanName, attrs)
	}

	return obs
}

func (o observation) finishSuccess(eventCount int, sequenceOrRows any, duration time.Duration) {
	durationMetric, countMetric, resultAttr := metricQueryDuration, metricEventsQueried, spanAttrMaxSequence
	if o.operation == operationAppend {
		durationMetric, countMetric, resultAttr = metricAppendDuration, metricEventsAppended, spanAttrRowsAffected
	}

	o.recordDuration(durationMetric, duration, statusSuccess)
	o.recordValue(countMetric, float64(eventCount))

	o.finishSpan(statusSuccess, map[string]string{
		spanAttrEventCount: strconv.Itoa(eventCount),
		resultAttr:         formatNumber(sequenceOrRows),
		spanAttrDurationMS: strconv.FormatFloat(toMilliseconds(duration), 'f', 2, 64),
	})
}

func (o observation) finishError(errorType string, duration time.Duration) {
	durationMetric := metricQueryDuration
	if o.operation == operationAppend {
		durationMetric = metricAppendDuration
	}

	o.recordDuration(durationMetric, duration, statusError)
	o.incrementCounter(metricDatabaseErrors, map[string]string{
		labelOperation: o.operation,
		labelStatus:    statusError,
		labelErrorType: errorType,
	})

	o.finishSpan(statusError, map[string]string{spanAttrErrorType: errorType})
}

func (o observation) finishConflict(duration time.Duration) {
	o.recordDuration(metricAppendDuration, duration, statusConflict)
	o.incrementCounter(metricConcurrencyConflicts, map[string]string{labelOperation: o.operation})

	o.finishSpan(statusError, map[string]string{spanAttrErrorType: errorTypeConcurrency})
}

func (o observation) finishSpan(status string, attrs map[string]string) {
	if o.es.tracingCollector == nil || o.span == nil {
		return
	}

	o.es.tracingCollector.FinishSpan(o.span, status, attrs)
}

func (o observation) recordDuration(metric string, duration time.Duration, status string) {
	labels := map[string]string{labelOperation: o.operation, labelStatus: status}

	switch collector := o.es.metricsCollector.(type) {
	case nil:
	case eventstore.ContextualMetricsCollector:
		collector.RecordDurationContext(o.ctx, metric, duration, labels)
	default:
		collector.RecordDuration(metric, duration, labels)
	}
}

func (o observation) recordValue(metric string, value float64) {
	labels := map[string]string{labelOperation: o.operation, labelStatus: statusSuccess}

	switch collector := o.es.metricsCollector.(type) {
	case nil:
	case eventstore.ContextualMetricsCollector:
		collector.RecordValueContext(o.ctx, metric, value, labels)
	default:
		collector.RecordValue(metric, value, labels)
	}
}

func (o observation) incrementCounter(metric string, labels map[string]string) {
	switch collector := o.es.metricsCollector.(type) {
	case nil:
	case eventstore.ContextualMetricsCollector:
		collector.IncrementCounterContext(o.ctx, metric, labels)
	default:
		collector.IncrementCounter(metric, labels)
	}
}

func (es *EventStore) logSQL(ctx context.Context, sqlQuery string, operation string, duration time.Duration) {
	args := []any{logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery}

	if es.logger != nil {
		es.logger.Debug(logMsgSQLExecuted+operation, args...)
	}

	if es.contextualLogger != nil {
		es.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+operation, args...)
	}
}

func (es *EventStore) logOperation(ctx context.Context, action string, args ...any) {
	if es.logger != nil {
		es.logger.Info(logMsgOperation+action, args...)
	}

	if es.contextualLogger != nil {
		es.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

func (es *EventStore) logWarn(ctx context.Context, msg string, args ...any) {
	if es.logger != nil {
		es.logger.Warn(msg, args...)
	}

	if es.contextualLogger != nil {
		es.contextualLogger.WarnContext(ctx, msg, args...)
	}
}

func (es *EventStore) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	if es.logger != nil {
		es.logger.Error(msg, allArgs...)
	}

	if es.contextualLogger != nil {
		es.contextualLogger.ErrorContext(ctx, msg, allArgs...)
	}
}

func classifyError(err error, fallback string) string {
	switch {
	case errors.Is(err, context.Canceled):
		return errorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return errorTypeTimeout
	default:
		return fallback
	}
}

func formatNumber(v any) string {
	switch n := v.(type) {
	case eventstore.MaxSequenceNumberUint:
		return strconv.FormatUint(uint64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	default:
		return ""
	}
}

// toMilliseconds converts a duration to milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
