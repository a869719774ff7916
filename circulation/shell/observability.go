package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/eventstore"
)

const (
	CommandHandlerDurationMetric            = "commandhandler_handle_duration_seconds"
	CommandHandlerCallsMetric               = "commandhandler_handle_calls_total"
	CommandHandlerIdempotentMetric          = "commandhandler_idempotent_operations_total"
	CommandHandlerCanceledMetric            = "commandhandler_canceled_operations_total"
	CommandHandlerTimeoutMetric             = "commandhandler_timeout_operations_total"
	CommandHandlerConcurrencyConflictMetric = "commandhandler_concurrency_conflicts_total"
	CommandHandlerRejectedMetric            = "commandhandler_rejected_commands_total"

	// CommandHandlerRetriesMetric is labeled with command_type, attempt_number and error_type.
	CommandHandlerRetriesMetric           = "commandhandler_retries_total"
	CommandHandlerRetryDelayMetric        = "commandhandler_retry_delay_seconds"
	CommandHandlerMaxRetriesReachedMetric = "commandhandler_max_retries_reached_total"

	QueryHandlerDurationMetric = "queryhandler_handle_duration_seconds"
	QueryHandlerCallsMetric    = "queryhandler_handle_calls_total"
	QueryHandlerCanceledMetric = "queryhandler_canceled_operations_total"
	QueryHandlerTimeoutMetric  = "queryhandler_timeout_operations_total"
)

const (
	StatusSuccess             = "success"
	StatusError               = "error"
	StatusRejected            = "rejected"
	StatusIdempotent          = "idempotent"
	StatusCanceled            = "canceled"
	StatusTimeout             = "timeout"
	StatusConcurrencyConflict = "concurrency_conflict"
)

const (
	LogMsgCommandStarted   = "command handler started"
	LogMsgCommandCompleted = "command handler completed"
	LogMsgCommandFailed    = "command handler failed"
	LogMsgCommandRejected  = "command rejected by business rules"
	LogMsgQueryStarted     = "query handler started"
	LogMsgQueryCompleted   = "query handler completed"
	LogMsgQueryFailed      = "query handler failed"

	LogAttrCommandType     = "command_type"
	LogAttrQueryType       = "query_type"
	LogAttrStatus          = "status"
	LogAttrDurationMS      = "duration_ms"
	LogAttrBusinessOutcome = "business_outcome"
	LogAttrError           = "error"
	LogAttrAttemptNumber   = "attempt_number"
	LogAttrErrorType       = "error_type"
	LogAttrSequence        = "sequence"

	SpanNameCommandHandle = "commandhandler.handle"
	SpanNameQueryHandle   = "queryhandler.handle"
)

type MetricsCollector = eventstore.MetricsCollector
type ContextualMetricsCollector = eventstore.ContextualMetricsCollector
type TracingCollector = eventstore.TracingCollector
type SpanContext = eventstore.SpanContext
type ContextualLogger = eventstore.ContextualLogger
type Logger = eventstore.Logger

// Observer bundles the optional collectors. A zero Observer does nothing.
type Observer struct {
	Metrics          MetricsCollector
	Tracing          TracingCollector
	ContextualLogger ContextualLogger
	Logger           Logger
}

func BuildCommandLabels(commandType, status string) map[string]string {
	return map[string]string{LogAttrCommandType: commandType, LogAttrStatus: status}
}

func BuildQueryLabels(queryType, status string) map[string]string {
	return map[string]string{LogAttrQueryType: queryType, LogAttrStatus: status}
}

func BuildRetryLabels(commandType string, attemptNumber int, errorType string) map[string]string {
	return map[string]string{
		LogAttrCommandType:   commandType,
		LogAttrAttemptNumber: strconv.Itoa(attemptNumber),
		LogAttrErrorType:     errorType,
	}
}

func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// StatusOf maps a handler error to the status label used in metrics, spans and logs.
func StatusOf(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, context.Canceled):
		return StatusCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.Is(err, eventstore.ErrConcurrencyConflict):
		return StatusConcurrencyConflict
	case errors.Is(err, core.ErrCommandRejected):
		return StatusRejected
	default:
		return StatusError
	}
}

// IncrementCounter prefers the contextual variant so exemplars can link to traces.
func (o Observer) IncrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if o.Metrics == nil {
		return
	}

	if contextual, ok := o.Metrics.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	o.Metrics.IncrementCounter(metric, labels)
}

func (o Observer) RecordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if o.Metrics == nil {
		return
	}

	if contextual, ok := o.Metrics.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	o.Metrics.RecordDuration(metric, duration, labels)
}

// RecordCommandMetrics records duration and calls, plus a dedicated counter for the
// idempotent, rejected, canceled, timeout and conflict outcomes.
func (o Observer) RecordCommandMetrics(ctx context.Context, commandType, status string, duration time.Duration) {
	labels := BuildCommandLabels(commandType, status)
	o.RecordDuration(ctx, CommandHandlerDurationMetric, duration, labels)
	o.IncrementCounter(ctx, CommandHandlerCallsMetric, labels)

	outcomeMetrics := map[string]string{
		StatusIdempotent:          CommandHandlerIdempotentMetric,
		StatusRejected:            CommandHandlerRejectedMetric,
		StatusCanceled:            CommandHandlerCanceledMetric,
		StatusTimeout:             CommandHandlerTimeoutMetric,
		StatusConcurrencyConflict: CommandHandlerConcurrencyConflictMetric,
	}

	if metric, ok := outcomeMetrics[status]; ok {
		o.IncrementCounter(ctx, metric, BuildCommandLabels(commandType, status))
	}
}

func (o Observer) RecordQueryMetrics(ctx context.Context, queryType, status string, duration time.Duration) {
	labels := BuildQueryLabels(queryType, status)
	o.RecordDuration(ctx, QueryHandlerDurationMetric, duration, labels)
	o.IncrementCounter(ctx, QueryHandlerCallsMetric, labels)

	switch status {
	case StatusCanceled:
		o.IncrementCounter(ctx, QueryHandlerCanceledMetric, BuildQueryLabels(queryType, status))
	case StatusTimeout:
		o.IncrementCounter(ctx, QueryHandlerTimeoutMetric, BuildQueryLabels(queryType, status))
	}
}

// StartSpan returns ctx unchanged and a nil span when tracing is disabled.
func (o Observer) StartSpan(ctx context.Context, spanName, typeAttr, typeName string) (context.Context, SpanContext) {
	if o.Tracing == nil {
		return ctx, nil
	}

	return o.Tracing.StartSpan(ctx, spanName, map[string]string{typeAttr: typeName})
}

func (o Observer) FinishSpan(span SpanContext, status string, duration time.Duration, err error) {
	if o.Tracing == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: fmt.Sprintf("%.2f", ToMilliseconds(duration)),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	o.Tracing.FinishSpan(span, status, attrs)
}

func (o Observer) LogInfo(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.InfoContext(ctx, msg, args...)
	} else if o.Logger != nil {
		o.Logger.Info(msg, args...)
	}
}

func (o Observer) LogWarn(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.WarnContext(ctx, msg, args...)
	} else if o.Logger != nil {
		o.Logger.Warn(msg, args...)
	}
}

func (o Observer) LogError(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.ErrorContext(ctx, msg, args...)
	} else if o.Logger != nil {
		o.Logger.Error(msg, args...)
	}
}
