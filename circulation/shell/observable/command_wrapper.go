package observable

import (
	"context"
	"time"

	"github.com/shelfwise/circulation/circulation/shell"
)

// CommandWrapper instruments any shell.CommandHandler.
type CommandWrapper[C shell.Command] struct {
	coreHandler shell.CommandHandler[C]
	commandType string
	observer    shell.Observer
}

// NewCommandWrapper reads the command type from the zero value of C.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {

	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	start := time.Now()
	ctx, span := w.observer.StartSpan(ctx, shell.SpanNameCommandHandle, shell.LogAttrCommandType, w.commandType)
	w.observer.LogInfo(ctx, shell.LogMsgCommandStarted, shell.LogAttrCommandType, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(start)

	w.recordRetryMetrics(ctx, result)

	status := shell.StatusOf(err)
	if err == nil && result.Idempotent {
		status = shell.StatusIdempotent
	}

	w.observer.RecordCommandMetrics(ctx, w.commandType, status, duration)
	w.observer.FinishSpan(span, status, duration, err)

	switch status {
	case shell.StatusSuccess, shell.StatusIdempotent:
		w.observer.LogInfo(
			ctx,
			shell.LogMsgCommandCompleted,
			shell.LogAttrCommandType, w.commandType,
			shell.LogAttrBusinessOutcome, status,
			shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
		)
	case shell.StatusRejected:
		w.observer.LogWarn(ctx, shell.LogMsgCommandRejected, shell.LogAttrCommandType, w.commandType, shell.LogAttrError, err.Error())
	default:
		w.observer.LogError(ctx, shell.LogMsgCommandFailed, shell.LogAttrCommandType, w.commandType, shell.LogAttrError, err.Error())
	}

	return result, err
}

// CommandOption configures a CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.observer.Metrics = collector
		return nil
	}
}

func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.observer.Tracing = collector
		return nil
	}
}

// WithCommandContextualLogging takes precedence over WithCommandLogging.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.observer.ContextualLogger = logger
		return nil
	}
}

func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.observer.Logger = logger
		return nil
	}
}

// WithCommandObserver sets all collectors at once.
func WithCommandObserver[C shell.Command](observer shell.Observer) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.observer = observer
		return nil
	}
}

func (w *CommandWrapper[C]) recordRetryMetrics(ctx context.Context, result shell.HandlerResult) {
	if result.RetryAttempts > 1 {
		w.observer.IncrementCounter(
			ctx,
			shell.CommandHandlerRetriesMetric,
			shell.BuildRetryLabels(w.commandType, result.RetryAttempts-1, result.LastErrorType),
		)
		w.observer.RecordDuration(
			ctx,
			shell.CommandHandlerRetryDelayMetric,
			result.TotalRetryDelay,
			map[string]string{shell.LogAttrCommandType: w.commandType},
		)
	}

	if result.RetriesExhausted {
		w.observer.IncrementCounter(
			ctx,
			shell.CommandHandlerMaxRetriesReachedMetric,
			map[string]string{shell.LogAttrCommandType: w.commandType},
		)
	}
}
