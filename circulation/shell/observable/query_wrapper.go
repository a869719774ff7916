package observable

import (
	"context"
	"time"

	"github.com/shelfwise/circulation/circulation/shell"
)

// QueryWrapper instruments any shell.QueryHandler.
type QueryWrapper[Q shell.Query, R shell.QueryResult] struct {
	coreHandler shell.QueryHandler[Q, R]
	queryType   string
	observer    shell.Observer
}

func NewQueryWrapper[Q shell.Query, R shell.QueryResult](
	coreHandler shell.QueryHandler[Q, R],
	opts ...QueryOption[Q, R],
) (*QueryWrapper[Q, R], error) {

	var zeroQuery Q

	wrapper := &QueryWrapper[Q, R]{
		coreHandler: coreHandler,
		queryType:   zeroQuery.QueryType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

func (w *QueryWrapper[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	start := time.Now()
	ctx, span := w.observer.StartSpan(ctx, shell.SpanNameQueryHandle, shell.LogAttrQueryType, w.queryType)
	w.observer.LogInfo(ctx, shell.LogMsgQueryStarted, shell.LogAttrQueryType, w.queryType)

	result, err := w.coreHandler.Handle(ctx, query)
	duration := time.Since(start)
	status := shell.StatusOf(err)

	w.observer.RecordQueryMetrics(ctx, w.queryType, status, duration)
	w.observer.FinishSpan(span, status, duration, err)

	if err != nil {
		w.observer.LogError(ctx, shell.LogMsgQueryFailed, shell.LogAttrQueryType, w.queryType, shell.LogAttrError, err.Error())
		return result, err
	}

	w.observer.LogInfo(
		ctx,
		shell.LogMsgQueryCompleted,
		shell.LogAttrQueryType, w.queryType,
		shell.LogAttrSequence, result.GetSequenceNumber(),
		shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
	)

	return result, nil
}

// QueryOption configures a QueryWrapper.
type QueryOption[Q shell.Query, R shell.QueryResult] func(*QueryWrapper[Q, R]) error

func WithQueryMetrics[Q shell.Query, R shell.QueryResult](collector shell.MetricsCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.observer.Metrics = collector
		return nil
	}
}

func WithQueryTracing[Q shell.Query, R shell.QueryResult](collector shell.TracingCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.observer.Tracing = collector
		return nil
	}
}

func WithQueryContextualLogging[Q shell.Query, R shell.QueryResult](logger shell.ContextualLogger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.observer.ContextualLogger = logger
		return nil
	}
}

func WithQueryLogging[Q shell.Query, R shell.QueryResult](logger shell.Logger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.observer.Logger = logger
		return nil
	}
}

func WithQueryObserver[Q shell.Query, R shell.QueryResult](observer shell.Observer) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.observer = observer
		return nil
	}
}
