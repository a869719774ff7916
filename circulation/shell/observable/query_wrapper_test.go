package observable_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/shell"
	"github.com/shelfwise/circulation/circulation/shell/observable"
	"github.com/shelfwise/circulation/testutil/spies"
)

type stubQuery struct{}

func (stubQuery) QueryType() string { return "StubQuery" }

type stubResult struct {
	sequenceNumber uint
}

func (r stubResult) GetSequenceNumber() uint { return r.sequenceNumber }

type stubQueryHandler struct {
	result stubResult
	err    error
}

func (h stubQueryHandler) Handle(_ context.Context, _ stubQuery) (stubResult, error) {
	return h.result, h.err
}

func Test_QueryWrapper_Success(t *testing.T) {
	// arrange
	metrics, tracing, logger := spies.NewMetricsCollectorSpy(), spies.NewTracingCollectorSpy(), spies.NewLoggerSpy()
	wrapper, err := observable.NewQueryWrapper[stubQuery, stubResult](
		stubQueryHandler{result: stubResult{sequenceNumber: 42}},
		observable.WithQueryObserver[stubQuery, stubResult](shell.Observer{Metrics: metrics, Tracing: tracing, Logger: logger}),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), stubQuery{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, uint(42), result.GetSequenceNumber())
	assert.True(t, metrics.HasCounter(shell.QueryHandlerCallsMetric, shell.BuildQueryLabels("StubQuery", shell.StatusSuccess)))

	span, ok := tracing.FinishedSpan(shell.SpanNameQueryHandle)
	require.True(t, ok)
	assert.Equal(t, shell.StatusSuccess, span.Status)

	record, ok := logger.Find("info", shell.LogMsgQueryCompleted)
	require.True(t, ok)
	assert.Equal(t, uint(42), record.Attrs[shell.LogAttrSequence])
}

func Test_QueryWrapper_Canceled(t *testing.T) {
	// arrange
	metrics, logger := spies.NewMetricsCollectorSpy(), spies.NewLoggerSpy()
	wrapper, err := observable.NewQueryWrapper[stubQuery, stubResult](
		stubQueryHandler{err: context.Canceled},
		observable.WithQueryMetrics[stubQuery, stubResult](metrics),
		observable.WithQueryLogging[stubQuery, stubResult](logger),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), stubQuery{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, metrics.HasCounter(shell.QueryHandlerCanceledMetric, shell.BuildQueryLabels("StubQuery", shell.StatusCanceled)))
	_, ok := logger.Find("error", shell.LogMsgQueryFailed)
	assert.True(t, ok)
}
