package shell

import "time"

// HandlerResult is what a command handler reports besides its error: whether the command was
// idempotent, and how the retry loop went.
type HandlerResult struct {
	Idempotent bool

	// RetryAttempts counts all attempts, 1 when the first one succeeded.
	RetryAttempts int

	// TotalRetryDelay is the time spent sleeping between attempts.
	TotalRetryDelay time.Duration

	// LastErrorType is one of "none", "concurrency_conflict", "context_canceled",
	// "context_deadline_exceeded", or "other".
	LastErrorType string

	RetriesExhausted bool
}

func NewSuccessResult(retryMetrics RetryMetrics) HandlerResult {
	return newHandlerResult(false, retryMetrics)
}

func NewIdempotentResult(retryMetrics RetryMetrics) HandlerResult {
	return newHandlerResult(true, retryMetrics)
}

// NewErrorResult keeps the retry metadata of a failed handler run.
func NewErrorResult(retryMetrics RetryMetrics) HandlerResult {
	return newHandlerResult(false, retryMetrics)
}

func newHandlerResult(idempotent bool, retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		Idempotent:       idempotent,
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}
