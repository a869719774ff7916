package changecopystatus

import (
	"context"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/shell"
)

// CommandHandler runs Query, Unmarshal, Decide, Append with retry.
// Observability is added by wrapping it with observable.CommandWrapper.
type CommandHandler struct {
	eventStore   shell.EventStore
	retryOptions []shell.RetryOption
}

type Option func(*CommandHandler)

func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

func NewCommandHandler(eventStore shell.EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{eventStore: eventStore}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.HandleCommand(
		ctx,
		h.eventStore,
		BuildEventFilter(command.CopyID),
		func(history core.DomainEvents) core.DecisionResult {
			return Decide(history, command)
		},
		h.retryOptions...,
	)
}
