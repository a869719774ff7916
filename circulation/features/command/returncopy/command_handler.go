package returncopy

import (
	"context"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/circulation/shell"
)

// CommandHandler runs Query, Unmarshal, Decide, Append with retry.
// The penalty rates are library policy and are fixed for the lifetime of the handler.
type CommandHandler struct {
	eventStore   shell.EventStore
	rates        rules.PenaltyRates
	retryOptions []shell.RetryOption
}

type Option func(*CommandHandler)

func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

func NewCommandHandler(eventStore shell.EventStore, rates rules.PenaltyRates, opts ...Option) (CommandHandler, error) {
	if err := rates.Validate(); err != nil {
		return CommandHandler{}, err
	}

	handler := CommandHandler{eventStore: eventStore, rates: rates}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler, nil
}

func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.HandleCommand(
		ctx,
		h.eventStore,
		BuildEventFilter(command.LoanID),
		func(history core.DomainEvents) core.DecisionResult {
			return Decide(history, command, h.rates)
		},
		h.retryOptions...,
	)
}
