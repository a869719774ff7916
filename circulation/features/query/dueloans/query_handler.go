package dueloans

import (
	"context"

	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/circulation/shell"
)

// QueryHandler runs Query, Unmarshal, Project with eventual consistency.
type QueryHandler struct {
	eventStore shell.QueriesEvents
	rates      rules.PenaltyRates
}

func NewQueryHandler(eventStore shell.QueriesEvents, rates rules.PenaltyRates) (QueryHandler, error) {
	if err := rates.Validate(); err != nil {
		return QueryHandler{}, err
	}

	return QueryHandler{eventStore: eventStore, rates: rates}, nil
}

func (h QueryHandler) Handle(ctx context.Context, query Query) (DueLoans, error) {
	history, maxSequenceNumber, err := shell.QueryHistory(ctx, h.eventStore, BuildEventFilter())
	if err != nil {
		return DueLoans{}, err
	}

	return Project(history, query, h.rates, maxSequenceNumber), nil
}
