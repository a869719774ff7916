package memberloans

import (
	"context"

	"github.com/shelfwise/circulation/circulation/shell"
)

// QueryHandler runs Query, Unmarshal, Project with eventual consistency.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{eventStore: eventStore}
}

func (h QueryHandler) Handle(ctx context.Context, query Query) (MemberLoans, error) {
	history, maxSequenceNumber, err := shell.QueryHistory(ctx, h.eventStore, BuildEventFilter(query.MemberID))
	if err != nil {
		return MemberLoans{}, err
	}

	return Project(history, query, maxSequenceNumber), nil
}
