package shell

import (
	"context"

	"github.com/shelfwise/circulation/eventstore"
)

// EventStore is what command handlers need from an engine.
type EventStore interface {
	eventstore.QueriesEvents
	eventstore.AppendsEvents
}

// QueriesEvents is what query handlers need from an engine.
type QueriesEvents = eventstore.QueriesEvents

// Command is implemented by every command. CommandType must work on the zero value.
type Command interface {
	CommandType() string
}

// Query is implemented by every query. QueryType must work on the zero value.
type Query interface {
	QueryType() string
}

// QueryResult is a projection. GetSequenceNumber returns the highest sequence number it includes.
type QueryResult interface {
	GetSequenceNumber() uint
}

// CommandHandler runs Query, Unmarshal, Decide, Append for one use case.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// QueryHandler runs Query, Unmarshal, Project for one read model.
type QueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
