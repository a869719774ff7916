package outstandingpenalties

import (
	"github.com/google/uuid"
)

const queryType = "OutstandingPenalties"

// Query selects one member, or every member when MemberID is uuid.Nil.
type Query struct {
	MemberID uuid.UUID
}

func BuildQuery(memberID uuid.UUID) Query {
	return Query{MemberID: memberID}
}

func BuildQueryForAllMembers() Query {
	return Query{MemberID: uuid.Nil}
}

func (q Query) QueryType() string {
	return queryType
}
