package memberloans

import (
	"time"

	"github.com/google/uuid"
)

const queryType = "MemberLoans"

// Query evaluates the loans of a member as of AsOf.
type Query struct {
	MemberID uuid.UUID
	AsOf     time.Time
}

func BuildQuery(memberID uuid.UUID, asOf time.Time) Query {
	return Query{MemberID: memberID, AsOf: asOf}
}

func (q Query) QueryType() string {
	return queryType
}
