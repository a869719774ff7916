package dueloans

import (
	"time"
)

const queryType = "DueLoans"

// DueWithinDays is how close a due date must be for a loan to be listed.
const DueWithinDays = 1

type Query struct {
	AsOf time.Time
}

func BuildQuery(asOf time.Time) Query {
	return Query{AsOf: asOf}
}

func (q Query) QueryType() string {
	return queryType
}
