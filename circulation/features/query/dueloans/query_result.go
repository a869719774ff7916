package dueloans

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
)

// DueLoan is one approved, unreturned loan. AccruedPenalty is what a return in good condition
// would cost as of the query date.
type DueLoan struct {
	LoanID         core.LoanIDString
	CopyID         core.CopyIDString
	ItemID         core.ItemIDString
	MemberID       core.MemberIDString
	DueAt          time.Time
	DaysRemaining  int
	DaysOverdue    int
	Severity       rules.Severity
	AccruedPenalty decimal.Decimal
}

func (l DueLoan) IsOverdue() bool {
	return l.DaysOverdue > 0
}

type DueLoans struct {
	AsOf           time.Time
	Loans          []DueLoan
	Count          int
	SequenceNumber uint
}

func (r DueLoans) GetSequenceNumber() uint {
	return r.SequenceNumber
}
