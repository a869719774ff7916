package outstandingpenalties

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
)

type OutstandingPenalty struct {
	LoanID      core.LoanIDString
	CopyID      core.CopyIDString
	ItemID      core.ItemIDString
	MemberID    core.MemberIDString
	Condition   rules.ReturnCondition
	DaysOverdue int
	Amount      decimal.Decimal
	ReturnedAt  time.Time
}

type OutstandingPenalties struct {
	Penalties      []OutstandingPenalty
	Count          int
	Total          decimal.Decimal
	SequenceNumber uint
}

func (r OutstandingPenalties) GetSequenceNumber() uint {
	return r.SequenceNumber
}
