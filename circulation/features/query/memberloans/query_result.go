package memberloans

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
)

type OpenLoan struct {
	LoanID        core.LoanIDString
	CopyID        core.CopyIDString
	ItemID        core.ItemIDString
	Approval      rules.ApprovalStatus
	RequestedAt   time.Time
	DueAt         time.Time
	DaysRemaining int
	DaysOverdue   int
	Severity      rules.Severity
}

type SettledReturn struct {
	LoanID      core.LoanIDString
	CopyID      core.CopyIDString
	ItemID      core.ItemIDString
	DueAt       time.Time
	ReturnedAt  time.Time
	Condition   rules.ReturnCondition
	DaysOverdue int
	Penalty     decimal.Decimal
	Settlement  rules.SettlementStatus
}

type MemberLoans struct {
	MemberID       core.MemberIDString
	Name           string
	Category       rules.MemberCategory
	Deactivated    bool
	OpenLoans      []OpenLoan
	Returns        []SettledReturn
	AmountOwed     decimal.Decimal
	SequenceNumber uint
}

func (r MemberLoans) GetSequenceNumber() uint {
	return r.SequenceNumber
}
