package reminders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/query/dueloans"
	"github.com/shelfwise/circulation/circulation/rules"
)

type NoticeKind string

const (
	NoticeDueSoon NoticeKind = "due_soon"
	NoticeOverdue NoticeKind = "overdue"
)

// Notice tells a member about one loan.
type Notice struct {
	Kind           NoticeKind
	LoanID         core.LoanIDString
	MemberID       core.MemberIDString
	CopyID         core.CopyIDString
	ItemID         core.ItemIDString
	DueAt          time.Time
	DaysRemaining  int
	DaysOverdue    int
	Severity       rules.Severity
	AccruedPenalty decimal.Decimal
}

func NoticeFrom(loan dueloans.DueLoan) Notice {
	kind := NoticeDueSoon
	if loan.IsOverdue() {
		kind = NoticeOverdue
	}

	return Notice{
		Kind:           kind,
		LoanID:         loan.LoanID,
		MemberID:       loan.MemberID,
		CopyID:         loan.CopyID,
		ItemID:         loan.ItemID,
		DueAt:          loan.DueAt,
		DaysRemaining:  loan.DaysRemaining,
		DaysOverdue:    loan.DaysOverdue,
		Severity:       loan.Severity,
		AccruedPenalty: loan.AccruedPenalty,
	}
}
