package rules

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNegativePenaltyRate = errors.New("penalty rates must not be negative")

// DaysOverdue is max(0, floor((evaluationDate - dueDate) / 24h)).
func DaysOverdue(dueDate, evaluationDate time.Time) int {
	if !evaluationDate.After(dueDate) {
		return 0
	}

	return int(evaluationDate.Sub(dueDate) / day)
}

// Severity classifies how late a loan is, for display.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

const (
	lowSeverityMaxDays    = 3
	mediumSeverityMaxDays = 7
)

// ComputeSeverity maps 0 days to None, 1-3 to Low, 4-7 to Medium and anything above to High.
func ComputeSeverity(daysOverdue int) Severity {
	switch {
	case daysOverdue <= 0:
		return SeverityNone
	case daysOverdue <= lowSeverityMaxDays:
		return SeverityLow
	case daysOverdue <= mediumSeverityMaxDays:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PenaltyRates is library policy, loaded from configuration.
type PenaltyRates struct {
	PerDay          decimal.Decimal
	ReplacementCost decimal.Decimal
	DamageFee       decimal.Decimal
}

func (r PenaltyRates) Validate() error {
	if r.PerDay.IsNegative() || r.ReplacementCost.IsNegative() || r.DamageFee.IsNegative() {
		return ErrNegativePenaltyRate
	}

	return nil
}

// ComputePenalty returns the amount owed for a return:
//
//	Lost:    ReplacementCost, regardless of lateness
//	Damaged: DamageFee + daysOverdue * PerDay
//	Good:    daysOverdue * PerDay
//
// Negative day counts are treated as zero.
func ComputePenalty(daysOverdue int, condition ReturnCondition, rates PenaltyRates) decimal.Decimal {
	overdueFee := rates.PerDay.Mul(decimal.NewFromInt(int64(max(daysOverdue, 0))))

	switch condition {
	case ConditionLost:
		return rates.ReplacementCost
	case ConditionDamaged:
		return rates.DamageFee.Add(overdueFee)
	default:
		return overdueFee
	}
}

// ClassifyReturnStatus is Pending when something is owed and Returned otherwise.
// Paid is never returned here; it is recorded when the penalty is collected.
func ClassifyReturnStatus(penalty decimal.Decimal, _ ReturnCondition) SettlementStatus {
	if penalty.IsPositive() {
		return SettlementPending
	}

	return SettlementReturned
}
