package rules_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shelfwise/circulation/circulation/rules"
)

func standardRates() rules.PenaltyRates {
	return rules.PenaltyRates{
		PerDay:          decimal.NewFromInt(5),
		ReplacementCost: decimal.NewFromInt(500),
		DamageFee:       decimal.NewFromInt(50),
	}
}

func assertAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()

	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func Test_DaysOverdue(t *testing.T) {
	due := date(2025, 3, 10)

	assert.Equal(t, 0, rules.DaysOverdue(due, date(2025, 3, 1)), "early")
	assert.Equal(t, 0, rules.DaysOverdue(due, due), "on time")
	assert.Equal(t, 0, rules.DaysOverdue(due, due.Add(23*time.Hour)), "less than a full day")
	assert.Equal(t, 1, rules.DaysOverdue(due, date(2025, 3, 11)))
	assert.Equal(t, 1, rules.DaysOverdue(due, date(2025, 3, 11).Add(23*time.Hour)))
	assert.Equal(t, 21, rules.DaysOverdue(due, date(2025, 3, 31)))
}

func Test_DaysOverdue_GrowsByOnePerFullDay(t *testing.T) {
	due := date(2024, 12, 30)

	for n := 0; n < 60; n++ {
		assert.Equal(t, n, rules.DaysOverdue(due, due.AddDate(0, 0, n)))
	}
}

func Test_ComputeSeverity(t *testing.T) {
	tests := []struct {
		days     int
		expected rules.Severity
	}{
		{days: -2, expected: rules.SeverityNone},
		{days: 0, expected: rules.SeverityNone},
		{days: 1, expected: rules.SeverityLow},
		{days: 3, expected: rules.SeverityLow},
		{days: 4, expected: rules.SeverityMedium},
		{days: 7, expected: rules.SeverityMedium},
		{days: 8, expected: rules.SeverityHigh},
		{days: 365, expected: rules.SeverityHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, rules.ComputeSeverity(tt.days), "days overdue: %d", tt.days)
	}
}

func Test_ComputeSeverity_IsMonotonic(t *testing.T) {
	previous := rules.ComputeSeverity(0)

	for days := 1; days <= 100; days++ {
		current := rules.ComputeSeverity(days)
		assert.GreaterOrEqual(t, current, previous, "days overdue: %d", days)
		previous = current
	}
}

func Test_Severity_MarshalText(t *testing.T) {
	text, err := rules.SeverityMedium.MarshalText()

	assert.NoError(t, err)
	assert.Equal(t, "medium", string(text))
}

func Test_ComputePenalty(t *testing.T) {
	tests := []struct {
		name        string
		daysOverdue int
		condition   rules.ReturnCondition
		expected    string
	}{
		{name: "good and on time", daysOverdue: 0, condition: rules.ConditionGood, expected: "0"},
		{name: "good and 3 days late", daysOverdue: 3, condition: rules.ConditionGood, expected: "15"},
		{name: "lost ignores lateness", daysOverdue: 3, condition: rules.ConditionLost, expected: "500"},
		{name: "lost and on time", daysOverdue: 0, condition: rules.ConditionLost, expected: "500"},
		{name: "damaged and on time", daysOverdue: 0, condition: rules.ConditionDamaged, expected: "50"},
		{name: "damaged and 2 days late", daysOverdue: 2, condition: rules.ConditionDamaged, expected: "60"},
		{name: "negative days are clamped", daysOverdue: -4, condition: rules.ConditionGood, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.expected, rules.ComputePenalty(tt.daysOverdue, tt.condition, standardRates()))
		})
	}
}

func Test_ComputePenalty_FractionalRates(t *testing.T) {
	rates := rules.PenaltyRates{
		PerDay:          decimal.RequireFromString("0.10"),
		ReplacementCost: decimal.RequireFromString("42.50"),
		DamageFee:       decimal.RequireFromString("7.25"),
	}

	assertAmount(t, "0.30", rules.ComputePenalty(3, rules.ConditionGood, rates))
	assertAmount(t, "7.55", rules.ComputePenalty(3, rules.ConditionDamaged, rates))
}

func Test_ComputePenalty_IsRepeatable(t *testing.T) {
	first := rules.ComputePenalty(9, rules.ConditionDamaged, standardRates())
	second := rules.ComputePenalty(9, rules.ConditionDamaged, standardRates())

	assert.True(t, first.Equal(second))
}

func Test_PenaltyRates_Validate(t *testing.T) {
	assert.NoError(t, standardRates().Validate())

	rates := standardRates()
	rates.DamageFee = decimal.NewFromInt(-1)
	assert.ErrorIs(t, rates.Validate(), rules.ErrNegativePenaltyRate)
}

func Test_ClassifyReturnStatus(t *testing.T) {
	assert.Equal(t, rules.SettlementReturned, rules.ClassifyReturnStatus(decimal.Zero, rules.ConditionGood))
	assert.Equal(t, rules.SettlementPending, rules.ClassifyReturnStatus(decimal.NewFromInt(15), rules.ConditionGood))
	assert.Equal(t, rules.SettlementPending, rules.ClassifyReturnStatus(decimal.NewFromInt(500), rules.ConditionLost))
	assert.Equal(
		t,
		rules.SettlementReturned,
		rules.ClassifyReturnStatus(decimal.Zero, rules.ConditionDamaged),
		"nothing owed when the damage fee is configured as zero",
	)
}
