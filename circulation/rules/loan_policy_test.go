package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shelfwise/circulation/circulation/rules"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Test_MaxBorrowDays(t *testing.T) {
	assert.Equal(t, 5, rules.MaxBorrowDays(rules.CategoryFaculty))
	assert.Equal(t, 2, rules.MaxBorrowDays(rules.CategoryStudent))
	assert.Equal(t, 2, rules.MaxBorrowDays(rules.CategoryUnspecified), "unspecified falls back to student")
	assert.Equal(t, 2, rules.MaxBorrowDays(rules.MemberCategory("Visitor")), "unknown falls back to student")
}

func Test_ComputeDueDate_AddsCalendarDays(t *testing.T) {
	tests := []struct {
		name        string
		category    rules.MemberCategory
		requestDate time.Time
		expected    time.Time
	}{
		{name: "faculty over year end", category: rules.CategoryFaculty, requestDate: date(2024, 12, 29), expected: date(2025, 1, 3)},
		{name: "faculty at end of 30 day month", category: rules.CategoryFaculty, requestDate: date(2025, 4, 30), expected: date(2025, 5, 5)},
		{name: "student in leap february", category: rules.CategoryStudent, requestDate: date(2024, 2, 28), expected: date(2024, 3, 1)},
		{name: "student in non-leap february", category: rules.CategoryStudent, requestDate: date(2025, 2, 28), expected: date(2025, 3, 2)},
		{name: "unspecified uses fallback", category: rules.CategoryUnspecified, requestDate: date(2025, 6, 10), expected: date(2025, 6, 12)},
		{
			name:        "time of day is dropped",
			category:    rules.CategoryStudent,
			requestDate: time.Date(2025, 6, 10, 17, 45, 12, 0, time.UTC),
			expected:    date(2025, 6, 12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rules.ComputeDueDate(tt.category, tt.requestDate))
		})
	}
}

func Test_ComputeDueDate_DifferenceIsExactlyMaxBorrowDays(t *testing.T) {
	for _, category := range []rules.MemberCategory{rules.CategoryStudent, rules.CategoryFaculty, rules.CategoryUnspecified} {
		for d := date(2024, 1, 1); d.Before(date(2025, 1, 1)); d = d.AddDate(0, 0, 1) {
			dueDate := rules.ComputeDueDate(category, d)

			assert.Equal(t, d.AddDate(0, 0, rules.MaxBorrowDays(category)), dueDate)
			assert.False(t, dueDate.Before(d), "due date must not be before the request date")
		}
	}
}

func Test_ComputeDueDate_KeepsLocation(t *testing.T) {
	// arrange
	location := time.FixedZone("UTC+3", 3*60*60)
	requestDate := time.Date(2025, 1, 31, 23, 30, 0, 0, location)

	// act
	dueDate := rules.ComputeDueDate(rules.CategoryFaculty, requestDate)

	// assert
	assert.Equal(t, time.Date(2025, 2, 5, 0, 0, 0, 0, location), dueDate)
}

func Test_DaysRemaining(t *testing.T) {
	due := date(2025, 3, 10)

	tests := []struct {
		name     string
		today    time.Time
		expected int
	}{
		{name: "due today", today: due, expected: 0},
		{name: "two days ahead", today: date(2025, 3, 8), expected: 2},
		{name: "partial day rounds up", today: time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC), expected: 2},
		{name: "one day overdue", today: date(2025, 3, 11), expected: -1},
		{name: "partial overdue day rounds towards zero", today: time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC), expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rules.DaysRemaining(due, tt.today))
		})
	}
}

func Test_DefaultBookingQuota(t *testing.T) {
	assert.Equal(t, uint(5), rules.DefaultBookingQuota(rules.CategoryFaculty))
	assert.Equal(t, uint(3), rules.DefaultBookingQuota(rules.CategoryStudent))
}

func Test_ParseMemberCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected rules.MemberCategory
	}{
		{input: "Student", expected: rules.CategoryStudent},
		{input: " faculty ", expected: rules.CategoryFaculty},
		{input: "", expected: rules.CategoryUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			category, err := rules.ParseMemberCategory(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, category)
		})
	}

	_, err := rules.ParseMemberCategory("visitor")
	assert.ErrorIs(t, err, rules.ErrUnknownMemberCategory)
	assert.False(t, rules.CategoryUnspecified.IsSpecified())
	assert.True(t, rules.CategoryFaculty.IsSpecified())
}
