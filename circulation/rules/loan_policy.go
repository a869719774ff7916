package rules

import "time"

const (
	facultyBorrowDays = 5
	studentBorrowDays = 2

	facultyBookingQuota = 5
	studentBookingQuota = 3

	day = 24 * time.Hour
)

// MaxBorrowDays is 5 for faculty and 2 for students. Unspecified or unknown categories
// fall back to the student duration.
func MaxBorrowDays(category MemberCategory) int {
	switch category {
	case CategoryFaculty:
		return facultyBorrowDays
	case CategoryStudent:
		return studentBorrowDays
	default:
		return studentBorrowDays
	}
}

// DefaultBookingQuota is the number of concurrent loans a member of the category gets
// unless an administrator sets another quota.
func DefaultBookingQuota(category MemberCategory) uint {
	if category == CategoryFaculty {
		return facultyBookingQuota
	}

	return studentBookingQuota
}

// ComputeDueDate adds MaxBorrowDays calendar days to the date of requestDate.
// The result is midnight in requestDate's location; month and year rollover follow time.Date.
func ComputeDueDate(category MemberCategory, requestDate time.Time) time.Time {
	year, month, dayOfMonth := requestDate.Date()

	return time.Date(year, month, dayOfMonth+MaxBorrowDays(category), 0, 0, 0, 0, requestDate.Location())
}

// DaysRemaining is ceil((dueDate - today) / 24h). Negative once the loan is overdue.
func DaysRemaining(dueDate, today time.Time) int {
	d := dueDate.Sub(today)
	days := d / day

	if d%day > 0 {
		days++
	}

	return int(days)
}
