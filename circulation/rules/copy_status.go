package rules

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCopyStatus           = errors.New("unknown copy status")
	ErrStatusLockedBySettlement    = errors.New("copy status is locked by a penalty settlement")
	ErrStatusReservedForSettlement = errors.New("copy status can only be reached by a penalty settlement")
	ErrStatusReservedForLending    = errors.New("copy status can only be reached by lending the copy")
	ErrCopyOnLoan                  = errors.New("copy is on loan")
	ErrInvalidAccessionNumber      = errors.New("accession number must be a 6 digit number")
)

// AccessionNumberWidth is the fixed width of an accession number.
const AccessionNumberWidth = 6

// CopyStatus is the state of one physical copy.
type CopyStatus string

const (
	CopyAvailable   CopyStatus = "Available"
	CopyBorrowed    CopyStatus = "Borrowed"
	CopyReserved    CopyStatus = "Reserved"
	CopyLost        CopyStatus = "Lost"
	CopyUnderRepair CopyStatus = "Under Repair"
	CopyPaid        CopyStatus = "Paid"
	CopyPending     CopyStatus = "Pending"
)

// AllCopyStatuses lists every CopyStatus in display order.
func AllCopyStatuses() []CopyStatus {
	return []CopyStatus{CopyAvailable, CopyBorrowed, CopyReserved, CopyLost, CopyUnderRepair, CopyPaid, CopyPending}
}

// ParseCopyStatus accepts the display labels case-insensitively.
func ParseCopyStatus(s string) (CopyStatus, error) {
	for _, status := range AllCopyStatuses() {
		if strings.EqualFold(strings.TrimSpace(s), string(status)) {
			return status, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCopyStatus, s)
}

func (s CopyStatus) String() string {
	return string(s)
}

// IsSettlementStatus reports whether s belongs to a lost copy whose penalty is owed or paid.
func (s CopyStatus) IsSettlementStatus() bool {
	return s == CopyPaid || s == CopyPending
}

// ValidateDirectStatusChange checks an administrative status edit.
func ValidateDirectStatusChange(from, to CopyStatus) error {
	switch {
	case from.IsSettlementStatus():
		return ErrStatusLockedBySettlement
	case to.IsSettlementStatus():
		return ErrStatusReservedForSettlement
	case to == CopyBorrowed:
		return ErrStatusReservedForLending
	case from == CopyBorrowed:
		return ErrCopyOnLoan
	default:
		return nil
	}
}

// CopyStatusAfterReturn is the status a copy takes once its return was settled.
func CopyStatusAfterReturn(condition ReturnCondition, settlement SettlementStatus) CopyStatus {
	switch condition {
	case ConditionLost:
		if settlement == SettlementPending {
			return CopyPending
		}

		return CopyLost
	case ConditionDamaged:
		return CopyUnderRepair
	default:
		return CopyAvailable
	}
}

// CopyStatusAfterPayment moves a Pending copy to Paid and leaves every other status alone.
func CopyStatusAfterPayment(current CopyStatus) CopyStatus {
	if current == CopyPending {
		return CopyPaid
	}

	return current
}

// ValidateAccessionNumber requires exactly AccessionNumberWidth ASCII digits.
func ValidateAccessionNumber(accessionNumber string) error {
	if len(accessionNumber) != AccessionNumberWidth {
		return ErrInvalidAccessionNumber
	}

	for _, r := range accessionNumber {
		if r < '0' || r > '9' {
			return ErrInvalidAccessionNumber
		}
	}

	return nil
}
