package rules

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownReturnCondition = errors.New("unknown return condition")

// ReturnCondition is the state a copy is in when it comes back.
type ReturnCondition string

const (
	ConditionGood    ReturnCondition = "Good"
	ConditionDamaged ReturnCondition = "Damaged"
	ConditionLost    ReturnCondition = "Lost"
)

func ParseReturnCondition(s string) (ReturnCondition, error) {
	for _, condition := range []ReturnCondition{ConditionGood, ConditionDamaged, ConditionLost} {
		if strings.EqualFold(strings.TrimSpace(s), string(condition)) {
			return condition, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownReturnCondition, s)
}

// ApprovalStatus is the state of a borrow request.
type ApprovalStatus string

const (
	ApprovalPending     ApprovalStatus = "Pending"
	ApprovalApproved    ApprovalStatus = "Approved"
	ApprovalDisapproved ApprovalStatus = "Disapproved"
)

// SettlementStatus is the state of a return.
type SettlementStatus string

const (
	SettlementReturned SettlementStatus = "Returned"
	SettlementPending  SettlementStatus = "Pending"
	SettlementPaid     SettlementStatus = "Paid"
)
