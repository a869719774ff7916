package core

import (
	"time"
)

// Failure events record rejected commands. EntityID is the ID of the aggregate the command targeted,
// FailureInfo the reason.

const (
	RegisteringMemberFailedEventType      = "RegisteringMemberFailed"
	DeactivatingMemberFailedEventType     = "DeactivatingMemberFailed"
	AddingCatalogItemFailedEventType      = "AddingCatalogItemFailed"
	RegisteringCopyFailedEventType        = "RegisteringCopyFailed"
	ChangingCopyStatusFailedEventType     = "ChangingCopyStatusFailed"
	RemovingCopyFailedEventType           = "RemovingCopyFailed"
	RequestingBorrowFailedEventType       = "RequestingBorrowFailed"
	ReviewingBorrowRequestFailedEventType = "ReviewingBorrowRequestFailed"
	ReturningCopyFailedEventType          = "ReturningCopyFailed"
	PayingPenaltyFailedEventType          = "PayingPenaltyFailed"
)

// RegisteringMemberFailed records that registering a member was rejected.
type RegisteringMemberFailed struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func BuildRegisteringMemberFailed(entityID string, failureInfo string, occurredAt time.Time) RegisteringMemberFailed {
	return RegisteringMemberFailed{EntityID: entityID, FailureInfo: failureInfo, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e RegisteringMemberFailed) IsEventType() string {
	return RegisteringMemberFailedEventType
}

func (e RegisteringMemberFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e RegisteringMemberFailed) IsErrorEvent() bool {
	return true
}

// DeactivatingMemberFailed records that deactivating a member was rejected.
type DeactivatingMemberFailed struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func BuildDeactivatingMemberFailed(entityID string, failureInfo string, occurredAt time.Time) DeactivatingMemberFailed {
	return DeactivatingMemberFailed{EntityID: entityID, FailureInfo: failureInfo, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e DeactivatingMemberFailed) IsEventType() string {
	return DeactivatingMemberFailedEventType
}

func (e DeactivatingMemberFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e DeactivatingMemberFailed) IsErrorEvent() bool {
	return true
}

// AddingCatalogItemFailed records that adding a catalog item was rejected.
type AddingCatalogItemFailed struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func BuildAddingCatalogItemFailed(entityID string, failureInfo string, occurredAt time.Time) AddingCatalogItemFailed {
	return AddingCatalogItemFailed{EntityID: entityID, FailureInfo: failureInfo, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e AddingCatalogItemFailed) IsEventType() string {
	return AddingCatalogItemFailedEventType
}

func (e AddingCatalogItemFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e AddingCatalogItemFailed) IsErrorEvent() bool {
	return true
}

// RegisteringCopyFailed records that registering a copy was rejected.
type RegisteringCopyFailed struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func BuildRegisteringCopyFailed(entityID string, failureInfo string, occurredAt time.Time) RegisteringCopyFailed {
	return RegisteringCopyFailed{EntityID: entityID, FailureInfo: failureInfo, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e RegisteringCopyFailed) IsEventType() string {
	return RegisteringCopyFailedEventType
}

func (e RegisteringCopyFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e RegisteringCopyFailed) IsErrorEvent() bool {
	return true
}

// ChangingCopyStatusFailed records that an administrative status edit was rejected.
type ChangingCopyStatusFailed struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func BuildChangingCopyStatusFailed(entityID string, failureInfo string, occurredAt time.Time) ChangingCopyStatusFailed {
	return ChangingCopyStatusFailed{EntityID: entityID, FailureInfo: failureInfo, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e ChangingCopyStatusFailed) IsEventType() string {
	return ChangingCopyStatusFailedEventType
}

func (e ChangingCopyStatusFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e ChangingCopyStatusFailed) IsErrorEvent() bool {
	return true
}

// RemovingCopyFailed records that removing a copy was rejected.
type RemovingCopyFailed struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func BuildRemovingCopyFailed(entityID string, failureInfo string, occurredAt time.Time) RemovingCopyFailed {
	return RemovingCopyFailed{EntityID: entityID, FailureInfo: failureInfo, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e RemovingCopyFailed) IsEventType() string {
	return RemovingCopyFailedEventType
}

func (e RemovingCopyFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e RemovingCopyFailed) IsErrorEvent() bool {
	return true
}

// RequestingBorrowFailed records that a borrow request was rejected.
type RequestingBorrowFailed struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func BuildRequestingBorrowFailed(entityID string, failureInfo string, occurredAt time.Time) RequestingBorrowFailed {
	return RequestingBorrowFailed{EntityID: entityID, FailureInfo: failureInfo, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e RequestingBorrowFailed) IsEventType() string {
	return RequestingBorrowFailedEventType
}

func (e RequestingBorrowFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e RequestingBorrowFailed) IsErrorEvent() bool {
	return true
}

// ReviewingBorrowRequestFailed records that approving or disapproving a borrow request was rejected.
type ReviewingBorrowRequestFailed struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func BuildReviewingBorrowRequestFailed(entityID string, failureInfo string, occurredAt time.Time) ReviewingBorrowRequestFailed {
	return ReviewingBorrowRequestFailed{EntityID: entityID, FailureInfo: failureInfo, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e ReviewingBorrowRequestFailed) IsEventType() string {
	return ReviewingBorrowRequestFailedEventType
}

func (e ReviewingBorrowRequestFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e ReviewingBorrowRequestFailed) IsErrorEvent() bool {
	return true
}

// ReturningCopyFailed records that a return could not be accepted.
type ReturningCopyFailed struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func BuildReturningCopyFailed(entityID string, failureInfo string, occurredAt time.Time) ReturningCopyFailed {
	return ReturningCopyFailed{EntityID: entityID, FailureInfo: failureInfo, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e ReturningCopyFailed) IsEventType() string {
	return ReturningCopyFailedEventType
}

func (e ReturningCopyFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e ReturningCopyFailed) IsErrorEvent() bool {
	return true
}

// PayingPenaltyFailed records that a penalty payment was rejected.
type PayingPenaltyFailed struct {
	EntityID    string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

func BuildPayingPenaltyFailed(entityID string, failureInfo string, occurredAt time.Time) PayingPenaltyFailed {
	return PayingPenaltyFailed{EntityID: entityID, FailureInfo: failureInfo, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e PayingPenaltyFailed) IsEventType() string {
	return PayingPenaltyFailedEventType
}

func (e PayingPenaltyFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e PayingPenaltyFailed) IsErrorEvent() bool {
	return true
}
