// Package core contains the domain events of library circulation and the DecisionResult
// returned by the Decide functions of the command features.
//
// Events are named after what happened in the library (BorrowRequested, CopyReturned,
// PenaltyPaid) rather than after table updates. Their ID fields are serialized under the
// same keys in every event ("MemberID", "CopyID", "ItemID", "LoanID", "AccessionNumber"),
// which is what the event store filters use as payload predicates.
package core
