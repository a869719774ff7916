// Package requestborrow opens a borrow request for one copy.
//
// Business rules:
//
//	GIVEN: an active member below their booking quota and without unpaid penalties,
//	       and an Available copy
//	WHEN:  RequestBorrow is received
//	THEN:  BorrowRequested is appended with the due date of the member's category
//	       and the copy becomes Reserved
//	ERROR: "member is not registered", "member is deactivated"
//	ERROR: "copy does not exist", "copy is not available"
//	ERROR: "booking quota reached"
//	ERROR: "member has an unpaid penalty"
//	ERROR: the LoanID is taken by a request for another member or copy
//	IDEMPOTENCY: the same LoanID for the same member and copy is requested once
//
// Pending and approved loans count against the booking quota.
package requestborrow
