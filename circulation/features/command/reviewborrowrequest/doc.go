// Package reviewborrowrequest is the librarian's decision on a pending borrow request.
//
// Business rules:
//
//	GIVEN: a borrow request in approval status Pending
//	WHEN:  ReviewBorrowRequest is received with Approved
//	THEN:  BorrowApproved is appended, keeping the due date fixed at request time; the copy becomes Borrowed
//	WHEN:  ReviewBorrowRequest is received with Disapproved
//	THEN:  BorrowDisapproved is appended and the copy is Available again
//	ERROR: "borrow request does not exist"
//	ERROR: "decision must be Approved or Disapproved"
//	ERROR: the request was already reviewed with the other decision
//	IDEMPOTENCY: repeating the decision that was taken changes nothing
package reviewborrowrequest
