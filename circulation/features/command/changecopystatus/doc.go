// Package changecopystatus is the administrative status edit of a copy, e.g. marking it lost
// or sending it to repair.
//
// Business rules:
//
//	GIVEN: a registered copy that is not removed
//	WHEN:  ChangeCopyStatus is received
//	THEN:  CopyStatusChanged is appended with the previous and the new status
//	ERROR: "copy does not exist"
//	ERROR: "copy is held by a pending borrow request"
//	ERROR: Borrowed is only reached by lending, Paid and Pending only by a settlement
//	ERROR: a Borrowed copy comes back by a return, a Paid or Pending copy is locked
//	IDEMPOTENCY: a copy that already has the status stays as it is
package changecopystatus
