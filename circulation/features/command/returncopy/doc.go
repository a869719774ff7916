// Package returncopy records the return of a borrowed copy and settles it.
//
// Business rules:
//
//	GIVEN: an approved loan that was not returned yet
//	WHEN:  ReturnCopy is received with the condition of the copy
//	THEN:  CopyReturned is appended with the days overdue, the penalty and the settlement status
//	       (Pending when something is owed, Returned otherwise)
//	THEN:  the copy becomes Available (Good), Under Repair (Damaged), or Pending/Lost (Lost)
//	ERROR: "loan does not exist"
//	ERROR: "loan was not approved"
//	ERROR: the condition is not Good, Damaged or Lost
//	IDEMPOTENCY: a returned loan is settled once
package returncopy
