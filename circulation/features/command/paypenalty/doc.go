// Package paypenalty settles the penalty of a return.
//
// Business rules:
//
//	GIVEN: a return in settlement status Pending
//	WHEN:  PayPenalty is received with exactly the penalty amount
//	THEN:  PenaltyPaid is appended, the return becomes Paid and can no longer change;
//	       a Pending copy becomes Paid
//	ERROR: "loan was not returned"
//	ERROR: "nothing is owed for this return"
//	ERROR: "amount does not match the penalty"
//	IDEMPOTENCY: a paid return stays paid
package paypenalty
