// Package deactivatemember withdraws the library privileges of a member.
//
// Business rules:
//
//	GIVEN: a registered member
//	WHEN:  DeactivateMember is received
//	THEN:  MemberDeactivated is appended
//	ERROR: "member is not registered"
//	ERROR: "member has open loans" while a borrow request is pending or a copy is out
//	ERROR: "member has unpaid penalties"
//	IDEMPOTENCY: an already deactivated member stays deactivated
package deactivatemember
