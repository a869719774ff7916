// Package registermember gives a student or faculty member library privileges.
//
// Business rules:
//
//	GIVEN: a MemberID, a name, and a member category
//	WHEN:  RegisterMember is received
//	THEN:  MemberRegistered is appended with the booking quota of the category, unless one is given
//	ERROR: "member category is unspecified" if the category is not Student or Faculty
//	ERROR: "member name is empty"
//	IDEMPOTENCY: a member that is already registered stays as it is
package registermember
