// Package removecopy takes a copy out of circulation and releases its accession number.
//
// Business rules:
//
//	GIVEN: a registered copy that is Available, Lost, Under Repair or Paid
//	WHEN:  RemoveCopy is received
//	THEN:  CopyRemoved is appended
//	ERROR: "copy is reserved, on loan or awaiting payment"
//	IDEMPOTENCY: an unknown or already removed copy needs no removal
package removecopy
