// Package registercopy shelves a physical copy of a catalog item.
//
// Business rules:
//
//	GIVEN: a catalog item and a 6 digit accession number nobody else holds
//	WHEN:  RegisterCopy is received
//	THEN:  CopyRegistered is appended and the copy is Available
//	ERROR: "accession number must be a 6 digit number"
//	ERROR: "catalog item does not exist"
//	ERROR: "accession number already in use"
//	ERROR: the copy is already registered under another accession number
//	IDEMPOTENCY: the same copy with the same accession number is not registered twice
//
// An accession number is released when its copy is removed.
package registercopy
