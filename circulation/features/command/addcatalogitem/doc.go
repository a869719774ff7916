// Package addcatalogitem adds a book, journal or thesis to the catalog.
//
// Business rules:
//
//	GIVEN: an ItemID, an item kind, and a title
//	WHEN:  AddCatalogItem is received
//	THEN:  CatalogItemAdded is appended
//	ERROR: "title is empty"
//	ERROR: "item kind must be Book, Journal or Thesis"
//	IDEMPOTENCY: an item that was already added stays as it is
package addcatalogitem
