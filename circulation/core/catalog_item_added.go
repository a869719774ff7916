package core

import (
	"time"

	"github.com/google/uuid"
)

const CatalogItemAddedEventType = "CatalogItemAdded"

// ItemKind distinguishes the kinds of titles the library catalogs.
type ItemKind string

const (
	ItemBook    ItemKind = "Book"
	ItemJournal ItemKind = "Journal"
	ItemThesis  ItemKind = "Thesis"
)

// CatalogItemAdded is recorded when a title enters the catalog. Copies are registered separately.
type CatalogItemAdded struct {
	ItemID          ItemIDString
	Kind            ItemKind
	Title           string
	Authors         []string
	Publisher       string
	PublicationYear int
	OccurredAt      OccurredAtTS
}

func BuildCatalogItemAdded(
	itemID uuid.UUID,
	kind ItemKind,
	title string,
	authors []string,
	publisher string,
	publicationYear int,
	occurredAt time.Time,
) CatalogItemAdded {

	return CatalogItemAdded{
		ItemID:          itemID.String(),
		Kind:            kind,
		Title:           title,
		Authors:         append([]string(nil), authors...),
		Publisher:       publisher,
		PublicationYear: publicationYear,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

func (e CatalogItemAdded) IsEventType() string {
	return CatalogItemAddedEventType
}

func (e CatalogItemAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e CatalogItemAdded) IsErrorEvent() bool {
	return false
}
