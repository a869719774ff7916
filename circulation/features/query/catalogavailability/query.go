package catalogavailability

import (
	"github.com/google/uuid"
)

const queryType = "CatalogAvailability"

// Query selects one catalog item, or the whole catalog when ItemID is uuid.Nil.
type Query struct {
	ItemID uuid.UUID
}

func BuildQuery(itemID uuid.UUID) Query {
	return Query{ItemID: itemID}
}

func BuildQueryForWholeCatalog() Query {
	return Query{ItemID: uuid.Nil}
}

func (q Query) QueryType() string {
	return queryType
}
