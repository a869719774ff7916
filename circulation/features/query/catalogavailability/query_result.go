package catalogavailability

import (
	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/rules"
)

type ItemAvailability struct {
	ItemID          core.ItemIDString
	Kind            core.ItemKind
	Title           string
	Authors         []string
	Publisher       string
	PublicationYear int
	Copies          []rules.Copy
	Availability    rules.Availability
}

type CatalogAvailability struct {
	Items          []ItemAvailability
	Count          int
	SequenceNumber uint
}

func (r CatalogAvailability) GetSequenceNumber() uint {
	return r.SequenceNumber
}
