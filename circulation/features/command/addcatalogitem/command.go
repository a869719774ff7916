package addcatalogitem

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/circulation/circulation/core"
)

const commandType = "AddCatalogItem"

type Command struct {
	ItemID          uuid.UUID
	Kind            core.ItemKind
	Title           string
	Authors         []string
	Publisher       string
	PublicationYear int
	OccurredAt      core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(
	itemID uuid.UUID,
	kind core.ItemKind,
	title string,
	authors []string,
	publisher string,
	publicationYear int,
	occurredAt time.Time,
) Command {

	return Command{
		ItemID:          itemID,
		Kind:            kind,
		Title:           title,
		Authors:         authors,
		Publisher:       publisher,
		PublicationYear: publicationYear,
		OccurredAt:      core.ToOccurredAt(occurredAt),
	}
}
