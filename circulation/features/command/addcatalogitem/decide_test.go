package addcatalogitem_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/command/addcatalogitem"
)

func Test_Decide_Success(t *testing.T) {
	// arrange
	itemID := uuid.New()
	authors := []string{"Alfred Aho", "Jeffrey Ullman"}
	command := addcatalogitem.BuildCommand(itemID, core.ItemBook, "Compilers", authors, "Addison-Wesley", 1986, time.Now())

	// act
	result := addcatalogitem.Decide(nil, command)

	// assert
	require.NoError(t, result.HasError())
	added, ok := result.Event.(core.CatalogItemAdded)
	require.True(t, ok)
	assert.Equal(t, itemID.String(), added.ItemID)
	assert.Equal(t, authors, added.Authors)
	assert.Equal(t, 1986, added.PublicationYear)
}

func Test_Decide_Idempotent_WhenAlreadyAdded(t *testing.T) {
	itemID := uuid.New()
	history := core.DomainEvents{
		core.BuildCatalogItemAdded(itemID, core.ItemThesis, "On Lattices", nil, "", 2020, time.Now()),
	}

	result := addcatalogitem.Decide(history, addcatalogitem.BuildCommand(itemID, core.ItemThesis, "On Lattices", nil, "", 2020, time.Now()))

	assert.True(t, result.IsIdempotent())
}

func Test_Decide_BusinessErrors(t *testing.T) {
	tests := []struct {
		name     string
		kind     core.ItemKind
		title    string
		expected error
	}{
		{name: "empty title", kind: core.ItemJournal, title: " ", expected: addcatalogitem.ErrEmptyTitle},
		{name: "unknown kind", kind: core.ItemKind("Scroll"), title: "Dead Sea", expected: addcatalogitem.ErrUnknownItemKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command := addcatalogitem.BuildCommand(uuid.New(), tt.kind, tt.title, nil, "", 0, time.Now())

			result := addcatalogitem.Decide(nil, command)

			assert.ErrorIs(t, result.HasError(), tt.expected)
			assert.IsType(t, core.AddingCatalogItemFailed{}, result.Event)
		})
	}
}
