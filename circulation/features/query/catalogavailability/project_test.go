package catalogavailability_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/query/catalogavailability"
	"github.com/shelfwise/circulation/circulation/rules"
)

func Test_Project_DerivesAvailabilityFromCopies(t *testing.T) {
	// arrange
	now := time.Now()
	withCopies, withoutCopies := uuid.New(), uuid.New()
	lent, onShelf, removed := uuid.New(), uuid.New(), uuid.New()
	memberID, loanID := uuid.New(), uuid.New()

	history := core.DomainEvents{
		core.BuildCatalogItemAdded(withCopies, core.ItemBook, "TAOCP", []string{"Knuth"}, "Addison-Wesley", 1968, now),
		core.BuildCatalogItemAdded(withoutCopies, core.ItemThesis, "Unshelved", nil, "", 2001, now),
		core.BuildCopyRegistered(lent, withCopies, "000001", "A1", now),
		core.BuildCopyRegistered(onShelf, withCopies, "000002", "A1", now),
		core.BuildCopyRegistered(removed, withCopies, "000003", "A1", now),
		core.BuildCopyRemoved(removed, withCopies, "000003", now),
		core.BuildBorrowRequested(loanID, lent, withCopies, memberID, rules.CategoryFaculty, now, now),
		core.BuildBorrowApproved(loanID, lent, withCopies, memberID, now, now),
	}

	// act
	result := catalogavailability.Project(history, catalogavailability.BuildQueryForWholeCatalog(), 8)

	// assert
	require.Equal(t, 2, result.Count)
	assert.Equal(t, uint(8), result.GetSequenceNumber())

	first := result.Items[0]
	assert.Equal(t, "TAOCP", first.Title)
	require.Len(t, first.Copies, 2)
	assert.Equal(t, rules.CopyBorrowed, first.Copies[0].Status)
	assert.Equal(t, lent, first.Copies[0].CopyID)
	assert.Equal(t, rules.Availability{Available: 1, Total: 2, Label: rules.LabelAvailable, Borrowable: true}, first.Availability)

	second := result.Items[1]
	assert.Empty(t, second.Copies)
	assert.Equal(t, rules.LabelNoCopies, second.Availability.Label)
	assert.False(t, second.Availability.Borrowable)
}

func Test_Project_AllCopiesOut_IsBorrowed(t *testing.T) {
	now := time.Now()
	itemID, copyID := uuid.New(), uuid.New()
	history := core.DomainEvents{
		core.BuildCatalogItemAdded(itemID, core.ItemJournal, "Nature", nil, "", 1869, now),
		core.BuildCopyRegistered(copyID, itemID, "000009", "", now),
		core.BuildCopyStatusChanged(copyID, itemID, rules.CopyAvailable, rules.CopyUnderRepair, now),
	}

	result := catalogavailability.Project(history, catalogavailability.BuildQuery(itemID), 3)

	require.Equal(t, 1, result.Count)
	assert.Equal(t, rules.LabelBorrowed, result.Items[0].Availability.Label)
	assert.Equal(t, 0, result.Items[0].Availability.Available)
}
