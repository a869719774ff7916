package rules

import "github.com/google/uuid"

// AvailabilityLabel is shown next to a catalog item.
type AvailabilityLabel string

const (
	LabelNoCopies  AvailabilityLabel = "No Copies"
	LabelAvailable AvailabilityLabel = "Available"
	LabelBorrowed  AvailabilityLabel = "Borrowed"
)

// Copy is the view of a copy that availability is computed from.
type Copy struct {
	CopyID          uuid.UUID
	AccessionNumber string
	Status          CopyStatus
	Location        string
}

// Availability of one catalog item. Available <= Total always holds.
type Availability struct {
	Available  int
	Total      int
	Label      AvailabilityLabel
	Borrowable bool
}

// ComputeStatus counts the available copies in a single pass and derives the label.
// It must be called with the current copies every time; the result is not meant to be stored.
func ComputeStatus(copies []Copy) Availability {
	available := 0
	for _, c := range copies {
		if c.Status == CopyAvailable {
			available++
		}
	}

	result := Availability{Available: available, Total: len(copies)}

	switch {
	case result.Total == 0:
		result.Label = LabelNoCopies
	case result.Available > 0:
		result.Label = LabelAvailable
		result.Borrowable = true
	default:
		result.Label = LabelBorrowed
	}

	return result
}
