package core

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shelfwise/circulation/circulation/rules"
)

// MemberState is a member as of the replayed history.
type MemberState struct {
	MemberID     MemberIDString
	Name         string
	Category     rules.MemberCategory
	BookingQuota uint
	Deactivated  bool
}

// ItemState is a catalog item as of the replayed history.
type ItemState struct {
	ItemID          ItemIDString
	Kind            ItemKind
	Title           string
	Authors         []string
	Publisher       string
	PublicationYear int
}

// CopyState is a physical copy as of the replayed history. Status is derived from every event
// that touches the copy, never stored as a counter.
type CopyState struct {
	CopyID          CopyIDString
	ItemID          ItemIDString
	AccessionNumber AccessionNumberString
	Location        string
	Status          rules.CopyStatus
	Removed         bool
}

// LoanState is a borrow request and, once returned, its settlement.
type LoanState struct {
	LoanID      LoanIDString
	CopyID      CopyIDString
	ItemID      ItemIDString
	MemberID    MemberIDString
	Category    rules.MemberCategory
	RequestedAt time.Time
	DueAt       time.Time
	Approval    rules.ApprovalStatus

	Returned    bool
	ReturnedAt  time.Time
	Condition   rules.ReturnCondition
	DaysOverdue int
	Penalty     decimal.Decimal
	Settlement  rules.SettlementStatus
	PaidAt      time.Time
}

// IsOpen is true for a loan that still binds a copy: pending or approved and not yet returned.
func (l LoanState) IsOpen() bool {
	return !l.Returned && (l.Approval == rules.ApprovalPending || l.Approval == rules.ApprovalApproved)
}

// Ref parses the IDs of the loan back into a LoanRef.
func (l LoanState) Ref() (LoanRef, error) {
	ids, err := parseIDs(l.LoanID, l.CopyID, l.ItemID, l.MemberID)
	if err != nil {
		return LoanRef{}, err
	}

	return LoanRef{LoanID: ids[0], CopyID: ids[1], ItemID: ids[2], MemberID: ids[3]}, nil
}

// OwesPenalty is true for a return whose penalty has not been paid.
func (l LoanState) OwesPenalty() bool {
	return l.Returned && l.Settlement == rules.SettlementPending
}

// ItemUUID parses the ItemID of the copy.
func (c CopyState) ItemUUID() (uuid.UUID, error) {
	ids, err := parseIDs(c.ItemID)
	if err != nil {
		return uuid.Nil, err
	}

	return ids[0], nil
}

// View is the copy as availability sees it. A malformed CopyID maps to uuid.Nil.
func (c CopyState) View() rules.Copy {
	copyID, _ := uuid.Parse(c.CopyID)

	return rules.Copy{
		CopyID:          copyID,
		AccessionNumber: c.AccessionNumber,
		Status:          c.Status,
		Location:        c.Location,
	}
}

// ErrMalformedID means a stored event carries an ID that is not a UUID.
var ErrMalformedID = errors.New("malformed ID in history")

func parseIDs(ids ...string) ([]uuid.UUID, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedID, id)
		}
		parsed = append(parsed, u)
	}

	return parsed, nil
}

// State is what Replay derives from a history. Which entities it contains depends on the
// filter the history was queried with.
type State struct {
	Members map[MemberIDString]*MemberState
	Items   map[ItemIDString]*ItemState
	Copies  map[CopyIDString]*CopyState
	Loans   map[LoanIDString]*LoanState

	itemOrder []ItemIDString
	copyOrder []CopyIDString
	loanOrder []LoanIDString
}

// Replay folds the history in order. Failure events are skipped.
func Replay(history DomainEvents) State {
	s := State{
		Members: make(map[MemberIDString]*MemberState),
		Items:   make(map[ItemIDString]*ItemState),
		Copies:  make(map[CopyIDString]*CopyState),
		Loans:   make(map[LoanIDString]*LoanState),
	}

	for _, event := range history {
		s.apply(event)
	}

	return s
}

//nolint:gocyclo,funlen // one case per event type
func (s *State) apply(event DomainEvent) {
	switch e := event.(type) {
	case MemberRegistered:
		if _, ok := s.Members[e.MemberID]; !ok {
			s.Members[e.MemberID] = &MemberState{
				MemberID:     e.MemberID,
				Name:         e.Name,
				Category:     e.Category,
				BookingQuota: e.BookingQuota,
			}
		}

	case MemberDeactivated:
		if m, ok := s.Members[e.MemberID]; ok {
			m.Deactivated = true
		}

	case CatalogItemAdded:
		if _, ok := s.Items[e.ItemID]; !ok {
			s.Items[e.ItemID] = &ItemState{
				ItemID:          e.ItemID,
				Kind:            e.Kind,
				Title:           e.Title,
				Authors:         e.Authors,
				Publisher:       e.Publisher,
				PublicationYear: e.PublicationYear,
			}
			s.itemOrder = append(s.itemOrder, e.ItemID)
		}

	case CopyRegistered:
		if _, ok := s.Copies[e.CopyID]; !ok {
			s.copyOrder = append(s.copyOrder, e.CopyID)
		}
		s.Copies[e.CopyID] = &CopyState{
			CopyID:          e.CopyID,
			ItemID:          e.ItemID,
			AccessionNumber: e.AccessionNumber,
			Location:        e.Location,
			Status:          rules.CopyAvailable,
		}

	case CopyStatusChanged:
		s.setCopyStatus(e.CopyID, e.To)

	case CopyRemoved:
		if c, ok := s.Copies[e.CopyID]; ok {
			c.Removed = true
		}

	case BorrowRequested:
		if _, ok := s.Loans[e.LoanID]; !ok {
			s.loanOrder = append(s.loanOrder, e.LoanID)
			s.Loans[e.LoanID] = &LoanState{
				LoanID:      e.LoanID,
				CopyID:      e.CopyID,
				ItemID:      e.ItemID,
				MemberID:    e.MemberID,
				Category:    e.Category,
				RequestedAt: e.OccurredAt,
				DueAt:       e.DueAt,
				Approval:    rules.ApprovalPending,
			}
		}
		s.setCopyStatus(e.CopyID, rules.CopyReserved)

	case BorrowApproved:
		loan := s.loan(e.LoanID, e.CopyID, e.ItemID, e.MemberID, e.DueAt)
		loan.Approval = rules.ApprovalApproved
		s.setCopyStatus(e.CopyID, rules.CopyBorrowed)

	case BorrowDisapproved:
		loan := s.loan(e.LoanID, e.CopyID, e.ItemID, e.MemberID, time.Time{})
		loan.Approval = rules.ApprovalDisapproved
		s.setCopyStatus(e.CopyID, rules.CopyAvailable)

	case CopyReturned:
		loan := s.loan(e.LoanID, e.CopyID, e.ItemID, e.MemberID, e.DueAt)
		loan.Approval = rules.ApprovalApproved
		loan.Returned = true
		loan.ReturnedAt = e.OccurredAt
		loan.Condition = e.Condition
		loan.DaysOverdue = e.DaysOverdue
		loan.Penalty = e.Penalty
		loan.Settlement = e.SettlementStatus
		s.setCopyStatus(e.CopyID, rules.CopyStatusAfterReturn(e.Condition, e.SettlementStatus))

	case PenaltyPaid:
		loan := s.loan(e.LoanID, e.CopyID, e.ItemID, e.MemberID, time.Time{})
		loan.Returned = true
		loan.Settlement = rules.SettlementPaid
		loan.PaidAt = e.OccurredAt
		if c, ok := s.Copies[e.CopyID]; ok {
			c.Status = rules.CopyStatusAfterPayment(c.Status)
		}
	}
}

// loan returns the loan, creating it from the event's IDs when the request itself was not queried.
func (s *State) loan(loanID LoanIDString, copyID CopyIDString, itemID ItemIDString, memberID MemberIDString, dueAt time.Time) *LoanState {
	loan, ok := s.Loans[loanID]
	if !ok {
		loan = &LoanState{LoanID: loanID, CopyID: copyID, ItemID: itemID, MemberID: memberID, DueAt: dueAt}
		s.Loans[loanID] = loan
		s.loanOrder = append(s.loanOrder, loanID)
	}

	return loan
}

func (s *State) setCopyStatus(copyID CopyIDString, status rules.CopyStatus) {
	if c, ok := s.Copies[copyID]; ok {
		c.Status = status
	}
}

// Member returns the member, if it was registered.
func (s State) Member(memberID MemberIDString) (MemberState, bool) {
	m, ok := s.Members[memberID]
	if !ok {
		return MemberState{}, false
	}

	return *m, true
}

// Copy returns the copy, if it was registered. Removed copies are returned too.
func (s State) Copy(copyID CopyIDString) (CopyState, bool) {
	c, ok := s.Copies[copyID]
	if !ok {
		return CopyState{}, false
	}

	return *c, true
}

func (s State) Loan(loanID LoanIDString) (LoanState, bool) {
	l, ok := s.Loans[loanID]
	if !ok {
		return LoanState{}, false
	}

	return *l, true
}

// CatalogItems returns the items in the order they were added.
func (s State) CatalogItems() []ItemState {
	items := make([]ItemState, 0, len(s.itemOrder))
	for _, id := range s.itemOrder {
		items = append(items, *s.Items[id])
	}

	return items
}

// CopiesOf returns the copies of an item that are not removed, in registration order.
func (s State) CopiesOf(itemID ItemIDString) []CopyState {
	copies := make([]CopyState, 0)
	for _, id := range s.copyOrder {
		if c := s.Copies[id]; c.ItemID == itemID && !c.Removed {
			copies = append(copies, *c)
		}
	}

	return copies
}

// CopyWithAccessionNumber finds the copy that currently holds the accession number.
func (s State) CopyWithAccessionNumber(accessionNumber AccessionNumberString) (CopyState, bool) {
	for _, id := range s.copyOrder {
		if c := s.Copies[id]; c.AccessionNumber == accessionNumber && !c.Removed {
			return *c, true
		}
	}

	return CopyState{}, false
}

// AllLoans returns every loan in request order.
func (s State) AllLoans() []LoanState {
	loans := make([]LoanState, 0, len(s.loanOrder))
	for _, id := range s.loanOrder {
		loans = append(loans, *s.Loans[id])
	}

	return loans
}

// LoansOf returns the loans of a member in request order.
func (s State) LoansOf(memberID MemberIDString) []LoanState {
	loans := make([]LoanState, 0)
	for _, loan := range s.AllLoans() {
		if loan.MemberID == memberID {
			loans = append(loans, loan)
		}
	}

	return loans
}

// OpenLoanCount counts loans that bind a copy, see LoanState.IsOpen.
func (s State) OpenLoanCount(memberID MemberIDString) int {
	count := 0
	for _, loan := range s.LoansOf(memberID) {
		if loan.IsOpen() {
			count++
		}
	}

	return count
}

// HasUnpaidPenalty reports whether any return of the member is still in settlement status Pending.
func (s State) HasUnpaidPenalty(memberID MemberIDString) bool {
	for _, loan := range s.LoansOf(memberID) {
		if loan.OwesPenalty() {
			return true
		}
	}

	return false
}

// PendingLoanFor returns the pending borrow request holding the copy, if any.
func (s State) PendingLoanFor(copyID CopyIDString) (LoanState, bool) {
	for _, loan := range s.AllLoans() {
		if loan.CopyID == copyID && !loan.Returned && loan.Approval == rules.ApprovalPending {
			return loan, true
		}
	}

	return LoanState{}, false
}

// SortLoansByDueDate orders loans by due date, then loan ID.
func SortLoansByDueDate(loans []LoanState) {
	sort.SliceStable(loans, func(i, j int) bool {
		if loans[i].DueAt.Equal(loans[j].DueAt) {
			return loans[i].LoanID < loans[j].LoanID
		}

		return loans[i].DueAt.Before(loans[j].DueAt)
	})
}

// SortLoansByReturnDate orders loans by return date. Loans returned at the same instant keep their order.
func SortLoansByReturnDate(loans []LoanState) {
	sort.SliceStable(loans, func(i, j int) bool {
		return loans[i].ReturnedAt.Before(loans[j].ReturnedAt)
	})
}
