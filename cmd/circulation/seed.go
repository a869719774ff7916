package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/command/addcatalogitem"
	"github.com/shelfwise/circulation/circulation/features/command/registercopy"
	"github.com/shelfwise/circulation/circulation/features/command/registermember"
	"github.com/shelfwise/circulation/circulation/features/command/requestborrow"
	"github.com/shelfwise/circulation/circulation/features/command/reviewborrowrequest"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/circulation/shell"
	"github.com/shelfwise/circulation/eventstore/memoryengine"
)

var ErrInvalidSeedPlan = errors.New("seed counts must not be negative and need at least one member and copy for loans")

type seedPlan struct {
	Members       int
	Items         int
	CopiesPerItem int
	Loans         int
	Start         time.Time
	Seed          uint64
}

func (p seedPlan) validate() error {
	if p.Members < 0 || p.Items < 0 || p.CopiesPerItem < 0 || p.Loans < 0 {
		return ErrInvalidSeedPlan
	}

	if p.Loans > 0 && (p.Members == 0 || p.Items*p.CopiesPerItem == 0) {
		return ErrInvalidSeedPlan
	}

	return nil
}

// seedSummary counts what was appended. Rejected commands are expected, e.g. a member
// over quota or an accession number already taken by an earlier seed run.
type seedSummary struct {
	Members      int
	Items        int
	Copies       int
	Requested    int
	Approved     int
	Disapproved  int
	Rejected     int
	StoreEvents  int `json:",omitempty"`
	FirstRequest time.Time
}

func newSeedCommand(a *app) *cobra.Command {
	plan := seedPlan{}
	var start string
	var inMemory bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the event store with members, catalog items, copies and loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if plan.Start, err = time.Parse(time.RFC3339, start); err != nil {
				return err
			}

			var es shell.EventStore
			var memory *memoryengine.EventStore

			if inMemory {
				memory = memoryengine.NewEventStore()
				es = memory
			} else {
				pg, closeStore, openErr := a.openEventStore(cmd.Context())
				if openErr != nil {
					return openErr
				}
				defer closeStore()
				es = pg
			}

			summary, err := seedLibrary(cmd.Context(), es, a.obs.Observer(), plan)
			if err != nil {
				return err
			}

			if memory != nil {
				summary.StoreEvents = memory.Len()
			}

			a.logger.Info("seeding finished",
				zap.Int("members", summary.Members),
				zap.Int("copies", summary.Copies),
				zap.Int("approved", summary.Approved),
				zap.Int("rejected", summary.Rejected),
			)

			return writeJSON(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().IntVar(&plan.Members, "members", 20, "members to register")
	cmd.Flags().IntVar(&plan.Items, "items", 10, "catalog items to add")
	cmd.Flags().IntVar(&plan.CopiesPerItem, "copies", 2, "copies per catalog item")
	cmd.Flags().IntVar(&plan.Loans, "loans", 15, "borrow requests to file")
	cmd.Flags().Uint64Var(&plan.Seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&start, "start", "2025-03-01T09:00:00Z", "time of the first event, RFC 3339")
	cmd.Flags().BoolVar(&inMemory, "in-memory", false, "seed a throwaway in-memory store instead of postgres")

	return cmd
}

//nolint:funlen
func seedLibrary(ctx context.Context, es shell.EventStore, observer shell.Observer, plan seedPlan) (seedSummary, error) {
	if err := plan.validate(); err != nil {
		return seedSummary{}, err
	}

	random := rand.New(rand.NewPCG(plan.Seed, plan.Seed))
	clock := plan.Start
	tick := func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	summary := seedSummary{}
	count := func(err error, counter *int) error {
		switch {
		case err == nil:
			*counter++
			return nil
		case errors.Is(err, core.ErrCommandRejected):
			summary.Rejected++
			return nil
		default:
			return err
		}
	}

	members := make([]uuid.UUID, plan.Members)
	for i := range members {
		members[i] = uuid.New()
		category := rules.CategoryStudent
		if i%4 == 3 {
			category = rules.CategoryFaculty
		}

		err := execute(ctx, registermember.NewCommandHandler(es), observer,
			registermember.BuildCommand(members[i], fmt.Sprintf("Member %04d", i+1), category, tick()))
		if err = count(err, &summary.Members); err != nil {
			return summary, err
		}
	}

	kinds := []core.ItemKind{core.ItemBook, core.ItemBook, core.ItemJournal, core.ItemThesis}
	copies := make([]uuid.UUID, 0, plan.Items*plan.CopiesPerItem)
	accessionNumber := 0

	for i := 0; i < plan.Items; i++ {
		itemID := uuid.New()
		err := execute(ctx, addcatalogitem.NewCommandHandler(es), observer,
			addcatalogitem.BuildCommand(itemID, kinds[i%len(kinds)], fmt.Sprintf("Title %04d", i+1),
				[]string{fmt.Sprintf("Author %03d", random.IntN(100)+1)}, "Seed Press", 1950+random.IntN(75), tick()))
		if err = count(err, &summary.Items); err != nil {
			return summary, err
		}

		for c := 0; c < plan.CopiesPerItem; c++ {
			copyID := uuid.New()
			accessionNumber++
			err = execute(ctx, registercopy.NewCommandHandler(es), observer,
				registercopy.BuildCommand(copyID, itemID, fmt.Sprintf("%06d", accessionNumber), "Stacks", tick()))
			if err = count(err, &summary.Copies); err != nil {
				return summary, err
			}

			copies = append(copies, copyID)
		}
	}

	for i := 0; i < plan.Loans; i++ {
		loanID := uuid.New()
		requestedAt := tick()
		if summary.FirstRequest.IsZero() {
			summary.FirstRequest = requestedAt
		}

		err := execute(ctx, requestborrow.NewCommandHandler(es), observer,
			requestborrow.BuildCommand(loanID, copies[random.IntN(len(copies))], members[random.IntN(len(members))], requestedAt))
		if errors.Is(err, core.ErrCommandRejected) {
			summary.Rejected++
			continue
		}

		if err != nil {
			return summary, err
		}

		summary.Requested++

		decision, counter := rules.ApprovalApproved, &summary.Approved
		if random.IntN(4) == 0 {
			decision, counter = rules.ApprovalDisapproved, &summary.Disapproved
		}

		err = execute(ctx, reviewborrowrequest.NewCommandHandler(es), observer,
			reviewborrowrequest.BuildCommand(loanID, decision, "seeded", tick()))
		if err = count(err, counter); err != nil {
			return summary, err
		}
	}

	return summary, nil
}
