package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shelfwise/circulation/circulation/core"
	"github.com/shelfwise/circulation/circulation/features/command/addcatalogitem"
	"github.com/shelfwise/circulation/circulation/features/command/paypenalty"
	"github.com/shelfwise/circulation/circulation/features/command/registercopy"
	"github.com/shelfwise/circulation/circulation/features/command/registermember"
	"github.com/shelfwise/circulation/circulation/features/command/requestborrow"
	"github.com/shelfwise/circulation/circulation/features/command/returncopy"
	"github.com/shelfwise/circulation/circulation/features/command/reviewborrowrequest"
	"github.com/shelfwise/circulation/circulation/features/query/catalogavailability"
	"github.com/shelfwise/circulation/circulation/features/query/memberloans"
	"github.com/shelfwise/circulation/circulation/features/query/outstandingpenalties"
	"github.com/shelfwise/circulation/circulation/rules"
	"github.com/shelfwise/circulation/circulation/shell"
	"github.com/shelfwise/circulation/circulation/shell/observable"
	"github.com/shelfwise/circulation/eventstore/memoryengine"
)

// demoReport is printed by the demo command.
type demoReport struct {
	Events          int
	Catalog         catalogavailability.CatalogAvailability
	WhileBorrowed   memberloans.MemberLoans
	BeforePayment   outstandingpenalties.OutstandingPenalties
	AfterPayment    outstandingpenalties.OutstandingPenalties
	MemberAfterward memberloans.MemberLoans
}

func newDemoCommand(a *app) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a late return and payment against an in-memory store and print the read models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requestedAt, err := time.Parse(time.RFC3339, start)
			if err != nil {
				return err
			}

			report, err := a.runDemo(cmd.Context(), requestedAt)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&start, "start", "2025-03-01T10:00:00Z", "time of the borrow request, RFC 3339")

	return cmd
}

// runDemo lends a copy to a student, takes it back three days late and settles the fine.
//
//nolint:funlen
func (a *app) runDemo(ctx context.Context, requestedAt time.Time) (demoReport, error) {
	store := memoryengine.NewEventStore(memoryengine.WithLogger(shell.NewZapLogger(a.logger)))
	observer := a.obs.Observer()
	memberID, itemID, loanID := uuid.New(), uuid.New(), uuid.New()
	firstCopy, secondCopy := uuid.New(), uuid.New()
	returnedAt := requestedAt.Add(5*24*time.Hour + 2*time.Hour)

	returnHandler, err := returncopy.NewCommandHandler(store, a.cfg.Rates)
	if err != nil {
		return demoReport{}, err
	}

	steps := []func() error{
		func() error {
			return execute(ctx, registermember.NewCommandHandler(store), observer,
				registermember.BuildCommand(memberID, "Ada Lovelace", rules.CategoryStudent, requestedAt))
		},
		func() error {
			return execute(ctx, addcatalogitem.NewCommandHandler(store), observer,
				addcatalogitem.BuildCommand(itemID, core.ItemBook, "The Art of Computer Programming",
					[]string{"Donald E. Knuth"}, "Addison-Wesley", 1968, requestedAt))
		},
		func() error {
			return execute(ctx, registercopy.NewCommandHandler(store), observer,
				registercopy.BuildCommand(firstCopy, itemID, "000001", "Stacks A", requestedAt))
		},
		func() error {
			return execute(ctx, registercopy.NewCommandHandler(store), observer,
				registercopy.BuildCommand(secondCopy, itemID, "000002", "Stacks A", requestedAt))
		},
		func() error {
			return execute(ctx, requestborrow.NewCommandHandler(store), observer,
				requestborrow.BuildCommand(loanID, firstCopy, memberID, requestedAt))
		},
		func() error {
			return execute(ctx, reviewborrowrequest.NewCommandHandler(store), observer,
				reviewborrowrequest.BuildCommand(loanID, rules.ApprovalApproved, "", requestedAt.Add(time.Hour)))
		},
	}

	for _, step := range steps {
		if err = step(); err != nil {
			return demoReport{}, err
		}
	}

	report := demoReport{}
	memberLoans := memberloans.NewQueryHandler(store)
	penalties := outstandingpenalties.NewQueryHandler(store)

	if report.WhileBorrowed, err = memberLoans.Handle(ctx, memberloans.BuildQuery(memberID, returnedAt)); err != nil {
		return demoReport{}, err
	}

	if err = execute(ctx, returnHandler, observer, returncopy.BuildCommand(loanID, rules.ConditionGood, returnedAt)); err != nil {
		return demoReport{}, err
	}

	if report.BeforePayment, err = penalties.Handle(ctx, outstandingpenalties.BuildQuery(memberID)); err != nil {
		return demoReport{}, err
	}

	err = execute(ctx, paypenalty.NewCommandHandler(store), observer,
		paypenalty.BuildCommand(loanID, report.BeforePayment.Total, "demo-receipt-1", returnedAt.Add(time.Minute)))
	if err != nil {
		return demoReport{}, err
	}

	if report.AfterPayment, err = penalties.Handle(ctx, outstandingpenalties.BuildQuery(memberID)); err != nil {
		return demoReport{}, err
	}

	if report.MemberAfterward, err = memberLoans.Handle(ctx, memberloans.BuildQuery(memberID, returnedAt)); err != nil {
		return demoReport{}, err
	}

	if report.Catalog, err = catalogavailability.NewQueryHandler(store).Handle(ctx, catalogavailability.BuildQuery(itemID)); err != nil {
		return demoReport{}, err
	}

	report.Events = store.Len()

	a.logger.Info("demo finished",
		zap.Int("events", report.Events),
		zap.String("penalty_paid", report.BeforePayment.Total.StringFixed(2)),
	)

	return report, nil
}

func execute[C shell.Command](ctx context.Context, handler shell.CommandHandler[C], observer shell.Observer, command C) error {
	wrapper, err := observable.NewCommandWrapper[C](handler, observable.WithCommandObserver[C](observer))
	if err != nil {
		return err
	}

	_, err = wrapper.Handle(ctx, command)

	return err
}
