package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/shelfwise/circulation/circulation/features/query/catalogavailability"
	"github.com/shelfwise/circulation/circulation/features/query/dueloans"
	"github.com/shelfwise/circulation/circulation/features/query/memberloans"
	"github.com/shelfwise/circulation/circulation/features/query/outstandingpenalties"
	"github.com/shelfwise/circulation/circulation/shell"
	"github.com/shelfwise/circulation/circulation/shell/observable"
)

func newReportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a read model as JSON",
	}

	var itemID, memberID, penaltiesMemberID, asOf, dueAsOf string

	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Availability of one item (--item) or the whole catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := parseOptionalID(itemID)
			if err != nil {
				return err
			}

			return a.withQueries(cmd, func(ctx context.Context, es shell.QueriesEvents) (any, error) {
				return runObserved[catalogavailability.Query, catalogavailability.CatalogAvailability](
					ctx, catalogavailability.NewQueryHandler(es), a.obs.Observer(), catalogavailability.BuildQuery(id),
				)
			})
		},
	}
	catalog.Flags().StringVar(&itemID, "item", "", "catalog item ID")

	member := &cobra.Command{
		Use:   "member",
		Short: "Open loans and settled returns of a member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(memberID)
			if err != nil {
				return fmt.Errorf("--id: %w", err)
			}

			at, err := parseAsOf(asOf)
			if err != nil {
				return err
			}

			return a.withQueries(cmd, func(ctx context.Context, es shell.QueriesEvents) (any, error) {
				return runObserved[memberloans.Query, memberloans.MemberLoans](
					ctx, memberloans.NewQueryHandler(es), a.obs.Observer(), memberloans.BuildQuery(id, at),
				)
			})
		},
	}
	member.Flags().StringVar(&memberID, "id", "", "member ID")
	member.Flags().StringVar(&asOf, "as-of", "", "evaluation time, RFC 3339 (default now)")
	_ = member.MarkFlagRequired("id")

	due := &cobra.Command{
		Use:   "due",
		Short: "Loans due within a day or overdue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, err := parseAsOf(dueAsOf)
			if err != nil {
				return err
			}

			return a.withQueries(cmd, func(ctx context.Context, es shell.QueriesEvents) (any, error) {
				handler, err := dueloans.NewQueryHandler(es, a.cfg.Rates)
				if err != nil {
					return nil, err
				}

				return runObserved[dueloans.Query, dueloans.DueLoans](ctx, handler, a.obs.Observer(), dueloans.BuildQuery(at))
			})
		},
	}
	due.Flags().StringVar(&dueAsOf, "as-of", "", "evaluation time, RFC 3339 (default now)")

	penalties := &cobra.Command{
		Use:   "penalties",
		Short: "Unpaid penalties of one member (--member) or all members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := parseOptionalID(penaltiesMemberID)
			if err != nil {
				return err
			}

			return a.withQueries(cmd, func(ctx context.Context, es shell.QueriesEvents) (any, error) {
				return runObserved[outstandingpenalties.Query, outstandingpenalties.OutstandingPenalties](
					ctx, outstandingpenalties.NewQueryHandler(es), a.obs.Observer(), outstandingpenalties.BuildQuery(id),
				)
			})
		},
	}
	penalties.Flags().StringVar(&penaltiesMemberID, "member", "", "member ID")

	cmd.AddCommand(catalog, member, due, penalties)

	return cmd
}

func (a *app) withQueries(cmd *cobra.Command, run func(context.Context, shell.QueriesEvents) (any, error)) error {
	es, closeStore, err := a.openEventStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := run(cmd.Context(), es)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), result)
}

// runObserved wraps handler for one call so every report is traced and measured.
func runObserved[Q shell.Query, R shell.QueryResult](
	ctx context.Context,
	handler shell.QueryHandler[Q, R],
	observer shell.Observer,
	query Q,
) (R, error) {
	wrapper, err := observable.NewQueryWrapper[Q, R](handler, observable.WithQueryObserver[Q, R](observer))
	if err != nil {
		var zero R
		return zero, err
	}

	return wrapper.Handle(ctx, query)
}

func writeJSON(w io.Writer, v any) error {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(out))

	return err
}

func parseOptionalID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}

	return uuid.Parse(raw)
}

func parseAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}

	return time.Parse(time.RFC3339, raw)
}
