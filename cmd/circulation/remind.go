package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shelfwise/circulation/circulation/features/query/dueloans"
	"github.com/shelfwise/circulation/circulation/reminders"
	"github.com/shelfwise/circulation/circulation/shell"
	"github.com/shelfwise/circulation/circulation/shell/observable"
)

func newRemindCommand(a *app) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send due-soon and overdue notices on REMINDER_INTERVAL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			es, closeStore, err := a.openEventStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			scanner, err := a.newScanner(es)
			if err != nil {
				return err
			}

			if once {
				_, scanErr := scanner.Scan(cmd.Context())
				return scanErr
			}

			return a.runScheduler(cmd.Context(), scanner)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "run a single scan and exit")

	return cmd
}

func (a *app) newScanner(es shell.QueriesEvents) (*reminders.Scanner, error) {
	handler, err := dueloans.NewQueryHandler(es, a.cfg.Rates)
	if err != nil {
		return nil, err
	}

	observed, err := observable.NewQueryWrapper[dueloans.Query, dueloans.DueLoans](
		handler,
		observable.WithQueryObserver[dueloans.Query, dueloans.DueLoans](a.obs.Observer()),
	)
	if err != nil {
		return nil, err
	}

	return reminders.NewScanner(observed, reminders.NewLogSink(a.logger), a.logger), nil
}

func (a *app) runScheduler(ctx context.Context, scanner *reminders.Scanner) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler, err := reminders.NewScheduler(scanner, a.cfg.ReminderInterval, a.logger)
	if err != nil {
		return err
	}

	scheduler.Start(ctx)
	a.logger.Info("reminder scheduler started", zap.Duration("interval", a.cfg.ReminderInterval))

	<-ctx.Done()
	scheduler.Stop()
	<-scheduler.Done()

	a.logger.Info("reminder scheduler stopped")

	return nil
}
