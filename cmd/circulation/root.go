package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shelfwise/circulation/circulation/shell/config"
	"github.com/shelfwise/circulation/eventstore/postgresengine"
)

// app carries what every subcommand needs. Tests preset cfg and logger.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	obs    *config.Observability
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "circulation",
		Short:         "Library circulation: loans, availability and return settlement",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
	}

	root.AddCommand(
		newMigrateCommand(a),
		newRemindCommand(a),
		newReportCommand(a),
		newDemoCommand(a),
		newSeedCommand(a),
	)

	return root
}

func (a *app) init(ctx context.Context) error {
	if a.logger == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := config.NewLogger(cfg.Environment)
		if err != nil {
			return err
		}

		a.cfg, a.logger = cfg, logger
	}

	obs, err := config.NewObservability(ctx, a.cfg.OTel, a.logger, version)
	if err != nil {
		return errors.Join(errors.New("set up observability"), err)
	}

	a.obs = obs

	return nil
}

// close may run before init finished; it is safe to call more than once.
func (a *app) close() {
	if a.obs != nil {
		if err := a.obs.Shutdown(); err != nil && a.logger != nil {
			a.logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
		a.obs = nil
	}

	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// openEventStore connects the postgres engine instrumented like the handlers.
func (a *app) openEventStore(ctx context.Context) (*postgresengine.EventStore, func(), error) {
	es, closeFn, err := config.OpenEventStore(ctx, a.cfg, a.obs.EventStoreOptions()...)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Info("event store connected",
		zap.String("driver", string(a.cfg.Driver)),
		zap.String("table", a.cfg.EventsTable),
		zap.Bool("replica", a.cfg.ReplicaDSN != ""),
	)

	return es, closeFn, nil
}
