package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shelfwise/circulation/circulation/shell/config"
	"github.com/shelfwise/circulation/circulation/shell/migrations"
)

func newMigrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the events table schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
					return m.Up(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
					return m.Down(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
					v, err := m.Version(cmd.Context())
					if err != nil {
						return err
					}

					_, err = fmt.Fprintln(cmd.OutOrStdout(), v)

					return err
				})
			},
		},
	)

	return cmd
}

// withMigrator always uses a pgx pool; goose gets a database/sql view on it.
func (a *app) withMigrator(ctx context.Context, fn func(*migrations.Migrator) error) error {
	if err := a.cfg.RequireDSN(); err != nil {
		return err
	}

	if a.cfg.EventsTable != migrations.TableName {
		a.logger.Warn("migrations create the default table, EVENTS_TABLE differs",
			zap.String("migrated_table", migrations.TableName),
			zap.String("configured_table", a.cfg.EventsTable),
		)
	}

	pool, err := config.NewPGXPool(ctx, a.cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := migrations.NewMigrator(pool, a.logger)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	return fn(migrator)
}
