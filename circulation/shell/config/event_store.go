package config

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shelfwise/circulation/eventstore/postgresengine"
)

// OpenEventStore connects with the configured driver and returns the store together with a
// function releasing its connections. A replica DSN is only honored by the pgx driver.
func OpenEventStore(
	ctx context.Context,
	cfg Config,
	options ...postgresengine.Option,
) (*postgresengine.EventStore, func(), error) {
	if err := cfg.RequireDSN(); err != nil {
		return nil, nil, err
	}

	options = append([]postgresengine.Option{postgresengine.WithTableName(cfg.EventsTable)}, options...)

	switch cfg.Driver {
	case DriverPGX:
		return openWithPGX(ctx, cfg, options)

	case DriverSQL:
		db, err := NewSQLDB(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}

		es, err := postgresengine.NewEventStoreFromSQLDB(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return es, func() { _ = db.Close() }, nil

	case DriverSQLX:
		db, err := NewSQLXDB(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}

		es, err := postgresengine.NewEventStoreFromSQLX(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return es, func() { _ = db.Close() }, nil
	}

	return nil, nil, errors.Join(ErrUnknownDriver, errors.New(string(cfg.Driver)))
}

func openWithPGX(
	ctx context.Context,
	cfg Config,
	options []postgresengine.Option,
) (*postgresengine.EventStore, func(), error) {
	primary, err := NewPGXPool(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}

	var replica *pgxpool.Pool
	if cfg.ReplicaDSN != "" {
		if replica, err = NewPGXPool(ctx, cfg.ReplicaDSN); err != nil {
			primary.Close()
			return nil, nil, err
		}
	}

	closeAll := func() {
		primary.Close()
		if replica != nil {
			replica.Close()
		}
	}

	es, err := postgresengine.NewEventStoreFromPGXPoolAndReplica(primary, replica, options...)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	return es, closeAll, nil
}
