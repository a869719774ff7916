package pgtest

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shelfwise/circulation/circulation/shell/config"
	"github.com/shelfwise/circulation/circulation/shell/migrations"
	"github.com/shelfwise/circulation/eventstore/postgresengine"
)

const (
	envDSN     = "CIRCULATION_TEST_DSN"
	envAdapter = "ADAPTER_TYPE"

	typePGXPool = "pgx.pool"
	typeSQLDB   = "sql.db"
	typeSQLXDB  = "sqlx.db"

	setupTimeout = 10 * time.Second
)

// DSN returns the test database DSN or skips the test.
func DSN(t testing.TB) string {
	t.Helper()

	dsn := os.Getenv(envDSN)
	if dsn == "" {
		t.Skipf("%s not set, skipping postgres integration test", envDSN)
	}

	return dsn
}

// OpenEventStore returns a migrated store on the adapter chosen by ADAPTER_TYPE.
// Connections are closed when the test ends. Tests must isolate themselves by unique IDs;
// the table is shared and never truncated.
func OpenEventStore(t testing.TB, options ...postgresengine.Option) *postgresengine.EventStore {
	t.Helper()

	dsn := DSN(t)
	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	pool := migratedPool(t, ctx, dsn)

	switch strings.ToLower(os.Getenv(envAdapter)) {
	case typePGXPool, "":
		es, err := postgresengine.NewEventStoreFromPGXPool(pool, options...)
		require.NoError(t, err, "error creating event store")

		return es

	case typeSQLDB:
		db, err := config.NewSQLDB(ctx, dsn)
		require.NoError(t, err, "error connecting to DB in test setup")
		t.Cleanup(func() { _ = db.Close() })

		es, err := postgresengine.NewEventStoreFromSQLDB(db, options...)
		require.NoError(t, err, "error creating event store")

		return es

	case typeSQLXDB:
		db, err := config.NewSQLXDB(ctx, dsn)
		require.NoError(t, err, "error connecting to DB in test setup")
		t.Cleanup(func() { _ = db.Close() })

		es, err := postgresengine.NewEventStoreFromSQLX(db, options...)
		require.NoError(t, err, "error creating event store")

		return es

	default:
		t.Fatalf("unsupported %s: %q", envAdapter, os.Getenv(envAdapter))
		return nil
	}
}

// Pool returns a migrated pgx pool, e.g. for inspecting rows directly.
func Pool(t testing.TB) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	return migratedPool(t, ctx, DSN(t))
}

func migratedPool(t testing.TB, ctx context.Context, dsn string) *pgxpool.Pool {
	t.Helper()

	pool, err := config.NewPGXPool(ctx, dsn)
	require.NoError(t, err, "error connecting to DB pool in test setup")
	t.Cleanup(pool.Close)

	migrator, err := migrations.NewMigrator(pool, zap.NewNop())
	require.NoError(t, err, "error preparing migrations")
	defer func() { _ = migrator.Close() }()

	require.NoError(t, migrator.Up(ctx), "error applying migrations")

	return pool
}
