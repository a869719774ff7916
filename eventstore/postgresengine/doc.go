// Package postgresengine is the PostgreSQL engine for eventstore.
//
// All events live in one table. Reads are a single SELECT built from the Filter. Appends are a
// single INSERT ... SELECT guarded by a CTE that recomputes the max sequence number of the
// filtered stream, so the write only happens if nothing matching the filter was appended since
// the caller's Query. JSON payload predicates use the jsonb containment operator and profit from
// a GIN index on the payload column.
//
// pgxpool.Pool, *sql.DB and *sqlx.DB are supported:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresengine.NewEventStoreFromPGXPool(
//		pool,
//		postgresengine.WithTableName("events"),
//		postgresengine.WithLogger(logger),
//	)
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
package postgresengine
