// Package pgtest opens the postgres event store for integration tests.
//
// Tests using it are skipped unless CIRCULATION_TEST_DSN points at a PostgreSQL database.
// ADAPTER_TYPE selects the adapter: pgx.pool (default), sql.db or sqlx.db.
// The embedded migrations are applied before the store is handed out.
package pgtest
