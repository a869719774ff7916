// Package config loads the circulation service configuration from the environment
// (optionally seeded from a .env file) and builds the infrastructure it describes:
// the zap logger, PostgreSQL connections for the pgx, database/sql and sqlx adapters,
// and the OpenTelemetry providers.
//
// Connection factories return errors instead of exiting, so the CLI decides how to fail.
package config
