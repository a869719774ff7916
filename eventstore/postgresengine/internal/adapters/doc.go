// Package adapters hides the differences between pgxpool.Pool, *sql.DB and *sqlx.DB
// behind DBAdapter, so the engine only deals with plain SQL strings, rows, and results.
package adapters
