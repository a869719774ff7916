// Package migrations applies the embedded goose migrations that create the events table
// used by the postgres event store.
package migrations
