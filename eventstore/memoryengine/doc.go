// Package memoryengine is an in-process eventstore engine with the same filter and
// optimistic concurrency semantics as postgresengine. It backs the demo command and
// the handler tests, which therefore need no database.
package memoryengine
