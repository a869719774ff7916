// Package spies provides recording implementations of the eventstore observability interfaces for tests.
package spies
