// Package shell holds the imperative parts shared by all features: mapping between domain events and
// storable events, event metadata, retry with exponential backoff, handler results, and the
// logging, metrics and tracing helpers used by the observable wrappers.
package shell
