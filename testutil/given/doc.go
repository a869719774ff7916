// Package given arranges event histories for tests: domain events are turned into storable
// events and appended to any engine.
package given
