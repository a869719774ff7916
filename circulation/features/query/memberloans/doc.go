// Package memberloans shows one member's loans as of a date: open loans with the days remaining
// and their lateness, and settled returns with their penalty.
package memberloans
