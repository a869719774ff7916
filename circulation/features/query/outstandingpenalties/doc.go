// Package outstandingpenalties lists the returns whose penalty is still unpaid, for one member
// or for the whole library.
package outstandingpenalties
