// Package reminders scans for loans that are due within a day or overdue and hands a Notice
// for each of them to a Sink.
//
// Delivery beyond logging, e.g. email, is left to other Sink implementations.
package reminders
