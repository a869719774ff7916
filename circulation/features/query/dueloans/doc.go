// Package dueloans lists the approved loans that are due within a day or already overdue,
// with the penalty accrued so far. The reminders scan is built on it.
package dueloans
