// Package rules holds the circulation rules of the library as pure functions:
//
//   - LoanPolicy: MaxBorrowDays, ComputeDueDate, DaysRemaining
//   - AvailabilityAggregator: ComputeStatus
//   - ReturnSettlement: DaysOverdue, ComputeSeverity, ComputePenalty, ClassifyReturnStatus
//
// Nothing in here does I/O, reads the clock, or keeps state, so every function can be called
// from command deciders, projections, and background jobs alike. Status values are closed
// types; free-form strings are parsed at the boundary with the Parse functions.
package rules
