// Package progress renders the placement engine's advisory progress
// callback as a single updating status line: fill percentage, current
// boundary size, and the peak boundary size observed so far.
//
// A Printer writes to any io.Writer. When the writer is a terminal the
// caller can enable in-place updating (each report clears and rewrites the
// same line); otherwise every report goes on its own line. Boundary sizes
// are formatted with locale-aware digit grouping, so a boundary of 12345
// pixels reads as "12,345" rather than a wall of digits.
//
// Printer.Report matches the engine's progress callback signature exactly
// and may be passed straight to placement.WithProgress; it never mutates
// engine state and never fails.
package progress
