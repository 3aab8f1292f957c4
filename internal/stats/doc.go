// Package stats derives overlap aggregates from a frequency table.
//
// Everything here is a pure function of the table and the ordered
// source names: no I/O, no stored derived state. This keeps the math
// independently testable from the table-building step, and means two
// calls over the same table always agree.
//
// Ratio metrics with a zero denominator are defined as 0, never an
// error: an empty source trivially overlaps nothing. Pairwise views,
// by contrast, require at least two sources and fail the precondition
// otherwise.
package stats
