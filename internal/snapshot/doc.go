// Package snapshot serializes a frequency table to a SQLite file.
//
// The masks table is the source of truth for every derived metric, so a
// snapshot preserves exact mask->count pairs, and it records the source
// name-to-ordinal mapping the masks were built against; masks are
// meaningless without it. Snapshots are an export for downstream tools
// (reporting, plotting); the engine itself never reads one back to skip
// recomputation.
package snapshot
