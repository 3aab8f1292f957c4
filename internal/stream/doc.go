// Package stream answers corpus-inspection queries over the selected
// sources without materializing the full union when avoidable.
//
// Union is the one operation that legitimately loads everything: its
// answer is the union itself. Head keeps only a bounded selection
// structure (a size-N max-heap), Sample keeps only a K-slot reservoir,
// and Search stops reading as soon as the match limit is hit. All three
// share a single-pass deduplicating iterator over the sources in
// selection order.
//
// Lexicographic ordering here is byte-wise UTF-8 comparison, which for
// valid UTF-8 coincides with code-point order.
package stream
