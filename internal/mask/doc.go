// Package mask builds the membership-mask frequency table.
//
// For an ordered selection of N sources, each word in the union gets a
// mask with bit i set iff source i contains the word. The frequency
// table maps each realized mask to the number of distinct words holding
// exactly that mask. The table is sparse: only masks that occur are
// stored, never the full 2^N space, and mask zero never appears because
// masks exist only for words found in at least one source.
//
// The fold is a commutative, associative bitwise OR per word, so the
// table is identical for any permutation of the same selected sources.
// Build reads sources in parallel and merges the per-source membership
// sets afterwards; the merge order cannot affect the result.
//
// Masks are not limited to 64 sources: Mask is a minimal big-endian
// byte string, with a packed uint64 fold for the common narrow case and
// a bit-set fold beyond it.
package mask
