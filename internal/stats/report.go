package stats

import (
	"slices"

	"github.com/roach88/lexstat/internal/mask"
)

// DegreeBucket aggregates all masks of one degree: how many distinct
// masks have that many member sources, and how many words they cover in
// total.
type DegreeBucket struct {
	Degree int `json:"degree"`
	Masks  int `json:"masks"`
	Words  int `json:"words"`
}

// DegreeHistogram classifies the table by degree: for each d in 1..N,
// the count of distinct masks with that degree and the sum of their
// word counts. Buckets with no masks are present with zero counts, so
// the result always has N entries.
func (a *Aggregates) DegreeHistogram() []DegreeBucket {
	buckets := make([]DegreeBucket, len(a.names))
	for i := range buckets {
		buckets[i].Degree = i + 1
	}
	for m, c := range a.table {
		b := &buckets[m.Degree()-1]
		b.Masks++
		b.Words += c
	}
	return buckets
}

// MaskCount pairs a mask with its distinct-word count.
type MaskCount struct {
	Mask  mask.Mask
	Words int
}

// TopIntersections returns the k largest masks by word count, ties
// broken by ascending mask value so the ordering is reproducible.
// k <= 0 means all observed masks.
func (a *Aggregates) TopIntersections(k int) []MaskCount {
	out := make([]MaskCount, 0, len(a.table))
	for m, c := range a.table {
		out = append(out, MaskCount{Mask: m, Words: c})
	}
	slices.SortFunc(out, func(x, y MaskCount) int {
		if x.Words != y.Words {
			return y.Words - x.Words
		}
		return mask.Compare(x.Mask, y.Mask)
	})
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out
}

// PairwiseRow reports every pairwise metric for one ordered source
// pair.
type PairwiseRow struct {
	A             string  `json:"a"`
	B             string  `json:"b"`
	Intersection  int     `json:"intersection"`
	Jaccard       float64 `json:"jaccard"`
	Overlap       float64 `json:"overlap"`
	ContainmentAB float64 `json:"containment_a_in_b"`
	ContainmentBA float64 `json:"containment_b_in_a"`
}

// PairwiseRows computes all pairwise metrics for every unordered source
// pair, in ordinal order. Fails the precondition with fewer than two
// sources.
func (a *Aggregates) PairwiseRows() ([]PairwiseRow, error) {
	if len(a.names) < 2 {
		return nil, ErrPairwiseNeedsTwo
	}
	var rows []PairwiseRow
	for i := 0; i < len(a.names); i++ {
		for j := i + 1; j < len(a.names); j++ {
			rows = append(rows, PairwiseRow{
				A:             a.names[i],
				B:             a.names[j],
				Intersection:  a.Pair(i, j),
				Jaccard:       a.Jaccard(i, j),
				Overlap:       a.Overlap(i, j),
				ContainmentAB: a.Containment(i, j),
				ContainmentBA: a.Containment(j, i),
			})
		}
	}
	return rows, nil
}
