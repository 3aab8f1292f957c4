package stats

import (
	"errors"
	"fmt"

	"github.com/roach88/lexstat/internal/mask"
)

// ErrPairwiseNeedsTwo is returned by pairwise views over a single
// source: multi-way overlap requires at least two sources.
var ErrPairwiseNeedsTwo = errors.New("stats: pairwise metrics require at least 2 sources")

// Aggregates answers overlap queries over one frequency table. The
// table and the ordered source names are the only state; every method
// recomputes from them on demand.
type Aggregates struct {
	names []string
	table mask.Table
}

// New wraps a frequency table and the ordered names of the sources it
// was built against. At least one source is required, and the table
// must not reference ordinals outside the name list.
func New(names []string, table mask.Table) (*Aggregates, error) {
	if len(names) == 0 {
		return nil, errors.New("stats: at least one source is required")
	}
	for m := range table {
		if ords := m.Ordinals(); len(ords) > 0 && ords[len(ords)-1] >= len(names) {
			return nil, fmt.Errorf("stats: mask %s references ordinal %d but only %d sources are named",
				m, ords[len(ords)-1], len(names))
		}
	}
	return &Aggregates{names: names, table: table}, nil
}

// SourceCount returns the number of sources.
func (a *Aggregates) SourceCount() int { return len(a.names) }

// Names returns the source names in ordinal order.
func (a *Aggregates) Names() []string { return a.names }

// Name returns the name of source ordinal i.
func (a *Aggregates) Name(i int) string { return a.names[i] }

// WordCount returns the union size: the sum of all table counts.
func (a *Aggregates) WordCount() int { return a.table.WordCount() }

// Total returns the number of distinct words in source i.
func (a *Aggregates) Total(i int) int {
	total := 0
	for m, c := range a.table {
		if m.Bit(i) {
			total += c
		}
	}
	return total
}

// Exclusive returns the number of words belonging to source i and no
// other selected source.
func (a *Aggregates) Exclusive(i int) int {
	return a.table[mask.Of(i)]
}

// Pair returns the number of words shared by sources i and j.
func (a *Aggregates) Pair(i, j int) int {
	n := 0
	for m, c := range a.table {
		if m.Bit(i) && m.Bit(j) {
			n += c
		}
	}
	return n
}

// Jaccard returns |i∩j| / |i∪j|, or 0 when both sources are empty.
func (a *Aggregates) Jaccard(i, j int) float64 {
	pair := a.Pair(i, j)
	denom := a.Total(i) + a.Total(j) - pair
	return ratio(pair, denom)
}

// Overlap returns the overlap coefficient |i∩j| / min(|i|, |j|), or 0
// when the smaller source is empty.
func (a *Aggregates) Overlap(i, j int) float64 {
	return ratio(a.Pair(i, j), min(a.Total(i), a.Total(j)))
}

// Containment returns |i∩j| / |i|: how much of source i is covered by
// source j. Asymmetric. 0 when source i is empty.
func (a *Aggregates) Containment(i, j int) float64 {
	return ratio(a.Pair(i, j), a.Total(i))
}

// Members returns the names of the sources a mask covers, in ordinal
// order.
func (a *Aggregates) Members(m mask.Mask) []string {
	ords := m.Ordinals()
	names := make([]string, len(ords))
	for i, o := range ords {
		names[i] = a.names[o]
	}
	return names
}

func ratio(num, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom)
}
