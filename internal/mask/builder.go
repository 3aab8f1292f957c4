package mask

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/lexstat/internal/registry"
)

// narrowLimit is the widest selection the packed uint64 fold handles.
const narrowLimit = 64

// Build folds the selected sources, in ordinal order, into a frequency
// table.
//
// Build never partially builds: every source's availability is verified
// up front and all unavailable sources are reported together, since a
// table missing one source's contribution silently understates every
// intersection involving it. Source word sets are read concurrently,
// one membership set per source, and merged by bitwise OR afterwards;
// OR is commutative and associative, so the merge order cannot affect
// the table.
func Build(sources []registry.WordSource) (Table, error) {
	if len(sources) == 0 {
		return nil, errors.New("mask: at least one source is required")
	}
	if err := registry.CheckAvailable(sources); err != nil {
		return nil, err
	}

	members := make([]map[string]struct{}, len(sources))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		g.Go(func() error {
			set, err := readSet(src)
			if err != nil {
				return err
			}
			members[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(members) <= narrowLimit {
		return foldNarrow(members), nil
	}
	return foldWide(members), nil
}

// readSet drains one source into a membership set, collapsing any
// duplicates within the source.
func readSet(src registry.WordSource) (map[string]struct{}, error) {
	it, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("mask: %w", err)
	}
	defer it.Close()

	set := make(map[string]struct{})
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		set[w] = struct{}{}
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("mask: reading source %s: %w", src.Name(), err)
	}
	return set, nil
}

// foldNarrow accumulates masks as packed uint64 values.
func foldNarrow(members []map[string]struct{}) Table {
	acc := make(map[string]uint64)
	for i, set := range members {
		bit := uint64(1) << uint(i)
		for w := range set {
			acc[w] |= bit
		}
	}

	table := make(Table)
	for _, m := range acc {
		table[FromUint64(m)]++
	}
	return table
}

// foldWide accumulates masks as bit sets for selections past 64
// sources.
func foldWide(members []map[string]struct{}) Table {
	n := uint(len(members))
	acc := make(map[string]*bitset.BitSet)
	for i, set := range members {
		for w := range set {
			b := acc[w]
			if b == nil {
				b = bitset.New(n)
				acc[w] = b
			}
			b.Set(uint(i))
		}
	}

	table := make(Table)
	for _, b := range acc {
		table[FromBitSet(b)]++
	}
	return table
}
