package stream

import (
	"math/rand/v2"

	"github.com/roach88/lexstat/internal/registry"
)

// Sample returns k words drawn uniformly at random from the
// deduplicated union, by reservoir sampling: the i-th distinct word
// (1-indexed) lands directly in the reservoir while i <= k; afterwards
// a uniform j in [1, i] replaces slot j when j <= k. Every word seen so
// far therefore sits in the reservoir with probability exactly k/i at
// step i, and memory never exceeds k slots plus the dedup seen-set.
//
// The same seed over the same selection reproduces the same sample;
// callers wanting non-reproducible output must supply their own
// entropy as the seed.
func Sample(sources []registry.WordSource, k int, seed uint64) ([]string, error) {
	if len(sources) == 0 {
		return nil, errNoSources
	}
	if err := registry.CheckAvailable(sources); err != nil {
		return nil, err
	}
	if k <= 0 {
		return []string{}, nil
	}

	rng := rand.New(rand.NewPCG(seed, 0))

	it := newUnionIter(sources)
	defer it.Close()

	reservoir := make([]string, 0, k)
	i := 0
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		i++
		if i <= k {
			reservoir = append(reservoir, w)
			continue
		}
		if j := rng.IntN(i) + 1; j <= k {
			reservoir[j-1] = w
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return reservoir, nil
}
