package stream

import (
	"container/heap"
	"sort"

	"github.com/roach88/lexstat/internal/registry"
)

// wordHeap is a max-heap of the n smallest words seen so far; the root
// is the current worst candidate, evicted whenever a smaller word
// arrives.
type wordHeap []string

func (h wordHeap) Len() int           { return len(h) }
func (h wordHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h wordHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *wordHeap) Push(x any) { *h = append(*h, x.(string)) }

func (h *wordHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}

// Head returns the n lexicographically smallest distinct words across
// the selected sources, ascending. Ordering is byte-wise UTF-8
// comparison (code-point order for valid UTF-8).
//
// The union is streamed once through a bounded size-n heap, so the cost
// is O(M log n) for M total words instead of sorting the whole union.
func Head(sources []registry.WordSource, n int) ([]string, error) {
	if len(sources) == 0 {
		return nil, errNoSources
	}
	if err := registry.CheckAvailable(sources); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []string{}, nil
	}

	it := newUnionIter(sources)
	defer it.Close()

	h := make(wordHeap, 0, n)
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		switch {
		case len(h) < n:
			heap.Push(&h, w)
		case w < h[0]:
			h[0] = w
			heap.Fix(&h, 0)
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	out := []string(h)
	sort.Strings(out)
	return out, nil
}
