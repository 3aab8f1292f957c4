package stream

import (
	"errors"
	"fmt"

	"github.com/roach88/lexstat/internal/registry"
)

// unionIter streams the deduplicated union of the sources in selection
// order. Single pass, not restartable; the seen-set is the only state
// that grows with the corpus.
type unionIter struct {
	sources []registry.WordSource
	seen    map[string]struct{}
	cur     registry.WordIter
	idx     int
	err     error
}

func newUnionIter(sources []registry.WordSource) *unionIter {
	return &unionIter{sources: sources, seen: make(map[string]struct{})}
}

// Next returns the next previously-unseen word, or ok=false when every
// source is exhausted or a read failed. Check Err afterwards.
func (it *unionIter) Next() (string, bool) {
	for {
		if it.cur == nil {
			if it.err != nil || it.idx >= len(it.sources) {
				return "", false
			}
			cur, err := it.sources[it.idx].Open()
			if err != nil {
				it.err = err
				return "", false
			}
			it.cur = cur
		}

		w, ok := it.cur.Next()
		if !ok {
			if err := it.cur.Err(); err != nil {
				it.err = fmt.Errorf("reading source %s: %w", it.sources[it.idx].Name(), err)
			}
			it.cur.Close()
			it.cur = nil
			it.idx++
			continue
		}
		if _, dup := it.seen[w]; dup {
			continue
		}
		it.seen[w] = struct{}{}
		return w, true
	}
}

// Err returns the first error encountered while streaming, if any.
func (it *unionIter) Err() error { return it.err }

// Close releases the in-flight source on early exit.
func (it *unionIter) Close() error {
	if it.cur != nil {
		err := it.cur.Close()
		it.cur = nil
		return err
	}
	return nil
}

// SourceCount is one source's distinct-word count.
type SourceCount struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// UnionStats summarizes the selected sources: per-source distinct
// counts, the union size, and the cross-source duplicate count (sum of
// per-source counts minus the union).
type UnionStats struct {
	Sources    []SourceCount `json:"sources"`
	Union      int           `json:"union"`
	SumCounts  int           `json:"sum_counts"`
	Duplicates int           `json:"duplicates"`
}

// Union loads every selected source and computes union statistics. The
// result size is the answer, so this is the one query that fully
// materializes; time and space are O(total distinct words).
func Union(sources []registry.WordSource) (*UnionStats, error) {
	if err := registry.CheckAvailable(sources); err != nil {
		return nil, err
	}

	union := make(map[string]struct{})
	stats := &UnionStats{Sources: make([]SourceCount, 0, len(sources))}
	for _, src := range sources {
		set, err := readSet(src)
		if err != nil {
			return nil, err
		}
		stats.Sources = append(stats.Sources, SourceCount{Name: src.Name(), Words: len(set)})
		stats.SumCounts += len(set)
		for w := range set {
			union[w] = struct{}{}
		}
	}
	stats.Union = len(union)
	stats.Duplicates = stats.SumCounts - stats.Union
	return stats, nil
}

// Words collects the full deduplicated union, unsorted. Callers that
// only need a bounded answer should use Head, Sample or Search instead.
func Words(sources []registry.WordSource) ([]string, error) {
	if err := registry.CheckAvailable(sources); err != nil {
		return nil, err
	}

	it := newUnionIter(sources)
	defer it.Close()

	var words []string
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		words = append(words, w)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func readSet(src registry.WordSource) (map[string]struct{}, error) {
	it, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer it.Close()

	set := make(map[string]struct{})
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		set[w] = struct{}{}
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("reading source %s: %w", src.Name(), err)
	}
	return set, nil
}

var errNoSources = errors.New("stream: at least one source is required")
