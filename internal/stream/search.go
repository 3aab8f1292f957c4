package stream

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/roach88/lexstat/internal/registry"
)

// ErrPredicate is returned when a search supplies both or neither of a
// substring and a regular expression. Exactly one must be given.
var ErrPredicate = errors.New("stream: search requires exactly one of a substring or a regular expression")

// Predicate selects words during a search. Exactly one of Contains or
// Regex must be set.
type Predicate struct {
	Contains string
	Regex    *regexp.Regexp
}

func (p Predicate) validate() error {
	if (p.Contains != "") == (p.Regex != nil) {
		return ErrPredicate
	}
	return nil
}

func (p Predicate) match(w string) bool {
	if p.Regex != nil {
		return p.Regex.MatchString(w)
	}
	return strings.Contains(w, p.Contains)
}

// Search streams the deduplicated union in selection order, collecting
// words matching the predicate, and stops reading the remaining input
// as soon as limit matches are found. limit <= 0 means unbounded.
// Results are sorted for stable presentation; the matching itself never
// touches the rest of the corpus once the limit is hit.
func Search(sources []registry.WordSource, p Predicate, limit int) ([]string, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, errNoSources
	}
	if err := registry.CheckAvailable(sources); err != nil {
		return nil, err
	}

	it := newUnionIter(sources)
	defer it.Close()

	hits := []string{}
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		if !p.match(w) {
			continue
		}
		hits = append(hits, w)
		if limit > 0 && len(hits) >= limit {
			break
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	sort.Strings(hits)
	return hits, nil
}
