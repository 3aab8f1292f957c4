package stream

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lexstat/internal/registry"
)

func TestSearchSubstringScenario(t *testing.T) {
	// Substring 丙 over the two-source corpus matches the shared word
	// and source A's exclusive word, sorted.
	got, err := Search(twoSources(), Predicate{Contains: "丙"}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"丙丁戊", "甲乙丙"}, got)
}

func TestSearchRegex(t *testing.T) {
	sources := []registry.WordSource{
		registry.StaticSource{SourceName: "s", Words: []string{"aa", "abc", "zz", "b"}},
	}

	got, err := Search(sources, Predicate{Regex: regexp.MustCompile("^..$")}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "zz"}, got)
}

func TestSearchLimitShortCircuits(t *testing.T) {
	read := 0
	first := trackingSource{name: "first", words: []string{"m1", "m2", "m3", "x"}, read: &read}
	second := trackingSource{name: "second", words: []string{"m4", "m5"}, read: &read}

	got, err := Search([]registry.WordSource{first, second}, Predicate{Contains: "m"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, got)
	assert.Equal(t, 2, read, "reading must stop at the limit, not drain the corpus")
}

func TestSearchUnbounded(t *testing.T) {
	got, err := Search(twoSources(), Predicate{Contains: "丁"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"丙丁戊"}, got)
}

func TestSearchDeduplicates(t *testing.T) {
	sources := []registry.WordSource{
		registry.StaticSource{SourceName: "a", Words: []string{"hit"}},
		registry.StaticSource{SourceName: "b", Words: []string{"hit"}},
	}
	got, err := Search(sources, Predicate{Contains: "hit"}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"hit"}, got)
}

func TestSearchPredicateValidation(t *testing.T) {
	testCases := []struct {
		name string
		pred Predicate
	}{
		{"neither", Predicate{}},
		{"both", Predicate{Contains: "x", Regex: regexp.MustCompile("x")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Search(twoSources(), tc.pred, 10)
			assert.ErrorIs(t, err, ErrPredicate)
		})
	}
}

// trackingSource counts words handed out across all its iterators.
type trackingSource struct {
	name  string
	words []string
	read  *int
}

func (s trackingSource) Name() string { return s.name }

func (s trackingSource) Open() (registry.WordIter, error) {
	return &trackingIter{words: s.words, read: s.read}, nil
}

type trackingIter struct {
	words []string
	pos   int
	read  *int
}

func (it *trackingIter) Next() (string, bool) {
	if it.pos >= len(it.words) {
		return "", false
	}
	w := it.words[it.pos]
	it.pos++
	*it.read += 1
	return w, true
}

func (it *trackingIter) Err() error   { return nil }
func (it *trackingIter) Close() error { return nil }
