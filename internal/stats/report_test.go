package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lexstat/internal/mask"
)

func TestDegreeHistogram(t *testing.T) {
	agg, err := New([]string{"a", "b", "c"}, mask.Table{
		mask.Of(0):       5,
		mask.Of(2):       2,
		mask.Of(0, 1):    3,
		mask.Of(0, 1, 2): 1,
	})
	require.NoError(t, err)

	assert.Equal(t, []DegreeBucket{
		{Degree: 1, Masks: 2, Words: 7},
		{Degree: 2, Masks: 1, Words: 3},
		{Degree: 3, Masks: 1, Words: 1},
	}, agg.DegreeHistogram())
}

func TestDegreeHistogramKeepsEmptyBuckets(t *testing.T) {
	agg, err := New([]string{"a", "b", "c"}, mask.Table{mask.Of(0, 1, 2): 9})
	require.NoError(t, err)

	hist := agg.DegreeHistogram()
	require.Len(t, hist, 3)
	assert.Equal(t, DegreeBucket{Degree: 1}, hist[0])
	assert.Equal(t, DegreeBucket{Degree: 2}, hist[1])
	assert.Equal(t, DegreeBucket{Degree: 3, Masks: 1, Words: 9}, hist[2])
}

func TestTopIntersections(t *testing.T) {
	agg, err := New([]string{"a", "b", "c"}, mask.Table{
		mask.Of(0):    5,
		mask.Of(1):    5, // ties with Of(0); larger mask value sorts later
		mask.Of(0, 1): 9,
		mask.Of(2):    1,
	})
	require.NoError(t, err)

	all := agg.TopIntersections(0)
	require.Len(t, all, 4)
	assert.Equal(t, MaskCount{Mask: mask.Of(0, 1), Words: 9}, all[0])
	assert.Equal(t, MaskCount{Mask: mask.Of(0), Words: 5}, all[1], "ties break by ascending mask value")
	assert.Equal(t, MaskCount{Mask: mask.Of(1), Words: 5}, all[2])
	assert.Equal(t, MaskCount{Mask: mask.Of(2), Words: 1}, all[3])

	top2 := agg.TopIntersections(2)
	assert.Equal(t, all[:2], top2)

	assert.Equal(t, all, agg.TopIntersections(100), "k past table size returns everything")
}

func TestPairwiseRows(t *testing.T) {
	agg, err := New([]string{"A", "B"}, mask.Table{
		mask.Of(0):    1,
		mask.Of(0, 1): 1,
		mask.Of(1):    1,
	})
	require.NoError(t, err)

	rows, err := agg.PairwiseRows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].A)
	assert.Equal(t, "B", rows[0].B)
	assert.Equal(t, 1, rows[0].Intersection)
	assert.InDelta(t, 1.0/3.0, rows[0].Jaccard, 1e-12)
}

func TestPairwiseRowsPrecondition(t *testing.T) {
	agg, err := New([]string{"only"}, mask.Table{mask.Of(0): 3})
	require.NoError(t, err)

	_, err = agg.PairwiseRows()
	assert.ErrorIs(t, err, ErrPairwiseNeedsTwo)
}
