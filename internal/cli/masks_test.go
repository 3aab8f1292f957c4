package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lexstat/internal/stats"
)

func TestMasksJSON(t *testing.T) {
	opts, _ := corpusOptions(t, "json", fruitCorpus())

	out, err := runCommand(t, NewMasksCommand(opts))
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   MasksResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []string{"alpha", "beta"}, resp.Data.Sources)

	assert.Equal(t, []stats.DegreeBucket{
		{Degree: 1, Masks: 2, Words: 2},
		{Degree: 2, Masks: 1, Words: 2},
	}, resp.Data.Degrees)

	// Descending by count, ties by ascending mask value.
	require.Len(t, resp.Data.Masks, 3)
	assert.Equal(t, MaskRow{Mask: "3", Degree: 2, Sources: []string{"alpha", "beta"}, Words: 2}, resp.Data.Masks[0])
	assert.Equal(t, MaskRow{Mask: "1", Degree: 1, Sources: []string{"alpha"}, Words: 1}, resp.Data.Masks[1])
	assert.Equal(t, MaskRow{Mask: "2", Degree: 1, Sources: []string{"beta"}, Words: 1}, resp.Data.Masks[2])
}

func TestMasksTop(t *testing.T) {
	opts, _ := corpusOptions(t, "json", fruitCorpus())

	out, err := runCommand(t, NewMasksCommand(opts), "--top", "1")
	require.NoError(t, err)

	var resp struct {
		Data MasksResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data.Masks, 1)
	assert.Equal(t, "3", resp.Data.Masks[0].Mask)
}

func TestMasksText(t *testing.T) {
	opts, _ := corpusOptions(t, "text", fruitCorpus())

	out, err := runCommand(t, NewMasksCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "Degree histogram")
	assert.Contains(t, out, "Intersections by word count")
	assert.Contains(t, out, "alpha,beta")
}
