package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lexstat/internal/stats"
	"github.com/roach88/lexstat/internal/testutil"
)

func TestStatsTextGolden(t *testing.T) {
	opts, _ := corpusOptions(t, "text", fruitCorpus())

	out, err := runCommand(t, NewStatsCommand(opts))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "stats_text", []byte(out))
}

func TestStatsJSON(t *testing.T) {
	opts, _ := corpusOptions(t, "json", fruitCorpus())

	out, err := runCommand(t, NewStatsCommand(opts))
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   StatsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	assert.Equal(t, []SourceTotal{{Name: "alpha", Words: 3}, {Name: "beta", Words: 3}}, resp.Data.Sources)
	assert.Equal(t, 4, resp.Data.Union)
	assert.Equal(t, 6, resp.Data.SumCounts)
	assert.Equal(t, 2, resp.Data.Duplicates)

	require.Len(t, resp.Data.Pairwise, 1)
	p := resp.Data.Pairwise[0]
	assert.Equal(t, stats.PairwiseRow{
		A: "alpha", B: "beta",
		Intersection:  2,
		Jaccard:       0.5,
		Overlap:       2.0 / 3.0,
		ContainmentAB: 2.0 / 3.0,
		ContainmentBA: 2.0 / 3.0,
	}, p)

	assert.Equal(t, []SourceTotal{{Name: "alpha", Words: 1}, {Name: "beta", Words: 1}}, resp.Data.Exclusive)
}

func TestStatsPairwiseRequiresTwoSources(t *testing.T) {
	opts, _ := corpusOptions(t, "text", fruitCorpus())

	_, err := runCommand(t, NewStatsCommand(opts), "--include", "alpha")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--pairwise=false")
}

func TestStatsSingleSourceWithoutPairwise(t *testing.T) {
	opts, _ := corpusOptions(t, "json", fruitCorpus())

	out, err := runCommand(t, NewStatsCommand(opts), "--include", "alpha", "--pairwise=false")
	require.NoError(t, err)

	var resp struct {
		Data StatsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 3, resp.Data.Union)
	assert.Equal(t, 0, resp.Data.Duplicates)
	assert.Empty(t, resp.Data.Pairwise)
	assert.Equal(t, []SourceTotal{{Name: "alpha", Words: 3}}, resp.Data.Exclusive)
}

func TestStatsUnknownIncludeFailsBeforeFileAccess(t *testing.T) {
	opts, dir := corpusOptions(t, "text", fruitCorpus())

	// Even with every word file gone the unknown name must surface as a
	// configuration error, proving selection happens before any read.
	testutil.RemoveWordFile(t, dir, "alpha")
	testutil.RemoveWordFile(t, dir, "beta")

	_, err := runCommand(t, NewStatsCommand(opts), "--include", "bogus")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "configuration error")
	assert.Contains(t, err.Error(), "bogus")
	assert.Contains(t, err.Error(), "alpha")
}

func TestStatsMissingSources(t *testing.T) {
	opts, dir := corpusOptions(t, "text", fruitCorpus())
	testutil.RemoveWordFile(t, dir, "alpha")

	_, err := runCommand(t, NewStatsCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "sources unavailable")
	assert.Contains(t, err.Error(), "alpha")
}
