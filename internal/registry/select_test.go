package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	dir, path := writeSourcesFile(t, `sources:
  - name: THUOCL
    type: dict
    ref: r1
  - name: wiki
    type: wiki
    ref: r2
  - name: moe
    type: dict
    ref: r3
`)
	reg, err := Load(path, dir)
	require.NoError(t, err)
	return reg
}

func TestSelectAll(t *testing.T) {
	sel, err := testRegistry(t).Select("", "")
	require.NoError(t, err)

	assert.Equal(t, 3, sel.Len())
	assert.Equal(t, []string{"THUOCL", "wiki", "moe"}, sel.Names())
}

func TestSelectIncludePreservesRegistryOrder(t *testing.T) {
	// Include order does not matter; ordinals follow registry order.
	sel, err := testRegistry(t).Select("moe,THUOCL", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"THUOCL", "moe"}, sel.Names())
}

func TestSelectExclude(t *testing.T) {
	sel, err := testRegistry(t).Select("", "wiki")
	require.NoError(t, err)

	assert.Equal(t, []string{"THUOCL", "moe"}, sel.Names())
}

func TestSelectIncludeAndExclude(t *testing.T) {
	sel, err := testRegistry(t).Select("THUOCL,wiki", "wiki")
	require.NoError(t, err)

	assert.Equal(t, []string{"THUOCL"}, sel.Names())
}

func TestSelectUnknownInclude(t *testing.T) {
	_, err := testRegistry(t).Select("THUOCL,bogus,nope", "")
	require.Error(t, err)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, []string{"bogus", "nope"}, configErr.Unknown)
	assert.Equal(t, []string{"THUOCL", "wiki", "moe"}, configErr.Known)
}

func TestSelectUnknownExclude(t *testing.T) {
	_, err := testRegistry(t).Select("", "bogus")
	require.Error(t, err)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, []string{"bogus"}, configErr.Unknown)
}

func TestSelectEmptyResult(t *testing.T) {
	_, err := testRegistry(t).Select("wiki", "wiki")
	require.Error(t, err)

	var configErr *ConfigError
	assert.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), "no sources selected")
}

func TestSelectCSVWhitespace(t *testing.T) {
	sel, err := testRegistry(t).Select(" THUOCL , wiki ,", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"THUOCL", "wiki"}, sel.Names())
}

func TestSelectionSources(t *testing.T) {
	reg := testRegistry(t)
	sel, err := reg.Select("wiki,moe", "")
	require.NoError(t, err)

	sources := sel.Sources()
	require.Len(t, sources, 2)
	assert.Equal(t, "wiki", sources[0].Name())
	assert.Equal(t, "moe", sources[1].Name())
}

func TestSelectionString(t *testing.T) {
	sel, err := testRegistry(t).Select("", "moe")
	require.NoError(t, err)

	assert.Equal(t, "[THUOCL wiki]", sel.String())
}
