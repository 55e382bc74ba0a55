package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/szuwgh/cograph/pkg/cooccur"
)

func Test_LoadDefaults(t *testing.T) {
	c, err := Load(New(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Cooccur.Window)
	assert.Equal(t, 20, c.Cooccur.TopN)
	assert.True(t, c.Cooccur.Restrict)
	assert.Equal(t, "stopwords.txt", c.Cooccur.Stopwords)
	assert.Equal(t, "gojieba", c.Analysis.Tokenizer)

	opts, err := c.PipelineOptions()
	require.NoError(t, err)
	assert.Equal(t, cooccur.ModeFilterPairs, opts.Mode)
	assert.Equal(t, 2, opts.Window)
}

func Test_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cograph.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(`
cooccur:
  window: 3
  top_n: 5
  mode: window-vocabulary
analysis:
  tokenizer: blank
`), 0644))

	c, err := Load(New(), path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Cooccur.Window)
	assert.Equal(t, 5, c.Cooccur.TopN)
	assert.Equal(t, "blank", c.Analysis.Tokenizer)
	opts, err := c.PipelineOptions()
	require.NoError(t, err)
	assert.Equal(t, cooccur.ModeWindowVocabulary, opts.Mode)
}

func Test_LoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, ioutil.WriteFile(envFile, []byte("COGRAPH_COOCCUR_TOP_N=7\n"), 0644))
	defer os.Unsetenv("COGRAPH_COOCCUR_TOP_N")

	c, err := Load(New(), "", envFile)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Cooccur.TopN)
}

func Test_PipelineOptionsBadMode(t *testing.T) {
	c := &Config{Cooccur: CooccurConfig{Window: 2, Mode: "sideways"}}
	_, err := c.PipelineOptions()
	assert.Error(t, err)
}

func Test_TokenizerConfig(t *testing.T) {
	c := &Config{Analysis: AnalysisConfig{HMM: true, Mode: "search"}}
	m := c.TokenizerConfig()
	assert.Equal(t, true, m["hmm"])
	assert.Equal(t, "search", m["mode"])
	_, ok := m["dict_path"]
	assert.False(t, ok)
}
