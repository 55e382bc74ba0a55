package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/szuwgh/cograph/pkg/analysis"
	"github.com/szuwgh/cograph/pkg/cooccur"
	"github.com/szuwgh/cograph/pkg/render"
	"github.com/szuwgh/cograph/pkg/tokenizer"
	_ "github.com/szuwgh/cograph/pkg/tokenizer/blank"
	"github.com/szuwgh/cograph/util"
)

func newTestServer(t *testing.T) *httptest.Server {
	a, err := analysis.NewAnalyzer(tokenizer.NewRegistry(), analysis.Options{Tokenizer: "blank"})
	require.NoError(t, err)
	h := New(a, cooccur.DefaultOptions(), util.NewDiscardLogger())
	return httptest.NewServer(h.Routes())
}

func Test_Graph(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/graph?top_n=3&window=1", "text/plain", strings.NewReader("自然 语言 处理 自然 语言"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d render.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Len(t, d.Nodes, 3)
	assert.Len(t, d.Edges, 3)
	assert.NotEmpty(t, d.ID)
}

func Test_GraphDOT(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/graph?format=dot", "text/plain", strings.NewReader("a b"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
}

func Test_GraphBadOptions(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	for _, q := range []string{"window=0", "window=x", "top_n=-1", "mode=diagonal", "restrict=maybe", "format=svg"} {
		resp, err := http.Post(srv.URL+"/graph?"+q, "text/plain", strings.NewReader("a b"))
		require.NoError(t, err)
		var e ErrResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
		assert.Equal(t, http.StatusBadRequest, e.Status, q)
		assert.NotEmpty(t, e.Des)
	}
}

func Test_GraphEmpty(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/graph", "text/plain", strings.NewReader(""))
	require.NoError(t, err)
	defer resp.Body.Close()
	var d render.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Empty(t, d.Nodes)
	assert.Empty(t, d.Edges)
}

func Test_Freq(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/freq?n=2", "text/plain", strings.NewReader("x y 的 x z y x 的 的 的"))
	require.NoError(t, err)
	defer resp.Body.Close()
	var freqs []cooccur.TermFreq
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&freqs))
	assert.Equal(t, []cooccur.TermFreq{{Term: "x", Count: 3}, {Term: "y", Count: 2}}, freqs)
}

func Test_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	for _, path := range []string{"/graph", "/freq"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	}
}
