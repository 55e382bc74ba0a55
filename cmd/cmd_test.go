package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/szuwgh/cograph/pkg/render"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func Test_GraphCommand(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "stopwords.txt")
	out, err := execute(t, "自然 语言 处理 自然 语言",
		"graph", "--tokenizer", "blank", "--env-file", "", "--log-level", "error",
		"--stopwords", missing, "-n", "3", "-w", "1", "--format", "json")
	require.NoError(t, err)

	var d render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Len(t, d.Nodes, 3)
	require.Len(t, d.Edges, 3)
	weights := map[string]int{}
	for _, e := range d.Edges {
		weights[e.A+"-"+e.B] = e.Weight
	}
	assert.Equal(t, 2, weights["自然-语言"])
}

func Test_FreqCommand(t *testing.T) {
	out, err := execute(t, "x y 的 x z y x",
		"freq", "--tokenizer", "blank", "--env-file", "", "--log-level", "error", "-m", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"x", "3"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"y", "2"}, strings.Fields(lines[2]))
}

func Test_GraphCommandBadWindow(t *testing.T) {
	_, err := execute(t, "a b", "graph", "--tokenizer", "blank", "--env-file", "", "--log-level", "error", "-w", "0")
	assert.Error(t, err)
}

func Test_GraphCommandBadFormatNoOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	_, err := execute(t, "a b", "graph", "--tokenizer", "blank", "--env-file", "", "--log-level", "error",
		"-w", "2", "-o", out, "--format", "bogus")
	require.Error(t, err)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
	graphOutput, graphFormat = "", string(render.FormatTable)
}
