package cooccur

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Build(t *testing.T) {
	acc := Accumulator{
		NewPair("语言", "自然"): 2,
		NewPair("语言", "处理"): 1,
		NewPair("处理", "自然"): 1,
	}
	g := Build(acc)
	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, 2, g.Weight("自然", "语言"))
	assert.Equal(t, 2, g.Weight("语言", "自然"))
	assert.Equal(t, 1, g.Weight("处理", "自然"))
	assert.Equal(t, 2, g.Degree("自然"))
	assert.Equal(t, 3, g.WeightedDegree("自然"))
	for _, e := range g.Edges() {
		assert.NotEqual(t, e.A, e.B)
		assert.True(t, e.Weight > 0)
	}
}

func Test_BuildSkipsZeroAndSelf(t *testing.T) {
	acc := Accumulator{
		{"a", "a"}: 3,
		{"a", "b"}: 0,
		{"b", "c"}: 1,
	}
	g := Build(acc)
	assert.Equal(t, []string{"b", "c"}, g.Nodes())
	assert.Equal(t, []Edge{{"b", "c", 1}}, g.Edges())
}

func Test_BuildIdempotent(t *testing.T) {
	acc, _ := Count(Stream{"a", "b", "c", "a", "d", "b", "c"}, 2, nil)
	g1 := Build(acc)
	g2 := Build(acc)
	assert.False(t, g1 == g2)
	assert.True(t, g1.Equal(g2))
	assert.Equal(t, g1.Hash(), g2.Hash())
	assert.Equal(t, g1.Nodes(), g2.Nodes())
	assert.Equal(t, g1.Edges(), g2.Edges())
}

func Test_GraphNotEqual(t *testing.T) {
	g1 := Build(Accumulator{{"a", "b"}: 1})
	g2 := Build(Accumulator{{"a", "b"}: 2})
	g3 := Build(Accumulator{{"a", "c"}: 1})
	assert.False(t, g1.Equal(g2))
	assert.False(t, g1.Equal(g3))
	assert.NotEqual(t, g1.Hash(), g2.Hash())
}

func Test_BuildWithNodes(t *testing.T) {
	acc := Accumulator{
		{"a", "b"}: 2,
		{"b", "z"}: 1,
	}
	g := BuildWithNodes(Vocabulary{"a", "b", "c"}, acc)
	assert.Equal(t, []string{"a", "b", "c"}, g.Nodes())
	assert.Equal(t, []Edge{{"a", "b", 2}}, g.Edges())
	assert.Equal(t, 0, g.Degree("c"))
	assert.False(t, g.HasNode("z"))
}

func Test_BuildEmpty(t *testing.T) {
	g := Build(Accumulator{})
	assert.Equal(t, 0, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
	assert.Empty(t, g.Edges())
	assert.True(t, g.Equal(Build(nil)))
}
