package cooccur

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash"
)

const sep = '\xff'

// Edge is an undirected weighted edge with A < B.
type Edge struct {
	A      string `json:"source"`
	B      string `json:"target"`
	Weight int    `json:"weight"`
}

// Graph is an undirected weighted co-occurrence graph. It is built once per
// document and not meant to be updated afterwards.
type Graph struct {
	nodes []string
	adj   map[string]map[string]int
	edges int
}

func newGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]int)}
}

func (g *Graph) addNode(term string) {
	if _, ok := g.adj[term]; ok {
		return
	}
	g.adj[term] = make(map[string]int)
	g.nodes = append(g.nodes, term)
}

func (g *Graph) setEdge(a, b string, w int) {
	if _, ok := g.adj[a][b]; !ok {
		g.edges++
	}
	g.adj[a][b] = w
	g.adj[b][a] = w
}

// Build materializes an accumulator. Nodes are added in pair order so two
// builds of the same accumulator are identical.
func Build(acc Accumulator) *Graph {
	g := newGraph()
	for _, p := range acc.Pairs() {
		w := acc[p]
		if w <= 0 || p.A == p.B {
			continue
		}
		g.addNode(p.A)
		g.addNode(p.B)
		g.setEdge(p.A, p.B, w)
	}
	return g
}

// BuildWithNodes is Build with the node set fixed to vocab. Vocabulary terms
// without any co-occurrence stay as isolated nodes and pairs with an
// endpoint outside vocab are dropped.
func BuildWithNodes(vocab Vocabulary, acc Accumulator) *Graph {
	g := newGraph()
	for _, t := range vocab {
		g.addNode(t)
	}
	for _, p := range acc.Pairs() {
		w := acc[p]
		if w <= 0 || p.A == p.B || !g.HasNode(p.A) || !g.HasNode(p.B) {
			continue
		}
		g.setEdge(p.A, p.B, w)
	}
	return g
}

// Nodes returns the terms in insertion order.
func (g *Graph) Nodes() []string {
	res := make([]string, len(g.nodes))
	copy(res, g.nodes)
	return res
}

func (g *Graph) HasNode(term string) bool {
	_, ok := g.adj[term]
	return ok
}

func (g *Graph) NumNodes() int { return len(g.nodes) }

func (g *Graph) NumEdges() int { return g.edges }

// Weight returns the weight of edge (a, b), zero if there is none.
func (g *Graph) Weight(a, b string) int {
	return g.adj[a][b]
}

// Degree is the number of neighbours of term.
func (g *Graph) Degree(term string) int {
	return len(g.adj[term])
}

// WeightedDegree is the sum of the weights of the edges touching term.
func (g *Graph) WeightedDegree(term string) int {
	s := 0
	for _, w := range g.adj[term] {
		s += w
	}
	return s
}

// Edges lists every edge once, sorted by (A, B).
func (g *Graph) Edges() []Edge {
	res := make([]Edge, 0, g.edges)
	for a, nb := range g.adj {
		for b, w := range nb {
			if a < b {
				res = append(res, Edge{A: a, B: b, Weight: w})
			}
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].A != res[j].A {
			return res[i].A < res[j].A
		}
		return res[i].B < res[j].B
	})
	return res
}

// Hash returns a fingerprint of the node set and the weighted edge set.
// Graphs with equal content hash equally whatever their node order.
func (g *Graph) Hash() uint64 {
	nodes := g.Nodes()
	sort.Strings(nodes)
	b := make([]byte, 0, 1024)
	for _, n := range nodes {
		b = append(b, n...)
		b = append(b, sep)
	}
	b = append(b, sep)
	for _, e := range g.Edges() {
		b = append(b, e.A...)
		b = append(b, sep)
		b = append(b, e.B...)
		b = append(b, sep)
		b = strconv.AppendInt(b, int64(e.Weight), 10)
		b = append(b, sep)
	}
	return xxhash.Sum64(b)
}

// Equal reports whether g and o have the same nodes and edge weights.
func (g *Graph) Equal(o *Graph) bool {
	if g.NumNodes() != o.NumNodes() || g.NumEdges() != o.NumEdges() {
		return false
	}
	for a, nb := range g.adj {
		onb, ok := o.adj[a]
		if !ok || len(onb) != len(nb) {
			return false
		}
		for b, w := range nb {
			if onb[b] != w {
				return false
			}
		}
	}
	return true
}
