// Package render encodes co-occurrence graphs for external layout and
// drawing tools. It makes no promise about placement, only content.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/szuwgh/cograph/pkg/cooccur"
)

type Node struct {
	ID             string `json:"id"`
	Count          int    `json:"count,omitempty"`
	Degree         int    `json:"degree"`
	WeightedDegree int    `json:"weighted_degree"`
}

// Document is the node list and edge list handed to a renderer.
type Document struct {
	ID    string         `json:"id,omitempty"`
	Nodes []Node         `json:"nodes"`
	Edges []cooccur.Edge `json:"edges"`
}

// NewDocument collects nodes with their degrees. ft may be nil, counts are
// then omitted.
func NewDocument(g *cooccur.Graph, ft *cooccur.FrequencyTable) *Document {
	d := &Document{Nodes: make([]Node, 0, g.NumNodes()), Edges: g.Edges()}
	for _, t := range g.Nodes() {
		n := Node{ID: t, Degree: g.Degree(t), WeightedDegree: g.WeightedDegree(t)}
		if ft != nil {
			n.Count = ft.Count(t)
		}
		d.Nodes = append(d.Nodes, n)
	}
	return d
}

func FromResult(res *cooccur.Result) *Document {
	d := NewDocument(res.Graph, res.Frequencies)
	d.ID = res.ID.String()
	return d
}

func WriteJSON(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(d), "encode graph json")
}

// WriteDOT writes d as an undirected Graphviz graph. Edge pen width follows
// the weight.
func WriteDOT(w io.Writer, d *Document) error {
	var b strings.Builder
	b.WriteString("graph cooccurrence {\n")
	for _, n := range d.Nodes {
		fmt.Fprintf(&b, "  %s [label=%s];\n", strconv.Quote(n.ID), strconv.Quote(n.ID))
	}
	for _, e := range d.Edges {
		fmt.Fprintf(&b, "  %s -- %s [weight=%d, penwidth=%s];\n",
			strconv.Quote(e.A), strconv.Quote(e.B), e.Weight,
			strconv.FormatFloat(float64(e.Weight)*1.5, 'f', -1, 64))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "write graph dot")
}

// WriteTable writes one edge per line, heaviest first.
func WriteTable(w io.Writer, d *Document) error {
	edges := make([]cooccur.Edge, len(d.Edges))
	copy(edges, d.Edges)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight > edges[j].Weight
	})
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tTARGET\tWEIGHT")
	for _, e := range edges {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", e.A, e.B, e.Weight)
	}
	return errors.Wrap(tw.Flush(), "write graph table")
}

// WriteFrequencies writes a term/count table.
func WriteFrequencies(w io.Writer, freqs []cooccur.TermFreq) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TERM\tCOUNT")
	for _, f := range freqs {
		fmt.Fprintf(tw, "%s\t%d\n", f.Term, f.Count)
	}
	return errors.Wrap(tw.Flush(), "write frequency table")
}

type Format string

const (
	FormatJSON  Format = "json"
	FormatDOT   Format = "dot"
	FormatTable Format = "table"
)

// ParseFormat accepts json, dot and table. Empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatDOT, FormatTable:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", errors.Errorf("unknown output format %q", s)
}

func Write(w io.Writer, f Format, d *Document) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, d)
	case FormatDOT:
		return WriteDOT(w, d)
	case FormatTable, "":
		return WriteTable(w, d)
	}
	return errors.Errorf("unknown output format %q", f)
}
