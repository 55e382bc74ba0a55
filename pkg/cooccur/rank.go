package cooccur

import "sort"

// Stream is an ordered sequence of terms as emitted by a segmenter.
type Stream []string

// TermFreq is one row of a frequency table.
type TermFreq struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// FrequencyTable counts terms and remembers the order in which each term
// was first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

func newFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

func (ft *FrequencyTable) add(term string) {
	if _, ok := ft.counts[term]; !ok {
		ft.order = append(ft.order, term)
	}
	ft.counts[term]++
}

// Count returns the number of occurrences of term, zero when absent.
func (ft *FrequencyTable) Count(term string) int {
	return ft.counts[term]
}

// Len returns the number of distinct terms.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Sorted returns all entries by descending count. Equal counts keep
// first-occurrence order.
func (ft *FrequencyTable) Sorted() []TermFreq {
	res := make([]TermFreq, len(ft.order))
	for i, t := range ft.order {
		res[i] = TermFreq{Term: t, Count: ft.counts[t]}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Count > res[j].Count
	})
	return res
}

// MostCommon returns the first n entries of Sorted.
func (ft *FrequencyTable) MostCommon(n int) []TermFreq {
	s := ft.Sorted()
	if n < len(s) {
		s = s[:n]
	}
	return s
}

// CountFrequencies builds the frequency table of stream after removing
// stopwords. The set is used as given; the empty-set fallback is up to the
// caller (Rank and NewPipeline apply it).
func CountFrequencies(stream Stream, stopwords StopwordSet) *FrequencyTable {
	ft := newFrequencyTable()
	for _, t := range stream {
		if stopwords.Contains(t) {
			continue
		}
		ft.add(t)
	}
	return ft
}

// Vocabulary is the ordered list of terms allowed into the graph.
type Vocabulary []string

// Set returns the vocabulary as a membership filter.
func (v Vocabulary) Set() TermSet {
	s := make(TermSet, len(v))
	for _, t := range v {
		s[t] = struct{}{}
	}
	return s
}

// Rank selects the n most frequent non-stopword terms of stream. An empty
// stopword set is replaced by DefaultStopwords.
func Rank(stream Stream, stopwords StopwordSet, n int) (Vocabulary, error) {
	if err := checkTopN(n); err != nil {
		return nil, err
	}
	return rankTable(CountFrequencies(stream, stopwords.OrDefault()), n), nil
}

func rankTable(ft *FrequencyTable, n int) Vocabulary {
	top := ft.MostCommon(n)
	vocab := make(Vocabulary, len(top))
	for i, tf := range top {
		vocab[i] = tf.Term
	}
	return vocab
}
