package cooccur

import "sort"

// Pair is an unordered pair of distinct terms stored with A < B.
type Pair struct {
	A, B string
}

// NewPair returns the canonical pair for a and b.
func NewPair(a, b string) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// TermFilter decides whether a term may take part in a pair.
type TermFilter interface {
	Contains(term string) bool
}

// TermSet is a plain membership filter.
type TermSet map[string]struct{}

func (s TermSet) Contains(term string) bool {
	_, ok := s[term]
	return ok
}

// Accumulator maps canonical pairs to how many times the two terms fell
// within the window of each other. It never holds self pairs or zero
// weights.
type Accumulator map[Pair]int

// Weight returns the weight of the pair in either order.
func (acc Accumulator) Weight(a, b string) int {
	return acc[NewPair(a, b)]
}

// Pairs returns the keys in (A, B) order.
func (acc Accumulator) Pairs() []Pair {
	pairs := make([]Pair, 0, len(acc))
	for p := range acc {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

// Count slides a window over stream. Every term is paired with each of the
// next window terms; pairs of identical terms are skipped, and when vocab
// is not nil both terms must belong to it.
func Count(stream Stream, window int, vocab TermFilter) (Accumulator, error) {
	if err := checkWindow(window); err != nil {
		return nil, err
	}
	acc := make(Accumulator)
	n := len(stream)
	for i := 0; i < n; i++ {
		a := stream[i]
		if vocab != nil && !vocab.Contains(a) {
			continue
		}
		end := i + window
		if end > n-1 {
			end = n - 1
		}
		for j := i + 1; j <= end; j++ {
			b := stream[j]
			if a == b {
				continue
			}
			if vocab != nil && !vocab.Contains(b) {
				continue
			}
			acc[NewPair(a, b)]++
		}
	}
	return acc, nil
}
