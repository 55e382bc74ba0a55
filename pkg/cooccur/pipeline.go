package cooccur

import (
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid"
	"github.com/pkg/errors"
)

const (
	DefaultWindow = 2
	DefaultTopN   = 20
)

// Mode selects how the vocabulary restriction interacts with windowing.
type Mode int

const (
	// ModeFilterPairs windows the raw stream and drops pairs with a term
	// outside the vocabulary. Token distances are preserved.
	ModeFilterPairs Mode = iota
	// ModeWindowVocabulary windows the ranked vocabulary list itself, so
	// adjacency is rank adjacency rather than text adjacency.
	ModeWindowVocabulary
	// ModeFilterStream removes stopwords from the stream before windowing.
	ModeFilterStream
)

var modeNames = map[Mode]string{
	ModeFilterPairs:      "filter-pairs",
	ModeWindowVocabulary: "window-vocabulary",
	ModeFilterStream:     "filter-stream",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeFilterPairs, nil
	}
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
}

// Options configures one pipeline. Restrict limits the graph to the TopN
// most frequent terms.
type Options struct {
	Window    int
	TopN      int
	Restrict  bool
	Mode      Mode
	Stopwords StopwordSet
}

func DefaultOptions() Options {
	return Options{
		Window:    DefaultWindow,
		TopN:      DefaultTopN,
		Restrict:  true,
		Mode:      ModeFilterPairs,
		Stopwords: DefaultStopwords(),
	}
}

func (o Options) validate() error {
	if err := checkWindow(o.Window); err != nil {
		return err
	}
	if err := checkTopN(o.TopN); err != nil {
		return err
	}
	if _, ok := modeNames[o.Mode]; !ok {
		return errors.Wrapf(ErrUnknownMode, "%d", int(o.Mode))
	}
	return nil
}

// Result holds every intermediate structure of one run.
type Result struct {
	ID          ulid.ULID
	Frequencies *FrequencyTable
	Vocabulary  Vocabulary
	Accumulator Accumulator
	Graph       *Graph
}

// Pipeline turns one term stream into a co-occurrence graph. It only holds
// configuration, each Run allocates its own tables.
type Pipeline struct {
	opts Options
}

func NewPipeline(opts Options) (*Pipeline, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.Stopwords = opts.Stopwords.OrDefault()
	return &Pipeline{opts: opts}, nil
}

func (p *Pipeline) Options() Options {
	return p.opts
}

func (p *Pipeline) Run(stream Stream) (*Result, error) {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	res := &Result{ID: ulid.MustNew(ulid.Now(), entropy)}
	res.Frequencies = CountFrequencies(stream, p.opts.Stopwords)

	var filter TermFilter
	if p.opts.Restrict {
		res.Vocabulary = rankTable(res.Frequencies, p.opts.TopN)
		filter = res.Vocabulary.Set()
	}

	var err error
	switch p.opts.Mode {
	case ModeFilterPairs:
		res.Accumulator, err = Count(stream, p.opts.Window, filter)
	case ModeFilterStream:
		res.Accumulator, err = Count(p.removeStopwords(stream), p.opts.Window, filter)
	case ModeWindowVocabulary:
		vocab := res.Vocabulary
		if !p.opts.Restrict {
			vocab = rankTable(res.Frequencies, res.Frequencies.Len())
		}
		res.Accumulator, err = Count(Stream(vocab), p.opts.Window, nil)
	}
	if err != nil {
		return nil, errors.Wrap(err, "count co-occurrences")
	}

	if p.opts.Restrict {
		res.Graph = BuildWithNodes(res.Vocabulary, res.Accumulator)
	} else {
		res.Graph = Build(res.Accumulator)
	}
	return res, nil
}

func (p *Pipeline) removeStopwords(stream Stream) Stream {
	out := make(Stream, 0, len(stream))
	for _, t := range stream {
		if !p.opts.Stopwords.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}
