package analysis

import (
	"github.com/szuwgh/cograph/pkg/cooccur"
	"github.com/szuwgh/cograph/pkg/tokenizer"
	"golang.org/x/text/unicode/norm"
)

type Options struct {
	Tokenizer string
	Config    map[string]interface{}
	//分词前做NFC规范化
	Normalize bool
}

// Analyzer turns raw text into a term stream.
type Analyzer struct {
	t         tokenizer.Tokenizer
	normalize bool
}

func NewAnalyzer(r *tokenizer.Registry, opts Options) (*Analyzer, error) {
	config := opts.Config
	if config == nil {
		config = make(map[string]interface{})
	}
	t, err := r.NewTokenizer(opts.Tokenizer, config)
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t, normalize: opts.Normalize}, nil
}

//分析
func (a *Analyzer) Analyze(input []byte) tokenizer.Tokens {
	if a.normalize {
		input = norm.NFC.Bytes(input)
	}
	return a.t.Tokenize(input)
}

// Stream segments input into the term stream consumed by the pipeline.
func (a *Analyzer) Stream(input []byte) cooccur.Stream {
	return cooccur.Stream(a.Analyze(input).Terms())
}

func (a *Analyzer) Close() {
	if f, ok := a.t.(tokenizer.Freer); ok {
		f.Free()
	}
}
