package gojieba

import (
	"github.com/pkg/errors"
	"github.com/szuwgh/cograph/pkg/tokenizer"

	"github.com/yanyiwu/gojieba"
)

func init() {
	tokenizer.RegisterConstructor("gojieba", NewTokenizer)
}

type JiebaTokenizer struct {
	handle *gojieba.Jieba
	mode   gojieba.TokenizeMode
	hmm    bool
}

func stringOr(config map[string]interface{}, key, def string) (string, error) {
	v, ok := config[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Errorf("config %s must be a string, got %T", key, v)
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// NewTokenizer builds a jieba tokenizer. Dictionary paths fall back to the
// ones shipped with gojieba. "mode" is "precise" (default) or "search",
// "hmm" enables new word discovery and defaults to true.
func NewTokenizer(config map[string]interface{}) (tokenizer.Tokenizer, error) {
	var paths [5]string
	keys := [5]string{"dict_path", "hmm_path", "user_dict_path", "idf", "stop_words"}
	defs := [5]string{gojieba.DICT_PATH, gojieba.HMM_PATH, gojieba.USER_DICT_PATH, gojieba.IDF_PATH, gojieba.STOP_WORDS_PATH}
	for i, k := range keys {
		p, err := stringOr(config, k, defs[i])
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}
	t := &JiebaTokenizer{mode: gojieba.DefaultMode, hmm: true}
	mode, err := stringOr(config, "mode", "precise")
	if err != nil {
		return nil, err
	}
	switch mode {
	case "precise":
	case "search":
		t.mode = gojieba.SearchMode
	default:
		return nil, errors.Errorf("unknown jieba mode %q", mode)
	}
	if v, ok := config["hmm"]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, errors.Errorf("config hmm must be a bool, got %T", v)
		}
		t.hmm = b
	}
	t.handle = gojieba.NewJieba(paths[:]...)
	return t, nil
}

//tokenize
func (t *JiebaTokenizer) Tokenize(content []byte) tokenizer.Tokens {
	result := make(tokenizer.Tokens, 0)
	pos := 1
	words := t.handle.Tokenize(string(content), t.mode, t.hmm)
	for _, word := range words {
		token := tokenizer.Token{
			Term:     word.Str,
			Start:    word.Start,
			End:      word.End,
			Position: pos,
		}
		result = append(result, &token)
		pos++
	}
	return result
}

func (t *JiebaTokenizer) Free() {
	t.handle.Free()
}
