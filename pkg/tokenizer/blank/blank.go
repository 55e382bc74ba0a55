package blank

import (
	"unicode"
	"unicode/utf8"

	"github.com/szuwgh/cograph/pkg/tokenizer"
)

func init() {
	tokenizer.RegisterConstructor("blank", NewTokenizer)
}

// BlankTokenizer splits on white space. It is meant for text that is
// already segmented, one term per field.
type BlankTokenizer struct{}

func NewTokenizer(config map[string]interface{}) (tokenizer.Tokenizer, error) {
	return &BlankTokenizer{}, nil
}

func (t *BlankTokenizer) Tokenize(content []byte) tokenizer.Tokens {
	result := make(tokenizer.Tokens, 0)
	pos := 1
	start := -1
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				result = append(result, &tokenizer.Token{Term: string(content[start:i]), Start: start, End: i, Position: pos})
				pos++
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		result = append(result, &tokenizer.Token{Term: string(content[start:]), Start: start, End: len(content), Position: pos})
	}
	return result
}
