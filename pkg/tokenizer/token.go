package tokenizer

type Token struct {
	//分词在文本起始的位置
	Start int
	//分词在文本末尾的位置
	End int
	//分词获得的词语
	Term string
	//词语序号,从1开始
	Position int
}

type Tokens []*Token

// Terms returns the term of every token in order.
func (ts Tokens) Terms() []string {
	terms := make([]string, len(ts))
	for i, t := range ts {
		terms[i] = t.Term
	}
	return terms
}
