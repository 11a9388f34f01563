package tokenizer

type Token struct {
	//分词在文本起始的位置
	Start int
	//分词在文本末尾的位置
	End int
	//分词获得的词语
	Term string
	//词语在文本中的序号
	Position int
}

type Tokens []*Token

// Terms returns the raw terms in text order.
func (ts Tokens) Terms() []string {
	terms := make([]string, 0, len(ts))
	for _, t := range ts {
		terms = append(terms, t.Term)
	}
	return terms
}
