package morph

import (
	iradix "github.com/hashicorp/go-immutable-radix"
)

// Lemmatizer answers from the dictionary first. A form the dictionary lacks
// is stemmed and the stem is looked up in a stem -> lemma index built from
// the dictionary, so every form of a partly covered word gets the same key.
// The raw stem is returned when no dictionary word shares it.
type Lemmatizer struct {
	dict  *Dictionary
	stem  *Stemmer
	index *iradix.Tree
}

func NewLemmatizer(d *Dictionary, s *Stemmer) *Lemmatizer {
	// stem -> lemma -> number of dictionary forms with that stem
	votes := make(map[string]map[string]int)
	vote := func(word, lemma string) {
		st, err := s.Normalize(word)
		if err != nil {
			return
		}
		if votes[st] == nil {
			votes[st] = make(map[string]int)
		}
		votes[st][lemma]++
	}
	d.tree.Root().Walk(func(k []byte, v interface{}) bool {
		lemma := v.(string)
		vote(string(k), lemma)
		vote(lemma, lemma)
		return false
	})

	txn := iradix.New().Txn()
	for st, lemmas := range votes {
		txn.Insert([]byte(st), pickLemma(lemmas))
	}
	return &Lemmatizer{dict: d, stem: s, index: txn.Commit()}
}

// pickLemma returns the lemma most forms vote for, the lexically smallest on
// a tie.
func pickLemma(lemmas map[string]int) string {
	best, bestN := "", 0
	for lemma, n := range lemmas {
		if n > bestN || (n == bestN && lemma < best) {
			best, bestN = lemma, n
		}
	}
	return best
}

func (l *Lemmatizer) Normalize(token string) (string, error) {
	if lemma, err := l.dict.Normalize(token); err == nil {
		return lemma, nil
	}
	st, err := l.stem.Normalize(token)
	if err != nil {
		return "", err
	}
	if v, ok := l.index.Get([]byte(st)); ok {
		return v.(string), nil
	}
	return st, nil
}
