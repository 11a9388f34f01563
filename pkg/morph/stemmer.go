package morph

import (
	"github.com/kljensen/snowball"
	"github.com/pkg/errors"
)

// Stemmer reduces tokens to their snowball stem. Stems are not always real
// words, but all inflections of a word share one.
type Stemmer struct {
	language string
}

func NewStemmer(language string) (*Stemmer, error) {
	if _, err := snowball.Stem("test", language, true); err != nil {
		return nil, errors.Wrapf(err, "snowball language %q", language)
	}
	return &Stemmer{language: language}, nil
}

func (s *Stemmer) Normalize(token string) (string, error) {
	stem, err := snowball.Stem(token, s.language, true)
	if err != nil {
		return "", err
	}
	if stem == "" {
		return "", ErrUnknownForm
	}
	return stem, nil
}
