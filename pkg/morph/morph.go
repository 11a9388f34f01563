// Package morph maps inflected word forms to their dictionary base form.
//
// A Normalizer must be deterministic: the same token always yields the same
// lemma. Implementations are safe for concurrent use once built.
package morph

import (
	"github.com/pkg/errors"
)

const (
	KindIdentity   = "identity"
	KindDictionary = "dictionary"
	KindSnowball   = "snowball"
	KindAuto       = "auto"
)

// ErrUnknownForm is returned when a normalizer has no lemma for a token.
var ErrUnknownForm = errors.New("unknown word form")

type Normalizer interface {
	Normalize(token string) (string, error)
}

// NormalizerFunc adapts a plain function to Normalizer.
type NormalizerFunc func(token string) (string, error)

func (f NormalizerFunc) Normalize(token string) (string, error) {
	return f(token)
}

// Identity returns every token unchanged.
var Identity = NormalizerFunc(func(token string) (string, error) {
	return token, nil
})

// Fallback asks each normalizer in turn and returns the first success.
type Fallback []Normalizer

func (fb Fallback) Normalize(token string) (string, error) {
	err := error(ErrUnknownForm)
	for _, n := range fb {
		var lemma string
		lemma, err = n.Normalize(token)
		if err == nil {
			return lemma, nil
		}
	}
	return "", err
}

type Options struct {
	Kind     string
	Language string
	DictPath string
}

// New builds the normalizer described by opts. An empty DictPath selects the
// embedded seed dictionary. The dictionary kind keeps unknown forms as they
// are, auto maps them through their snowball stem.
func New(opts Options) (Normalizer, error) {
	switch opts.Kind {
	case KindIdentity:
		return Identity, nil
	case KindDictionary:
		d, err := loadDictionary(opts.DictPath)
		if err != nil {
			return nil, err
		}
		return Fallback{d, Identity}, nil
	case KindSnowball:
		return NewStemmer(opts.Language)
	case KindAuto, "":
		d, err := loadDictionary(opts.DictPath)
		if err != nil {
			return nil, err
		}
		s, err := NewStemmer(opts.Language)
		if err != nil {
			return nil, err
		}
		return NewLemmatizer(d, s), nil
	}
	return nil, errors.Errorf("normalizer kind unsupported : %v", opts.Kind)
}

func loadDictionary(path string) (*Dictionary, error) {
	if path == "" {
		return SeedDictionary()
	}
	return LoadDictionary(path)
}
